/*
Package domain contains the core domain models for the flow definition engine.

It defines the persisted conversation-flow document and its parts: Nodes,
Edges, the per-company GlobalConfig, and read-only seed Templates. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - CompanyFlow: The persisted flow document for one company (nodes + edges + config).
  - FlowNode: One step of the conversation (greeting, question, photo capture, branch, ...).
  - FlowEdge: A directed transition between two nodes, optionally tagged with a handle.
  - GlobalConfig: Company-wide agent behavior not tied to any node.
  - FlowTemplate: A read-only seed graph used to bootstrap a new company's flow.
*/
package domain
