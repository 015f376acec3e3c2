/*
Package ports defines the driven ports (interfaces) for the flow engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various document stores and with the CRM
subsystems it treats as external collaborators.

# Key Interfaces

  - FlowStore: Persists the one flow document each company owns.
  - CompanyDirectory: Answers whether a company record exists (owned by the CRM's record screens, not by this engine).
*/
package ports
