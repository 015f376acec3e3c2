/*
Package solarflow is a flow definition engine for solar sales CRMs.

Each company owns exactly one conversation flow: a graph of typed nodes
(greeting, data capture, condition branches, proposal, handoff) connected
by directed edges, edited visually and stored as a versioned document.
The engine owns the definition lifecycle: the node catalog, graph editing,
structural validation, template instantiation and persistence. Executing
the conversation against a lead is the job of a separate runtime.

# Architecture

The core is hexagonal. Domain types live in pkg/domain, the persistence
contract in pkg/ports, and interchangeable stores (memory, redis, file)
in pkg/adapters. Outer surfaces (HTTP, MCP, CLI) all drive the same
pkg/flow service.

# Usage

	package main

	import (
		"context"
		"log"

		solarflow "github.com/caue-mor/saas-solar"
	)

	func main() {
		mgr := solarflow.New()
		ctx := context.Background()

		doc, dropped, err := mgr.ApplyTemplate(ctx, "company-123", "residencial")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("flow %q at version %d (%d nodes, %d edges dropped)",
			doc.Name, doc.Version, len(doc.Nodes), len(dropped))
	}

Every successful save increments the document version by exactly 1 and
replaces the stored document wholesale. Invalid graphs are rejected with
a *domain.ValidationError unless saved as a draft.
*/
package solarflow
