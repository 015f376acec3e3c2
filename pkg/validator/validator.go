// Package validator decides whether a flow graph is fit to be saved as a
// company's active flow. Draft saves bypass it entirely.
package validator

import (
	"fmt"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/graph"
)

// Validate runs every structural rule over the graph and reports all
// findings together; rules never short-circuit and validation never
// mutates the graph.
//
// The orphan rule is deliberately "touched by at least one edge", not full
// reachability from the entry point: a node wired only into a dead branch
// still passes. Strengthening this to forward reachability would reject
// flows the system historically accepted, so reachability stays a query
// (graph.ReachableFrom) rather than a rule.
func Validate(flow *domain.CompanyFlow) domain.ValidationResult {
	res := domain.ValidationResult{Errors: []string{}}

	if len(flow.Nodes) == 0 {
		res.Errors = append(res.Errors, "o fluxo está vazio: adicione pelo menos um nó")
	}

	entry, hasEntry := graph.EntryPoint(flow)
	if len(flow.Nodes) > 0 && !hasEntry {
		res.Errors = append(res.Errors, "o fluxo não tem ponto de entrada: adicione um nó de saudação (GREETING)")
	}

	// Ids touched by any edge, plus the entry point (exempt from needing
	// an incoming edge).
	touched := make(map[string]bool, len(flow.Nodes))
	nodeIDs := make(map[string]bool, len(flow.Nodes))
	for _, n := range flow.Nodes {
		nodeIDs[n.ID] = true
	}
	for _, e := range flow.Edges {
		touched[e.Source] = true
		touched[e.Target] = true

		if !nodeIDs[e.Source] {
			res.Errors = append(res.Errors, fmt.Sprintf("a conexão %s referencia um nó inexistente: %s", e.ID, e.Source))
		}
		if !nodeIDs[e.Target] {
			res.Errors = append(res.Errors, fmt.Sprintf("a conexão %s referencia um nó inexistente: %s", e.ID, e.Target))
		}
		if e.Source == e.Target {
			res.Warnings = append(res.Warnings, fmt.Sprintf("a conexão %s liga o nó %s a ele mesmo", e.ID, e.Source))
		}
	}
	if hasEntry {
		touched[entry.ID] = true
	}

	for _, n := range flow.Nodes {
		if !touched[n.ID] {
			res.Errors = append(res.Errors, fmt.Sprintf("o nó %s está órfão: conecte-o ao fluxo", n.ID))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}
