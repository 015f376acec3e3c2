// Package graph holds the in-memory flow graph and its editing operations.
//
// Queries are pure; every mutation replaces the affected slice on the
// underlying document instead of mutating shared elements, so callers can
// layer undo/redo or dirty-tracking on top by keeping old snapshots.
package graph

import "github.com/caue-mor/saas-solar/pkg/domain"

// NodeByID returns the node with the given id, or false when absent.
func NodeByID(flow *domain.CompanyFlow, id string) (domain.FlowNode, bool) {
	for _, n := range flow.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return domain.FlowNode{}, false
}

// EdgesTouching returns every edge whose source or target equals id.
func EdgesTouching(flow *domain.CompanyFlow, id string) []domain.FlowEdge {
	var out []domain.FlowEdge
	for _, e := range flow.Edges {
		if e.Source == id || e.Target == id {
			out = append(out, e)
		}
	}
	return out
}

// OutgoingEdges returns the edges leaving a node. When handle is non-empty
// only edges with that source handle are returned (e.g. the "true" branch
// of a condition node).
func OutgoingEdges(flow *domain.CompanyFlow, id, handle string) []domain.FlowEdge {
	var out []domain.FlowEdge
	for _, e := range flow.Edges {
		if e.Source != id {
			continue
		}
		if handle != "" && e.SourceHandle != handle {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ReachableFrom computes the set of node ids reachable from start by
// following edges forward, start included.
func ReachableFrom(flow *domain.CompanyFlow, start string) map[string]bool {
	visited := make(map[string]bool)
	if _, ok := NodeByID(flow, start); !ok {
		return visited
	}

	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, e := range flow.Edges {
			if e.Source == current && !visited[e.Target] {
				queue = append(queue, e.Target)
			}
		}
	}
	return visited
}

// EntryPoint returns the first GREETING node, or false when the graph has
// no entry point yet.
func EntryPoint(flow *domain.CompanyFlow) (domain.FlowNode, bool) {
	for _, n := range flow.Nodes {
		if n.Type == domain.NodeGreeting {
			return n, true
		}
	}
	return domain.FlowNode{}, false
}
