package graph

import (
	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
)

// Editor applies the interactive editing operations to a flow document.
//
// Operations that reference a missing node id are silent no-ops rather than
// errors: the editor UI can legitimately race a delete against an in-flight
// edit, and idempotence is the contract that keeps that race harmless.
type Editor struct {
	flow *domain.CompanyFlow
}

// NewEditor wraps a flow document for editing. Documents imported without a
// persisted id counter get one seeded from the highest numeric suffix in
// the node set.
func NewEditor(flow *domain.CompanyFlow) *Editor {
	if flow.NextID <= 0 {
		ids := make([]string, 0, len(flow.Nodes))
		for _, n := range flow.Nodes {
			ids = append(ids, n.ID)
		}
		flow.NextID = seedCounter(ids)
	}
	return &Editor{flow: flow}
}

// Flow returns the document under edit.
func (e *Editor) Flow() *domain.CompanyFlow {
	return e.flow
}

// AddNode appends a new node of the given type at the given position, with
// the catalog's default payload and the next sequential id. It fails only
// for a type the catalog does not know.
func (e *Editor) AddNode(t domain.NodeType, pos domain.Position) (domain.FlowNode, error) {
	data, err := catalog.DefaultData(t)
	if err != nil {
		return domain.FlowNode{}, err
	}

	node := domain.FlowNode{
		ID:       nodeID(e.flow.NextID),
		Type:     t,
		Position: pos,
		Data:     data,
	}
	e.flow.NextID++

	nodes := make([]domain.FlowNode, len(e.flow.Nodes), len(e.flow.Nodes)+1)
	copy(nodes, e.flow.Nodes)
	e.flow.Nodes = append(nodes, node)
	return node, nil
}

// Connect appends a directed edge with a deterministic id. Duplicate
// connects produce duplicate multi-edges; flagging redundancy is the
// validator's concern, not the connector's.
func (e *Editor) Connect(source, target, handle string) domain.FlowEdge {
	edge := domain.FlowEdge{
		ID:           edgeID(source, target, handle),
		Source:       source,
		Target:       target,
		SourceHandle: handle,
	}

	edges := make([]domain.FlowEdge, len(e.flow.Edges), len(e.flow.Edges)+1)
	copy(edges, e.flow.Edges)
	e.flow.Edges = append(edges, edge)
	return edge
}

// UpdateNodeData merges patch into the node's payload. Missing ids are a
// silent no-op.
func (e *Editor) UpdateNodeData(id string, patch map[string]any) {
	for i, n := range e.flow.Nodes {
		if n.ID != id {
			continue
		}

		data := make(map[string]any, len(n.Data)+len(patch))
		for k, v := range n.Data {
			data[k] = v
		}
		for k, v := range patch {
			data[k] = v
		}

		nodes := make([]domain.FlowNode, len(e.flow.Nodes))
		copy(nodes, e.flow.Nodes)
		nodes[i].Data = data
		e.flow.Nodes = nodes
		return
	}
}

// MoveNode repositions a node on the canvas. Missing ids are a silent no-op.
func (e *Editor) MoveNode(id string, pos domain.Position) {
	for i, n := range e.flow.Nodes {
		if n.ID != id {
			continue
		}
		nodes := make([]domain.FlowNode, len(e.flow.Nodes))
		copy(nodes, e.flow.Nodes)
		nodes[i].Position = pos
		e.flow.Nodes = nodes
		return
	}
}

// DeleteNode removes the node and, atomically, every edge touching it. No
// edge may ever reference a non-existent node; this is the operation that
// upholds that invariant.
func (e *Editor) DeleteNode(id string) {
	nodes := make([]domain.FlowNode, 0, len(e.flow.Nodes))
	found := false
	for _, n := range e.flow.Nodes {
		if n.ID == id {
			found = true
			continue
		}
		nodes = append(nodes, n)
	}
	if !found {
		return
	}

	edges := make([]domain.FlowEdge, 0, len(e.flow.Edges))
	for _, ed := range e.flow.Edges {
		if ed.Source == id || ed.Target == id {
			continue
		}
		edges = append(edges, ed)
	}

	e.flow.Nodes = nodes
	e.flow.Edges = edges
}

// ReplaceAll installs an entirely new graph, discarding the current one.
// Template loading is a full replace by design: merging a template into an
// edited graph risks id collisions and dangling edges.
func (e *Editor) ReplaceAll(nodes []domain.FlowNode, edges []domain.FlowEdge, nextID int) {
	e.flow.Nodes = nodes
	e.flow.Edges = edges
	e.flow.NextID = nextID
}
