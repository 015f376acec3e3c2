package domain

import "time"

// Position holds the canvas coordinates of a node in the visual editor.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// FlowNode represents one step of the conversation graph.
//
// The ID is opaque and assigned by the graph editor, never by the user.
// Data is the type-specific payload; its wire shape is a JSON object and
// its typed form is obtained via DecodePayload.
type FlowNode struct {
	ID       string         `json:"id" yaml:"id"`
	Type     NodeType       `json:"type" yaml:"type"`
	Position Position       `json:"position" yaml:"position"`
	Data     map[string]any `json:"data" yaml:"data"`
}

// FlowEdge is a directed transition between two nodes.
//
// SourceHandle disambiguates multiple outgoing branches from one node;
// CONDITION nodes use the "true" and "false" handles. Self-loops are
// representable but flagged by validation as a non-fatal warning.
type FlowEdge struct {
	ID           string `json:"id" yaml:"id"`
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
	SourceHandle string `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`
}

// CompanyFlow is the persisted flow document. One document per company;
// CompanyID is the identity key.
//
// Version is monotonic: every successful save increments it by exactly 1
// and replaces the previous document wholesale. NextID persists the node
// id counter so that id assignment never needs to rescan the node set.
type CompanyFlow struct {
	ID           string       `json:"id,omitempty"`
	CompanyID    string       `json:"companyId"`
	Name         string       `json:"name"`
	Version      int          `json:"version"`
	Active       bool         `json:"active"`
	Nodes        []FlowNode   `json:"nodes"`
	Edges        []FlowEdge   `json:"edges"`
	NextID       int          `json:"nextId"`
	GlobalConfig GlobalConfig `json:"globalConfig"`
	CreatedAt    time.Time    `json:"createdAt,omitzero"`
	UpdatedAt    time.Time    `json:"updatedAt,omitzero"`
}

// NewCompanyFlow returns the default empty document for a company that has
// never saved a flow. "No document yet" is not an error: load synthesizes
// this value with version 0.
func NewCompanyFlow(companyID string) *CompanyFlow {
	return &CompanyFlow{
		CompanyID:    companyID,
		Name:         "Fluxo de Vendas",
		Version:      0,
		Active:       false,
		Nodes:        []FlowNode{},
		Edges:        []FlowEdge{},
		NextID:       1,
		GlobalConfig: DefaultGlobalConfig(),
	}
}

// Clone returns a deep copy of the flow so callers can mutate the result
// without aliasing the original's slices or payload maps.
func (f *CompanyFlow) Clone() *CompanyFlow {
	c := *f
	c.Nodes = make([]FlowNode, len(f.Nodes))
	for i, n := range f.Nodes {
		c.Nodes[i] = n.clone()
	}
	c.Edges = make([]FlowEdge, len(f.Edges))
	copy(c.Edges, f.Edges)
	return &c
}

func (n FlowNode) clone() FlowNode {
	c := n
	c.Data = make(map[string]any, len(n.Data))
	for k, v := range n.Data {
		c.Data[k] = v
	}
	return c
}
