package domain

// FlowTemplate is a read-only seed graph used to bootstrap a company's flow.
//
// Its nodes carry placeholder ids (node-1, node-2, ...) that are independent
// of any live document; the template instantiator remaps them before the
// graph is installed. Templates are never persisted directly.
type FlowTemplate struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Category    string     `json:"category" yaml:"category"`
	Description string     `json:"description" yaml:"description"`
	Icon        string     `json:"icon" yaml:"icon"`
	Nodes       []FlowNode `json:"nodes" yaml:"nodes"`
	Edges       []FlowEdge `json:"edges" yaml:"edges"`
}
