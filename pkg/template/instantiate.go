package template

import (
	"fmt"

	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/graph"
)

// Instance is a template clone ready to be installed as the entire graph of
// a document (via graph.Editor.ReplaceAll). NextID is the counter value
// after installation: N+1 for an N-node template.
type Instance struct {
	Nodes  []domain.FlowNode
	Edges  []domain.FlowEdge
	NextID int
	// DroppedEdges lists template edge ids whose placeholder reference fell
	// outside the node array. A well-authored template drops nothing;
	// callers should log what gets dropped.
	DroppedEdges []string
}

// Instantiate clones a template into a fresh node/edge set with remapped
// identifiers.
//
// Node ids are re-sequenced to node-1..node-N in template array order. Edge
// endpoints are remapped by parsing the numeric suffix of the placeholder
// and using it as a 1-based index into the template node array, so
// templates can be authored independently of any live document's counter.
// Edges whose placeholder resolves outside the array are dropped rather
// than crashing the editor.
func Instantiate(tpl domain.FlowTemplate) (*Instance, error) {
	nodes := make([]domain.FlowNode, len(tpl.Nodes))
	for i, n := range tpl.Nodes {
		if _, err := catalog.Lookup(n.Type); err != nil {
			return nil, fmt.Errorf("template %q node %d: %w", tpl.ID, i+1, err)
		}

		data := make(map[string]any, len(n.Data))
		for k, v := range n.Data {
			data[k] = v
		}
		nodes[i] = domain.FlowNode{
			ID:       fmt.Sprintf("node-%d", i+1),
			Type:     n.Type,
			Position: n.Position,
			Data:     data,
		}
	}

	inst := &Instance{
		Nodes:  nodes,
		NextID: len(nodes) + 1,
		Edges:  make([]domain.FlowEdge, 0, len(tpl.Edges)),
	}

	for _, e := range tpl.Edges {
		src, okSrc := remap(nodes, e.Source)
		dst, okDst := remap(nodes, e.Target)
		if !okSrc || !okDst {
			inst.DroppedEdges = append(inst.DroppedEdges, e.ID)
			continue
		}

		id := fmt.Sprintf("edge-%s-%s", src, dst)
		if e.SourceHandle != "" {
			id = fmt.Sprintf("edge-%s-%s-%s", src, dst, e.SourceHandle)
		}
		inst.Edges = append(inst.Edges, domain.FlowEdge{
			ID:           id,
			Source:       src,
			Target:       dst,
			SourceHandle: e.SourceHandle,
		})
	}

	return inst, nil
}

// remap resolves a placeholder id to the new id at the same array position.
func remap(nodes []domain.FlowNode, placeholder string) (string, bool) {
	idx, ok := graph.NumericSuffix(placeholder)
	if !ok || idx < 1 || idx > len(nodes) {
		return "", false
	}
	return nodes[idx-1].ID, true
}
