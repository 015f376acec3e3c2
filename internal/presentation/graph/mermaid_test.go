package graph_test

import (
	"strings"
	"testing"

	"github.com/caue-mor/saas-solar/internal/presentation/graph"
	"github.com/caue-mor/saas-solar/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		flow     *domain.CompanyFlow
		contains []string
	}{
		{
			name: "Greeting Node Shape",
			flow: &domain.CompanyFlow{
				Nodes: []domain.FlowNode{
					{ID: "node-1", Type: domain.NodeGreeting},
				},
			},
			contains: []string{
				"node_1((\"Saudação <br/> node-1\"))",
			},
		},
		{
			name: "Condition Node Shape",
			flow: &domain.CompanyFlow{
				Nodes: []domain.FlowNode{
					{ID: "node-1", Type: domain.NodeCondition},
				},
			},
			contains: []string{
				"node_1{\"Condição <br/> node-1\"}",
			},
		},
		{
			name: "Capture Node Shape",
			flow: &domain.CompanyFlow{
				Nodes: []domain.FlowNode{
					{ID: "node-1", Type: domain.NodeConsumptionCapture},
				},
			},
			contains: []string{
				"node_1[/\"",
			},
		},
		{
			name: "Labeled Condition Branches",
			flow: &domain.CompanyFlow{
				Nodes: []domain.FlowNode{
					{ID: "node-1", Type: domain.NodeCondition},
					{ID: "node-2", Type: domain.NodeMessage},
					{ID: "node-3", Type: domain.NodeMessage},
				},
				Edges: []domain.FlowEdge{
					{ID: "edge-node-1-node-2-true", Source: "node-1", Target: "node-2", SourceHandle: domain.HandleTrue},
					{ID: "edge-node-1-node-3-false", Source: "node-1", Target: "node-3", SourceHandle: domain.HandleFalse},
				},
			},
			contains: []string{
				"node_1 -- \"true\" --> node_2",
				"node_1 -- \"false\" --> node_3",
			},
		},
		{
			name: "Palette Colors Applied",
			flow: &domain.CompanyFlow{
				Nodes: []domain.FlowNode{
					{ID: "node-1", Type: domain.NodeGreeting},
				},
			},
			contains: []string{
				"classDef greeting fill:#22c55e",
				"class node_1 greeting;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.flow)
			if !strings.HasPrefix(out, "graph TD\n") {
				t.Errorf("expected flowchart header, got %q", out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
