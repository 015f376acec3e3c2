package validator

import (
	"testing"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyGraph(t *testing.T) {
	res := Validate(domain.NewCompanyFlow("1"))
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "vazio")
}

func TestValidate_MissingEntryPoint(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	_, err := ed.AddNode(domain.NodeQuestion, domain.Position{})
	require.NoError(t, err)

	res := Validate(flow)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "o fluxo não tem ponto de entrada: adicione um nó de saudação (GREETING)")
}

func TestValidate_SingleGreetingIsValid(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	_, err := ed.AddNode(domain.NodeGreeting, domain.Position{})
	require.NoError(t, err)

	res := Validate(flow)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_OrphanNode(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	g, _ := ed.AddNode(domain.NodeGreeting, domain.Position{})
	q, _ := ed.AddNode(domain.NodeQuestion, domain.Position{})
	orphan, _ := ed.AddNode(domain.NodeMessage, domain.Position{})
	ed.Connect(g.ID, q.ID, "")

	res := Validate(flow)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], orphan.ID)
}

func TestValidate_DeadBranchStillPasses(t *testing.T) {
	// The orphan rule is touched-by-any-edge, not reachability from the
	// entry point: two nodes wired only to each other pass.
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	g, _ := ed.AddNode(domain.NodeGreeting, domain.Position{})
	q, _ := ed.AddNode(domain.NodeQuestion, domain.Position{})
	deadA, _ := ed.AddNode(domain.NodeMessage, domain.Position{})
	deadB, _ := ed.AddNode(domain.NodeHandoff, domain.Position{})
	ed.Connect(g.ID, q.ID, "")
	ed.Connect(deadA.ID, deadB.ID, "")

	res := Validate(flow)
	assert.True(t, res.Valid)
}

func TestValidate_ReportsAllErrorsTogether(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	ed.AddNode(domain.NodeQuestion, domain.Position{})
	ed.AddNode(domain.NodeMessage, domain.Position{})

	res := Validate(flow)
	assert.False(t, res.Valid)
	// missing entry point + two orphans, reported together
	assert.Len(t, res.Errors, 3)
}

func TestValidate_SelfLoopIsWarningOnly(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	g, _ := ed.AddNode(domain.NodeGreeting, domain.Position{})
	ed.Connect(g.ID, g.ID, "")

	res := Validate(flow)
	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], g.ID)
}

func TestValidate_DanglingEdgeEndpoint(t *testing.T) {
	// Can only arise in hand-imported documents; the editor itself cascades
	// deletes.
	flow := domain.NewCompanyFlow("1")
	flow.Nodes = []domain.FlowNode{{ID: "node-1", Type: domain.NodeGreeting, Data: map[string]any{}}}
	flow.Edges = []domain.FlowEdge{{ID: "edge-x", Source: "node-1", Target: "node-9"}}

	res := Validate(flow)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "node-9")
}

func TestValidate_DoesNotMutate(t *testing.T) {
	flow := domain.NewCompanyFlow("1")
	ed := graph.NewEditor(flow)
	ed.AddNode(domain.NodeQuestion, domain.Position{})
	nodesBefore := len(flow.Nodes)
	edgesBefore := len(flow.Edges)

	Validate(flow)

	assert.Equal(t, nodesBefore, len(flow.Nodes))
	assert.Equal(t, edgesBefore, len(flow.Edges))
}
