package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload_AllTypes(t *testing.T) {
	// Every catalog member must decode an empty object into its payload type.
	for _, nt := range AllNodeTypes() {
		p, err := DecodePayload(nt, map[string]any{})
		require.NoError(t, err, "type %s", nt)
		require.NotNil(t, p, "type %s", nt)
	}
}

func TestDecodePayload_Condition(t *testing.T) {
	p, err := DecodePayload(NodeCondition, map[string]any{
		"variable": "consumo_mensal",
		"operator": "gte",
		"value":    "500",
	})
	require.NoError(t, err)

	cond, ok := p.(*ConditionData)
	require.True(t, ok, "expected *ConditionData, got %T", p)
	assert.Equal(t, "consumo_mensal", cond.Variable)
	assert.Equal(t, "gte", cond.Operator)
	assert.Equal(t, "500", cond.Value)
}

func TestDecodePayload_WeakNumbers(t *testing.T) {
	// JSON unmarshals numbers as float64; the decoder must accept them.
	p, err := DecodePayload(NodeFollowUp, map[string]any{
		"message":    "Ainda com a gente?",
		"delayHours": float64(24),
	})
	require.NoError(t, err)
	assert.Equal(t, 24, p.(*FollowUpData).DelayHours)
}

func TestDecodePayload_IgnoresUnknownKeys(t *testing.T) {
	p, err := DecodePayload(NodeMessage, map[string]any{
		"message": "olá",
		"color":   "#f59e0b", // editor-only key, not part of the payload
	})
	require.NoError(t, err)
	assert.Equal(t, "olá", p.(*MessageData).Message)
}

func TestDecodePayload_UnknownType(t *testing.T) {
	_, err := DecodePayload(NodeType("TELEPORT"), map[string]any{})
	assert.Error(t, err)
}

func TestCompanyFlow_CloneIsolation(t *testing.T) {
	orig := NewCompanyFlow("42")
	orig.Nodes = append(orig.Nodes, FlowNode{
		ID:   "node-1",
		Type: NodeGreeting,
		Data: map[string]any{"message": "Oi!"},
	})

	c := orig.Clone()
	c.Nodes[0].Data["message"] = "mutated"
	c.Nodes = append(c.Nodes, FlowNode{ID: "node-2", Type: NodeMessage})

	assert.Equal(t, "Oi!", orig.Nodes[0].Data["message"])
	assert.Len(t, orig.Nodes, 1)
}
