package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caue-mor/saas-solar/pkg/adapters/memory"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/flow"
)

func newTestServer() *Server {
	return NewServer(flow.NewService(memory.NewStore()), "test")
}

func TestHandleGetFlow_Default(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleGetFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"company_id": "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", resp.Flow.CompanyID)
	assert.Equal(t, 0, resp.Flow.Version)
}

func TestHandleSaveFlow(t *testing.T) {
	s := newTestServer()

	doc := domain.NewCompanyFlow("acme")
	doc.Nodes = []domain.FlowNode{
		{ID: "node-1", Type: domain.NodeGreeting, Data: map[string]any{"message": "Olá!"}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	resp, err := s.handleSaveFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"company_id": "acme",
		"flow":       string(raw),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Flow.Version)
}

func TestHandleSaveFlow_InvalidJSON(t *testing.T) {
	s := newTestServer()

	_, err := s.handleSaveFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"company_id": "acme",
		"flow":       "{not json",
	})
	assert.Error(t, err)
}

func TestHandleValidateFlow(t *testing.T) {
	s := newTestServer()

	raw, err := json.Marshal(domain.NewCompanyFlow("acme"))
	require.NoError(t, err)

	result, err := s.handleValidateFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"flow": string(raw),
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestHandleApplyTemplate(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleApplyTemplate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"company_id":  "acme",
		"template_id": "residencial",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Flow.Version)
	assert.NotEmpty(t, resp.Flow.Nodes)
	assert.Empty(t, resp.DroppedEdges)
	assert.Equal(t, "node-1", resp.Flow.Nodes[0].ID)
}

func TestHandleApplyTemplate_Unknown(t *testing.T) {
	s := newTestServer()

	_, err := s.handleApplyTemplate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"company_id":  "acme",
		"template_id": "nope",
	})
	assert.Error(t, err)
}
