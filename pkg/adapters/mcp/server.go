// Package mcp exposes the flow service as an MCP server, so agent tooling
// can inspect and edit company flows over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/flow"
	"github.com/caue-mor/saas-solar/pkg/graph"
	"github.com/caue-mor/saas-solar/pkg/template"
)

// FlowResponse is the unified structured result of flow-returning tools.
type FlowResponse struct {
	Flow         *domain.CompanyFlow `json:"flow" jsonschema_description:"The company flow document"`
	DroppedEdges []string            `json:"droppedEdges,omitempty" jsonschema_description:"Template edges discarded during instantiation"`
}

// Server wraps the flow service and exposes it as an MCP Server.
type Server struct {
	svc       *flow.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(svc *flow.Service, version string) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("solarflow-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_flow
	getTool := mcp.NewTool("get_flow",
		mcp.WithDescription("Load the flow document for a company. Returns a default empty document if none was saved yet."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("The company identifier")),
		mcp.WithOutputSchema[FlowResponse](),
	)
	s.mcpServer.AddTool(getTool, mcp.NewStructuredToolHandler(s.handleGetFlow))

	// TOOL: save_flow
	saveTool := mcp.NewTool("save_flow",
		mcp.WithDescription("Validate and persist a flow document. The stored version increments by 1."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("The company identifier")),
		mcp.WithString("flow", mcp.Required(), mcp.Description("JSON object with the flow document (nodes, edges, globalConfig)")),
		mcp.WithBoolean("skip_validation", mcp.Description("Save as draft, bypassing structural validation")),
		mcp.WithOutputSchema[FlowResponse](),
	)
	s.mcpServer.AddTool(saveTool, mcp.NewStructuredToolHandler(s.handleSaveFlow))

	// TOOL: validate_flow
	validateTool := mcp.NewTool("validate_flow",
		mcp.WithDescription("Run structural validation over a flow document without persisting it."),
		mcp.WithString("flow", mcp.Required(), mcp.Description("JSON object with the flow document")),
		mcp.WithOutputSchema[domain.ValidationResult](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidateFlow))

	// TOOL: apply_template
	applyTool := mcp.NewTool("apply_template",
		mcp.WithDescription("Replace a company's graph with an instantiated built-in template and save it."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("The company identifier")),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template id, e.g. residencial")),
		mcp.WithOutputSchema[FlowResponse](),
	)
	s.mcpServer.AddTool(applyTool, mcp.NewStructuredToolHandler(s.handleApplyTemplate))

	// TOOL: list_templates
	s.mcpServer.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the built-in flow templates."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templates, err := template.All()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("template load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(templates)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleGetFlow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FlowResponse, error) {
	companyID, _ := args["company_id"].(string)

	doc, err := s.svc.Load(ctx, companyID)
	if err != nil {
		return FlowResponse{}, fmt.Errorf("load failed: %w", err)
	}
	return FlowResponse{Flow: doc}, nil
}

func (s *Server) handleSaveFlow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FlowResponse, error) {
	companyID, _ := args["company_id"].(string)
	rawFlow, _ := args["flow"].(string)
	skip, _ := args["skip_validation"].(bool)

	var doc domain.CompanyFlow
	if err := json.Unmarshal([]byte(rawFlow), &doc); err != nil {
		return FlowResponse{}, fmt.Errorf("flow is not valid JSON: %w", err)
	}
	doc.CompanyID = companyID

	saved, err := s.svc.Save(ctx, &doc, flow.SaveOptions{SkipValidation: skip})
	if err != nil {
		return FlowResponse{}, fmt.Errorf("save failed: %w", err)
	}
	return FlowResponse{Flow: saved}, nil
}

func (s *Server) handleValidateFlow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.ValidationResult, error) {
	rawFlow, _ := args["flow"].(string)

	var doc domain.CompanyFlow
	if err := json.Unmarshal([]byte(rawFlow), &doc); err != nil {
		return domain.ValidationResult{}, fmt.Errorf("flow is not valid JSON: %w", err)
	}
	return s.svc.Validate(&doc), nil
}

func (s *Server) handleApplyTemplate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FlowResponse, error) {
	companyID, _ := args["company_id"].(string)
	templateID, _ := args["template_id"].(string)

	tpl, err := template.ByID(templateID)
	if err != nil {
		return FlowResponse{}, fmt.Errorf("unknown template: %w", err)
	}
	inst, err := template.Instantiate(tpl)
	if err != nil {
		return FlowResponse{}, fmt.Errorf("template instantiation failed: %w", err)
	}

	doc, err := s.svc.Load(ctx, companyID)
	if err != nil {
		return FlowResponse{}, fmt.Errorf("load failed: %w", err)
	}

	editor := graph.NewEditor(doc)
	editor.ReplaceAll(inst.Nodes, inst.Edges, inst.NextID)

	saved, err := s.svc.Save(ctx, editor.Flow(), flow.SaveOptions{})
	if err != nil {
		return FlowResponse{}, fmt.Errorf("save failed: %w", err)
	}
	return FlowResponse{Flow: saved, DroppedEdges: inst.DroppedEdges}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: solarflow://node-types
	s.mcpServer.AddResource(mcp.NewResource("solarflow://node-types", "Node Type Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(catalog.Definitions())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "solarflow://node-types",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
