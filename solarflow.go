package solarflow

import (
	"context"
	"log/slog"

	"github.com/caue-mor/saas-solar/pkg/adapters/file"
	"github.com/caue-mor/saas-solar/pkg/adapters/memory"
	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/flow"
	"github.com/caue-mor/saas-solar/pkg/graph"
	"github.com/caue-mor/saas-solar/pkg/ports"
	"github.com/caue-mor/saas-solar/pkg/template"
)

// Version of the library, stamped into the CLI and the MCP server name.
const Version = "0.1.0"

// Manager is the high-level entry point for the SolarFlow library.
// It wraps the flow service and provides a simplified API for consumers
// that don't want to assemble stores, validators and metrics themselves.
type Manager struct {
	svc    *flow.Service
	store  ports.FlowStore
	opts   []flow.Option
	logger *slog.Logger
}

// Option defines a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore injects a custom flow store, bypassing the default in-memory one.
func WithStore(store ports.FlowStore) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithFileStore persists flows as JSON documents under dir.
func WithFileStore(dir string) Option {
	return func(m *Manager) {
		m.store = file.New(dir)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithCompanyDirectory gates every operation on company existence.
func WithCompanyDirectory(dir ports.CompanyDirectory) Option {
	return func(m *Manager) {
		m.opts = append(m.opts, flow.WithCompanyDirectory(dir))
	}
}

// WithMetrics wires prometheus instrumentation into the flow service.
func WithMetrics(metrics *flow.Metrics) Option {
	return func(m *Manager) {
		m.opts = append(m.opts, flow.WithMetrics(metrics))
	}
}

// New initializes a Manager. Without options it keeps flows in memory,
// which suits tests and throwaway environments.
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = memory.NewStore()
	}
	if m.logger != nil {
		m.opts = append(m.opts, flow.WithLogger(m.logger))
	}

	m.svc = flow.NewService(m.store, m.opts...)
	return m
}

// Service exposes the underlying flow service for adapters (HTTP, MCP).
func (m *Manager) Service() *flow.Service {
	return m.svc
}

// Load returns the company's flow document, or a default empty one.
func (m *Manager) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	return m.svc.Load(ctx, companyID)
}

// Save validates and persists the document, returning the stored copy with
// its incremented version.
func (m *Manager) Save(ctx context.Context, doc *domain.CompanyFlow) (*domain.CompanyFlow, error) {
	return m.svc.Save(ctx, doc, flow.SaveOptions{})
}

// SaveDraft persists the document without structural validation.
func (m *Manager) SaveDraft(ctx context.Context, doc *domain.CompanyFlow) (*domain.CompanyFlow, error) {
	return m.svc.Save(ctx, doc, flow.SaveOptions{SkipValidation: true})
}

// Clear removes the company's stored document.
func (m *Manager) Clear(ctx context.Context, companyID string) error {
	return m.svc.Clear(ctx, companyID)
}

// Duplicate saves a renamed copy of the current flow as a fresh document.
func (m *Manager) Duplicate(ctx context.Context, companyID, newName string) (*domain.CompanyFlow, error) {
	return m.svc.Duplicate(ctx, companyID, newName)
}

// Validate runs the structural validator without persisting anything.
func (m *Manager) Validate(doc *domain.CompanyFlow) domain.ValidationResult {
	return m.svc.Validate(doc)
}

// ApplyTemplate replaces the company's graph with an instantiated built-in
// template and saves the result. Returns the saved document and the ids of
// any template edges dropped during instantiation.
func (m *Manager) ApplyTemplate(ctx context.Context, companyID, templateID string) (*domain.CompanyFlow, []string, error) {
	tpl, err := template.ByID(templateID)
	if err != nil {
		return nil, nil, err
	}
	inst, err := template.Instantiate(tpl)
	if err != nil {
		return nil, nil, err
	}

	doc, err := m.svc.Load(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}

	editor := graph.NewEditor(doc)
	editor.ReplaceAll(inst.Nodes, inst.Edges, inst.NextID)

	saved, err := m.svc.Save(ctx, editor.Flow(), flow.SaveOptions{})
	if err != nil {
		return nil, nil, err
	}
	return saved, inst.DroppedEdges, nil
}

// Templates lists the built-in flow templates.
func (m *Manager) Templates() ([]domain.FlowTemplate, error) {
	return template.All()
}

// NodeTypes lists the node catalog for the editor palette.
func (m *Manager) NodeTypes() []catalog.Definition {
	return catalog.Definitions()
}
