// Package flow implements the persistence protocol for company flow
// documents: load with default synthesis, validated save with draft bypass
// and version increment, clear, and duplicate.
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/ports"
	"github.com/caue-mor/saas-solar/pkg/validator"
)

// ValidateFunc decides whether a graph is fit to be saved as the active
// flow. The default is validator.Validate.
type ValidateFunc func(*domain.CompanyFlow) domain.ValidationResult

// Service coordinates the validator and the flow store. It does not retry
// store failures; retry/backoff is the caller's responsibility.
type Service struct {
	store     ports.FlowStore
	companies ports.CompanyDirectory
	validate  ValidateFunc
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithCompanyDirectory wires the CRM's company records so load can tell
// "nothing saved yet" apart from "company doesn't exist". Without it every
// company id is accepted.
func WithCompanyDirectory(dir ports.CompanyDirectory) Option {
	return func(s *Service) {
		s.companies = dir
	}
}

// WithValidator replaces the structural validator.
func WithValidator(v ValidateFunc) Option {
	return func(s *Service) {
		s.validate = v
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a flow service backed by the given store.
func NewService(store ports.FlowStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		validate: validator.Validate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// Load fetches the company's flow document. When no document was ever
// saved it synthesizes the default empty flow (version 0) — "no document
// yet" is not an error. It returns domain.ErrCompanyNotFound when the
// company record itself does not exist.
func (s *Service) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	if companyID == "" {
		return nil, fmt.Errorf("companyID is required")
	}
	if err := s.checkCompany(ctx, companyID); err != nil {
		return nil, err
	}

	s.metrics.incLoad()

	stored, err := s.store.Load(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrFlowNotFound) {
			return domain.NewCompanyFlow(companyID), nil
		}
		s.logger.Error("flow load failed", "company", companyID, "err", err)
		return nil, fmt.Errorf("failed to load flow: %w", err)
	}
	return stored, nil
}

// SaveOptions tunes one save call.
type SaveOptions struct {
	// SkipValidation checkpoints a draft: the graph is stored even when it
	// has no entry point or has orphans.
	SkipValidation bool
	// ExpectedVersion, when set, rejects the save with
	// domain.ErrVersionConflict unless the stored version matches.
	// Unset keeps the historical last-write-wins behavior.
	ExpectedVersion *int
}

// Save validates (unless skipped) and persists the document, incrementing
// its version by exactly 1 relative to the version held by the caller and
// overwriting the stored document wholesale. On validation failure it
// returns a *domain.ValidationError and persists nothing.
func (s *Service) Save(ctx context.Context, flow *domain.CompanyFlow, opts SaveOptions) (*domain.CompanyFlow, error) {
	if flow == nil || flow.CompanyID == "" {
		return nil, fmt.Errorf("companyID is required")
	}
	if err := s.checkCompany(ctx, flow.CompanyID); err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if res := s.validate(flow); !res.Valid {
			s.metrics.incSave("invalid")
			s.logger.Info("flow rejected by validation",
				"company", flow.CompanyID, "errors", len(res.Errors))
			return nil, &domain.ValidationError{Errors: res.Errors}
		}
	}

	if opts.ExpectedVersion != nil {
		if err := s.checkVersion(ctx, flow.CompanyID, *opts.ExpectedVersion); err != nil {
			s.metrics.incSave("conflict")
			return nil, err
		}
	}

	saved := flow.Clone()
	saved.Version = flow.Version + 1
	saved.UpdatedAt = s.now()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = saved.UpdatedAt
	}

	start := s.now()
	if err := s.store.Save(ctx, saved); err != nil {
		s.metrics.incSave("error")
		s.logger.Error("flow save failed", "company", flow.CompanyID, "err", err)
		return nil, fmt.Errorf("failed to save flow: %w", err)
	}
	s.metrics.observeSave(s.now().Sub(start))
	s.metrics.incSave("ok")

	s.logger.Info("flow saved",
		"company", saved.CompanyID,
		"version", saved.Version,
		"nodes", len(saved.Nodes),
		"edges", len(saved.Edges),
		"draft", opts.SkipValidation)
	return saved, nil
}

// Clear nulls the stored document. This silently disables any live
// conversation relying on the flow, so outer surfaces must gate it behind
// an explicit confirmation.
func (s *Service) Clear(ctx context.Context, companyID string) error {
	if companyID == "" {
		return fmt.Errorf("companyID is required")
	}
	if err := s.checkCompany(ctx, companyID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, companyID); err != nil {
		s.logger.Error("flow clear failed", "company", companyID, "err", err)
		return fmt.Errorf("failed to clear flow: %w", err)
	}
	s.logger.Info("flow cleared", "company", companyID)
	return nil
}

// Duplicate reloads the company's document, stamps a new name and saves it
// as if new (version resets to 1). One flow per company: this is a
// rename/reset of the single document, not a second concurrent flow.
func (s *Service) Duplicate(ctx context.Context, companyID, newName string) (*domain.CompanyFlow, error) {
	current, err := s.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}

	fresh := current.Clone()
	fresh.ID = ""
	fresh.Name = newName
	fresh.Version = 0
	fresh.CreatedAt = time.Time{}

	return s.Save(ctx, fresh, SaveOptions{SkipValidation: true})
}

// Validate runs the structural validator without persisting anything.
func (s *Service) Validate(flow *domain.CompanyFlow) domain.ValidationResult {
	return s.validate(flow)
}

func (s *Service) checkCompany(ctx context.Context, companyID string) error {
	if s.companies == nil {
		return nil
	}
	ok, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to check company %s: %w", companyID, err)
	}
	if !ok {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (s *Service) checkVersion(ctx context.Context, companyID string, expected int) error {
	stored, err := s.store.Load(ctx, companyID)
	storedVersion := 0
	if err != nil {
		if !errors.Is(err, domain.ErrFlowNotFound) {
			return fmt.Errorf("failed to check stored version: %w", err)
		}
	} else {
		storedVersion = stored.Version
	}

	if storedVersion != expected {
		return fmt.Errorf("%w: stored version %d, expected %d",
			domain.ErrVersionConflict, storedVersion, expected)
	}
	return nil
}
