package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.FlowStore
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that logs every store call
// with its duration and outcome. Useful while diagnosing a flaky backend.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.FlowStore) ports.FlowStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, flow *domain.CompanyFlow) error {
	start := time.Now()
	err := m.next.Save(ctx, flow)
	m.log("save", flow.CompanyID, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	start := time.Now()
	flow, err := m.next.Load(ctx, companyID)
	m.log("load", companyID, start, err)
	return flow, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, companyID string) error {
	start := time.Now()
	err := m.next.Delete(ctx, companyID)
	m.log("delete", companyID, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return ids, err
}

func (m *loggingMiddleware) log(op, companyID string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if companyID != "" {
		attrs = append(attrs, "company", companyID)
	}
	if err != nil {
		attrs = append(attrs, "err", err)
		m.logger.Warn("flow store call failed", attrs...)
		return
	}
	m.logger.Debug("flow store call", attrs...)
}
