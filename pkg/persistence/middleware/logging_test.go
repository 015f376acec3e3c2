package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/caue-mor/saas-solar/pkg/adapters/memory"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/persistence/middleware"
	"github.com/caue-mor/saas-solar/pkg/ports"
	"github.com/caue-mor/saas-solar/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logger))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewCompanyFlow("42")))
	loaded, err := store.Load(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", loaded.CompanyID)

	assert.Contains(t, buf.String(), "op=save")
	assert.Contains(t, buf.String(), "company=42")
}

func TestLoggingMiddleware_Contract(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	var store ports.FlowStore = middleware.Chain(
		memory.NewStore(),
		middleware.NewLoggingMiddleware(logger),
	)
	tests.RunFlowStoreContract(t, store)
}
