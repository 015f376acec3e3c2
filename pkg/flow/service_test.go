package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caue-mor/saas-solar/pkg/adapters/memory"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/flow"
	"github.com/caue-mor/saas-solar/pkg/graph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validFlow returns a graph that passes validation: GREETING -> QUESTION.
func validFlow(companyID string) *domain.CompanyFlow {
	f := domain.NewCompanyFlow(companyID)
	ed := graph.NewEditor(f)
	g, _ := ed.AddNode(domain.NodeGreeting, domain.Position{})
	q, _ := ed.AddNode(domain.NodeQuestion, domain.Position{})
	ed.Connect(g.ID, q.ID, "")
	return f
}

func TestLoad_NoPriorSaveReturnsDefault(t *testing.T) {
	svc := flow.NewService(memory.NewStore())

	got, err := svc.Load(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", got.CompanyID)
	assert.Equal(t, 0, got.Version)
	assert.Empty(t, got.Nodes)
	assert.Empty(t, got.Edges)
	assert.Equal(t, domain.DefaultGlobalConfig().AgentName, got.GlobalConfig.AgentName)
}

func TestSave_ValidGraphIncrementsVersion(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	saved, err := svc.Save(ctx, validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Version)
	assert.False(t, saved.UpdatedAt.IsZero())
	assert.False(t, saved.CreatedAt.IsZero())

	loaded, err := svc.Load(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	assert.Len(t, loaded.Nodes, 2)
}

func TestSave_VersionStrictlyIncrements(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	current := validFlow("42")
	for i := 1; i <= 5; i++ {
		saved, err := svc.Save(ctx, current, flow.SaveOptions{})
		require.NoError(t, err)
		assert.Equal(t, i, saved.Version)
		current = saved
	}
}

func TestSave_InvalidGraphRejectedAndNothingPersisted(t *testing.T) {
	store := memory.NewStore()
	svc := flow.NewService(store)
	ctx := context.Background()

	// graph with a QUESTION node only: no entry point
	bad := domain.NewCompanyFlow("42")
	ed := graph.NewEditor(bad)
	_, err := ed.AddNode(domain.NodeQuestion, domain.Position{})
	require.NoError(t, err)

	_, err = svc.Save(ctx, bad, flow.SaveOptions{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors[0], "ponto de entrada")

	_, err = store.Load(ctx, "42")
	assert.ErrorIs(t, err, domain.ErrFlowNotFound, "rejected save must not persist")
}

func TestSave_DraftBypassesValidation(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	empty := domain.NewCompanyFlow("42")
	saved, err := svc.Save(ctx, empty, flow.SaveOptions{SkipValidation: true})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Version)

	loaded, err := svc.Load(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	assert.Empty(t, loaded.Nodes)
}

func TestSave_MissingCompanyID(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	_, err := svc.Save(context.Background(), &domain.CompanyFlow{}, flow.SaveOptions{})
	assert.Error(t, err)
}

func TestSave_ExpectedVersionConflict(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	saved, err := svc.Save(ctx, validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err) // stored version is now 1

	stale := 0
	_, err = svc.Save(ctx, saved, flow.SaveOptions{ExpectedVersion: &stale})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	current := 1
	next, err := svc.Save(ctx, saved, flow.SaveOptions{ExpectedVersion: &current})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)
}

func TestSave_DoesNotMutateCallerDocument(t *testing.T) {
	svc := flow.NewService(memory.NewStore())

	f := validFlow("42")
	_, err := svc.Save(context.Background(), f, flow.SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, f.Version, "caller's document must stay untouched")
}

func TestClear(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Save(ctx, validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "42"))

	loaded, err := svc.Load(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Version, "cleared company loads the default document again")
}

func TestDuplicate_ResetsVersionAndRenames(t *testing.T) {
	svc := flow.NewService(memory.NewStore())
	ctx := context.Background()

	first, err := svc.Save(ctx, validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err)
	_, err = svc.Save(ctx, first, flow.SaveOptions{})
	require.NoError(t, err) // version 2

	dup, err := svc.Duplicate(ctx, "42", "Fluxo B")
	require.NoError(t, err)
	assert.Equal(t, "Fluxo B", dup.Name)
	assert.Equal(t, 1, dup.Version)
	assert.Len(t, dup.Nodes, 2, "graph content is carried over")
}

type fixedDirectory struct{ known map[string]bool }

func (d fixedDirectory) Exists(ctx context.Context, companyID string) (bool, error) {
	return d.known[companyID], nil
}

func TestCompanyDirectory_UnknownCompany(t *testing.T) {
	svc := flow.NewService(memory.NewStore(),
		flow.WithCompanyDirectory(fixedDirectory{known: map[string]bool{"42": true}}))
	ctx := context.Background()

	_, err := svc.Load(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	_, err = svc.Save(ctx, validFlow("999"), flow.SaveOptions{})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	_, err = svc.Load(ctx, "42")
	assert.NoError(t, err)
}

type failingStore struct{ *memory.Store }

func (f *failingStore) Save(ctx context.Context, flow *domain.CompanyFlow) error {
	return errors.New("backend unreachable")
}

func TestSave_StoreErrorSurfacesMessage(t *testing.T) {
	svc := flow.NewService(&failingStore{Store: memory.NewStore()})

	_, err := svc.Save(context.Background(), validFlow("42"), flow.SaveOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unreachable")
}

func TestSave_UsesInjectedClock(t *testing.T) {
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := flow.NewService(memory.NewStore(),
		flow.WithClock(func() time.Time { return when }))

	saved, err := svc.Save(context.Background(), validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, when, saved.UpdatedAt)
	assert.Equal(t, when, saved.CreatedAt)
}

func TestMetrics_CountSaves(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := flow.NewService(memory.NewStore(),
		flow.WithMetrics(flow.NewMetrics(reg)))
	ctx := context.Background()

	_, err := svc.Save(ctx, validFlow("42"), flow.SaveOptions{})
	require.NoError(t, err)
	_, _ = svc.Save(ctx, domain.NewCompanyFlow("42"), flow.SaveOptions{})

	families, err := reg.Gather()
	require.NoError(t, err)

	results := make(map[string]float64)
	for _, fam := range families {
		if fam.GetName() != "solarflow_saves_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" {
					results[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(1), results["ok"])
	assert.Equal(t, float64(1), results["invalid"])
}
