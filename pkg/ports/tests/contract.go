package tests

import (
	"context"
	"testing"
	"time"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/graph"
	"github.com/caue-mor/saas-solar/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFlowStoreContract runs a suite of tests to verify that a FlowStore
// implementation adheres to the defined interface contract. Every store
// adapter's test file calls this.
func RunFlowStoreContract(t *testing.T, store ports.FlowStore) {
	ctx := context.Background()
	companyID := "contract-company-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		flow := domain.NewCompanyFlow(companyID)
		ed := graph.NewEditor(flow)
		g, err := ed.AddNode(domain.NodeGreeting, domain.Position{X: 10, Y: 20})
		require.NoError(t, err)
		q, err := ed.AddNode(domain.NodeQuestion, domain.Position{X: 10, Y: 140})
		require.NoError(t, err)
		ed.Connect(g.ID, q.ID, "")
		flow.Version = 3

		err = store.Save(ctx, flow)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, companyID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, companyID, loaded.CompanyID)
		assert.Equal(t, 3, loaded.Version)
		require.Len(t, loaded.Nodes, 2)
		assert.Equal(t, g.ID, loaded.Nodes[0].ID)
		assert.Equal(t, domain.NodeGreeting, loaded.Nodes[0].Type)
		require.Len(t, loaded.Edges, 1)
		assert.Equal(t, flow.NextID, loaded.NextID)
		assert.Equal(t, flow.GlobalConfig.AgentName, loaded.GlobalConfig.AgentName)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+companyID)
		assert.ErrorIs(t, err, domain.ErrFlowNotFound)
	})

	t.Run("Overwrite Is Wholesale", func(t *testing.T) {
		replacement := domain.NewCompanyFlow(companyID)
		replacement.Version = 4
		require.NoError(t, store.Save(ctx, replacement))

		loaded, err := store.Load(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, 4, loaded.Version)
		assert.Empty(t, loaded.Nodes, "old nodes must not survive an overwrite")
	})

	t.Run("Loaded Document Is Isolated", func(t *testing.T) {
		flow := domain.NewCompanyFlow(companyID)
		ed := graph.NewEditor(flow)
		_, err := ed.AddNode(domain.NodeGreeting, domain.Position{})
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, flow))

		first, err := store.Load(ctx, companyID)
		require.NoError(t, err)
		first.Nodes[0].Data["message"] = "mutated"

		second, err := store.Load(ctx, companyID)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second.Nodes[0].Data["message"],
			"mutating a loaded document must not leak into the store")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewCompanyFlow(companyID)))

		err := store.Delete(ctx, companyID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, companyID)
		assert.ErrorIs(t, err, domain.ErrFlowNotFound, "Load after Delete should return ErrFlowNotFound")

		assert.NoError(t, store.Delete(ctx, companyID), "Delete of absent document is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := companyID + "-1"
		id2 := companyID + "-2"
		require.NoError(t, store.Save(ctx, domain.NewCompanyFlow(id1)))
		require.NoError(t, store.Save(ctx, domain.NewCompanyFlow(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		companies, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, companies, id1)
		assert.Contains(t, companies, id2)
	})
}
