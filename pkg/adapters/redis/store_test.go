package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/caue-mor/saas-solar/pkg/adapters/redis"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	tests.RunFlowStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err = store.Save(ctx, domain.NewCompanyFlow("42"))
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:42"), "expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix to exist")

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, "42")
}

func TestRedisStore_DeleteRemovesIndexEntry(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewCompanyFlow("7")))
	require.NoError(t, store.Delete(ctx, "7"))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, list, "7")
}
