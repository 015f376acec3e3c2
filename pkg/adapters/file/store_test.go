package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/caue-mor/saas-solar/pkg/adapters/file"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	tests.RunFlowStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_WritesOneFilePerCompany(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewCompanyFlow("42")))

	data, err := os.ReadFile(filepath.Join(dir, "42.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"companyId": "42"`)
}

func TestFileStore_EmptyCompanyID(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, &domain.CompanyFlow{}))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
}
