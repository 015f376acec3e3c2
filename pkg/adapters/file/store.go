// Package file implements a FlowStore on the local filesystem, one JSON
// file per company. Intended for local development and small single-node
// installs.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caue-mor/saas-solar/pkg/domain"
)

// Store implements ports.FlowStore using the local filesystem.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".solarflow/flows".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".solarflow", "flows")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(companyID string) string {
	return filepath.Join(s.BasePath, companyID+".json")
}

// Save persists the document atomically: write to a temp file in the same
// directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, flow *domain.CompanyFlow) error {
	if flow.CompanyID == "" {
		return fmt.Errorf("companyID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure flow directory: %w", err)
	}

	data, err := json.MarshalIndent(flow, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal flow: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+flow.CompanyID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // gone already if the rename happened
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(flow.CompanyID)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves the document from disk.
func (s *Store) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	if companyID == "" {
		return nil, fmt.Errorf("companyID cannot be empty")
	}

	data, err := os.ReadFile(s.path(companyID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to read flow file: %w", err)
	}

	var flow domain.CompanyFlow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flow file: %w", err)
	}
	return &flow, nil
}

// Delete removes the document file.
func (s *Store) Delete(ctx context.Context, companyID string) error {
	if companyID == "" {
		return fmt.Errorf("companyID cannot be empty")
	}

	err := os.Remove(s.path(companyID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete flow file: %w", err)
	}
	return nil
}

// List returns companies with a stored document.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	var companies []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			companies = append(companies, name[:len(name)-len(".json")])
		}
	}
	return companies, nil
}
