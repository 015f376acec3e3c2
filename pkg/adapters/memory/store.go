// Package memory provides an in-memory FlowStore, used by tests and by
// single-process deployments that do not need durability.
package memory

import (
	"context"
	"sync"

	"github.com/caue-mor/saas-solar/pkg/domain"
)

// Store implements ports.FlowStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.CompanyFlow
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.CompanyFlow),
	}
}

// Save persists a deep copy of the document, simulating serialization so
// later mutations by the caller cannot reach stored state.
func (s *Store) Save(ctx context.Context, flow *domain.CompanyFlow) error {
	copied := flow.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[flow.CompanyID] = copied
	return nil
}

// Load retrieves a copy of the stored document.
func (s *Store) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flow, ok := s.data[companyID]
	if !ok {
		return nil, domain.ErrFlowNotFound
	}
	// Copy on read so the caller can't mutate store state through the pointer.
	return flow.Clone(), nil
}

// Delete removes the stored document.
func (s *Store) Delete(ctx context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, companyID)
	return nil
}

// List returns companies with a stored document.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	companies := make([]string, 0, len(s.data))
	for id := range s.data {
		companies = append(companies, id)
	}
	return companies, nil
}
