// Package redis persists flow documents in Redis, one JSON blob per
// company, with a set index for listing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caue-mor/saas-solar/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.FlowStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for flow documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "solar:flow:",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(companyID string) string {
	return s.prefix + companyID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save overwrites the document and indexes the company id, atomically via
// a pipeline.
func (s *Store) Save(ctx context.Context, flow *domain.CompanyFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal flow: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(flow.CompanyID), data, 0)
	pipe.SAdd(ctx, s.indexKey(), flow.CompanyID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves and unmarshals the document.
func (s *Store) Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error) {
	val, err := s.client.Get(ctx, s.key(companyID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var flow domain.CompanyFlow
	if err := json.Unmarshal([]byte(val), &flow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flow: %w", err)
	}
	return &flow, nil
}

// Delete removes the document and its index entry.
func (s *Store) Delete(ctx context.Context, companyID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(companyID))
	pipe.SRem(ctx, s.indexKey(), companyID)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns companies with a stored document.
func (s *Store) List(ctx context.Context) ([]string, error) {
	companies, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}
	return companies, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
