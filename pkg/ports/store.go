package ports

import (
	"context"

	"github.com/caue-mor/saas-solar/pkg/domain"
)

// FlowStore persists flow documents keyed by company id. The whole graph is
// one opaque document; there are no independent rows per node or edge.
type FlowStore interface {
	// Save overwrites the stored document for flow.CompanyID wholesale.
	Save(ctx context.Context, flow *domain.CompanyFlow) error

	// Load retrieves the document for a company.
	// Returns domain.ErrFlowNotFound if none was ever saved.
	Load(ctx context.Context, companyID string) (*domain.CompanyFlow, error)

	// Delete clears the stored document. Deleting an absent document is
	// not an error.
	Delete(ctx context.Context, companyID string) error

	// List returns the ids of companies with a stored document.
	List(ctx context.Context) ([]string, error)
}

// CompanyDirectory is the engine's window into the CRM's company records.
// The record CRUD screens own the data; the flow service only needs to tell
// "nothing saved yet" apart from "company doesn't exist".
type CompanyDirectory interface {
	// Exists reports whether the company record exists.
	Exists(ctx context.Context, companyID string) (bool, error)
}
