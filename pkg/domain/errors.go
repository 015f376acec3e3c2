package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFlowNotFound is returned by stores when no document exists for a company.
var ErrFlowNotFound = errors.New("flow not found")

// ErrCompanyNotFound is returned when the company record itself does not exist.
var ErrCompanyNotFound = errors.New("company not found")

// ErrVersionConflict is returned by a save with ExpectedVersion set when the
// stored version no longer matches.
var ErrVersionConflict = errors.New("flow version conflict")

// ValidationError carries the structural defects found in a graph. The
// messages are human-readable and surfaced verbatim to the caller; a
// validation failure is recoverable by editing the graph, never fatal.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("flow validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidationResult is the outcome of running the validator over a graph.
// Warnings do not make the graph unfit to save.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}
