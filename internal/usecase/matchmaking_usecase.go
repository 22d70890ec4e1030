// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mawadda/internal/domain/entity"
	"mawadda/internal/domain/matching"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// FindMatchesInput defines the data required to run a match search.
type FindMatchesInput struct {
	ReferenceID uuid.UUID

	// Overrides are the caller's ad-hoc filter adjustments; nil or empty
	// means "search with the stored preferences".
	Overrides matching.Filters

	// RequestID propagates the request correlation id into the published
	// search event.
	RequestID string
}

// ListReferencesInput narrows the reference listing to one staff member's
// pool. When both ids are nil the caller sees every eligible reference.
type ListReferencesInput struct {
	MatchmakerID *uuid.UUID
	AgencyID     *uuid.UUID
}

// --- Output DTOs ---

// FindMatchesOutput carries the ranked matches plus the filter sets the
// caller needs to render the search form state.
type FindMatchesOutput struct {
	Matches         []matching.ScoredCandidate
	DefaultFilters  matching.Filters
	AppliedFilters  matching.Filters
	ReferencePerson *entity.Person
}

// ReferenceSummary is one row of the eligible-reference listing.
type ReferenceSummary struct {
	Person       *entity.Person
	Age          *int
	Completeness int
}

// MatchmakingUsecase defines the matchmaking operations exposed to the
// delivery layer.
type MatchmakingUsecase interface {
	// ListReferences returns every person eligible as a reference within the
	// given staff scope, newest first.
	ListReferences(ctx context.Context, input ListReferencesInput) ([]ReferenceSummary, error)

	// FindMatches runs the full resolve/classify/compose/score pipeline for
	// one reference person.
	FindMatches(ctx context.Context, input FindMatchesInput) (*FindMatchesOutput, error)
}
