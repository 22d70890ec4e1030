// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mawadda/internal/domain/entity"
	"mawadda/internal/domain/matching"

	"github.com/google/uuid"
)

// ErrPersonNotFound is a domain-specific error returned when a person is not found.
var ErrPersonNotFound = errors.New("person not found")

// CandidateQuery describes the candidate pool for one match search: the base
// restrictions (role, status, gender, exclusion of the reference) plus the
// composed filter predicate.
type CandidateQuery struct {
	// ExcludeID removes the reference person from the pool.
	ExcludeID uuid.UUID

	// Gender restricts the pool to the target gender.
	Gender entity.Gender

	// Predicate is the composed filter condition. A nil predicate applies no
	// filter beyond the base pool restrictions.
	Predicate matching.Predicate
}

// ReferenceScope narrows the eligible-reference listing to a matchmaker's
// pool or an agency's pool. Zero value means no narrowing.
type ReferenceScope struct {
	MatchmakerID *uuid.UUID
	AgencyID     *uuid.UUID
}

// PersonRepository defines the read operations the matchmaking engine needs.
// The engine never writes; all mutation paths live elsewhere.
type PersonRepository interface {
	// FindByID retrieves a single person by their unique ID, profile included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// FindByEmail retrieves a single person by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Person, error)

	// FindCandidates returns every active, completed-profile member matching
	// the candidate query.
	FindCandidates(ctx context.Context, query CandidateQuery) ([]*entity.Person, error)

	// FindReferences lists the members eligible as reference persons within
	// the given staff scope, newest first.
	FindReferences(ctx context.Context, scope ReferenceScope) ([]*entity.Person, error)
}
