// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"mawadda/config"
	"mawadda/internal/domain/entity"
	domainerrors "mawadda/internal/domain/errors"
	"mawadda/internal/domain/matching"
	"mawadda/internal/domain/repository"
	"mawadda/internal/domain/service"
	"mawadda/internal/usecase"

	"github.com/pkg/errors"
)

// matchmakingService implements the MatchmakingUsecase interface.
type matchmakingService struct {
	personRepo repository.PersonRepository
	clock      service.Clock
	publisher  service.EventPublisher
	maxResults int
	logger     *slog.Logger
}

// NewMatchmakingService is the constructor for matchmakingService.
func NewMatchmakingService(
	cfg *config.Config,
	personRepo repository.PersonRepository,
	clock service.Clock,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MatchmakingUsecase {
	maxResults := 0
	if cfg != nil && cfg.Matching != nil {
		maxResults = cfg.Matching.MaxResults
	}

	return &matchmakingService{
		personRepo: personRepo,
		clock:      clock,
		publisher:  publisher,
		maxResults: maxResults,
		logger:     logger,
	}
}

// ListReferences returns every person eligible as a reference within the
// given staff scope, newest first.
func (srv *matchmakingService) ListReferences(ctx context.Context, input usecase.ListReferencesInput) ([]usecase.ReferenceSummary, error) {
	persons, err := srv.personRepo.FindReferences(ctx, repository.ReferenceScope{
		MatchmakerID: input.MatchmakerID,
		AgencyID:     input.AgencyID,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list references")
	}

	now := srv.clock.Now()
	summaries := make([]usecase.ReferenceSummary, 0, len(persons))
	for _, person := range persons {
		summaries = append(summaries, usecase.ReferenceSummary{
			Person:       person,
			Age:          matching.AgeOf(person.Profile, now),
			Completeness: matching.Completeness(person.Profile),
		})
	}

	return summaries, nil
}

// FindMatches runs the full resolve/classify/compose/score pipeline for one
// reference person.
func (srv *matchmakingService) FindMatches(ctx context.Context, input usecase.FindMatchesInput) (*usecase.FindMatchesOutput, error) {
	ref, err := srv.personRepo.FindByID(ctx, input.ReferenceID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReferenceNotFound, "find matches")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "reference lookup")
	}

	// The whole pipeline is preconditioned on a completed profile.
	if ref.Profile == nil || !ref.Profile.Completed {
		return nil, errors.Wrap(domainerrors.ErrProfileIncomplete, "find matches")
	}

	now := srv.clock.Now()
	age := matching.AgeOf(ref.Profile, now)

	defaults := matching.DefaultFilters(ref.Profile, age)
	classified := matching.Classify(defaults, input.Overrides)
	applied := defaults.Overlay(input.Overrides)

	srv.logger.Debug("classified match filters",
		"referenceID", input.ReferenceID,
		"changed", classified.Changed.Keys(),
		"unchanged", classified.Unchanged.Keys(),
	)

	matches, err := srv.searchCandidates(ctx, ref, classified, age, now)
	if err != nil {
		return nil, err
	}

	srv.publishSearch(ctx, input, classified, len(matches), now)

	return &usecase.FindMatchesOutput{
		Matches:         matches,
		DefaultFilters:  defaults,
		AppliedFilters:  applied,
		ReferencePerson: ref,
	}, nil
}

func (srv *matchmakingService) searchCandidates(
	ctx context.Context,
	ref *entity.Person,
	classified matching.Classification,
	age *int,
	now time.Time,
) ([]matching.ScoredCandidate, error) {
	target, ok := ref.Gender.Opposite()
	if !ok {
		// No target gender to match against, so the pool is empty.
		srv.logger.Debug("reference gender has no match target", "referenceID", ref.ID)

		return []matching.ScoredCandidate{}, nil
	}

	candidates, err := srv.personRepo.FindCandidates(ctx, repository.CandidateQuery{
		ExcludeID: ref.ID,
		Gender:    target,
		Predicate: matching.Compose(classified.Changed, classified.Unchanged, now),
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "candidate retrieval")
	}

	matches := matching.Rank(candidates, ref.Profile, age, now)
	if srv.maxResults > 0 && len(matches) > srv.maxResults {
		matches = matches[:srv.maxResults]
	}

	return matches, nil
}

// publishSearch emits the search event. Failures are logged and swallowed: a
// search result never depends on the broker.
func (srv *matchmakingService) publishSearch(
	ctx context.Context,
	input usecase.FindMatchesInput,
	classified matching.Classification,
	matchCount int,
	now time.Time,
) {
	changed := make([]string, 0, len(classified.Changed))
	for _, key := range classified.Changed.Keys() {
		changed = append(changed, string(key))
	}

	event := &service.MatchSearchEvent{
		RequestID:      input.RequestID,
		ReferenceID:    input.ReferenceID.String(),
		MatchCount:     matchCount,
		ChangedFilters: changed,
		SearchedAt:     now,
	}
	if err := srv.publisher.PublishMatchSearch(ctx, event); err != nil {
		srv.logger.Warn("failed to publish match search event",
			"referenceID", input.ReferenceID,
			"error", err,
		)
	}
}
