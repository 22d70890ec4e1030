package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mawadda/config"
	"mawadda/internal/domain/entity"
	domainerrors "mawadda/internal/domain/errors"
	"mawadda/internal/domain/repository"
	"mawadda/internal/domain/service"
	"mawadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

// --- Hand-rolled fakes ---

type fakePersonRepo struct {
	persons       map[uuid.UUID]*entity.Person
	candidates    []*entity.Person
	candidatesErr error
	references    []*entity.Person
	referencesErr error

	lastCandidateQuery *repository.CandidateQuery
	lastReferenceScope *repository.ReferenceScope
}

func (f *fakePersonRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Person, error) {
	person, ok := f.persons[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}

	return person, nil
}

func (f *fakePersonRepo) FindByEmail(_ context.Context, email string) (*entity.Person, error) {
	for _, person := range f.persons {
		if person.Email == email {
			return person, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

func (f *fakePersonRepo) FindCandidates(_ context.Context, query repository.CandidateQuery) ([]*entity.Person, error) {
	f.lastCandidateQuery = &query
	if f.candidatesErr != nil {
		return nil, f.candidatesErr
	}

	return f.candidates, nil
}

func (f *fakePersonRepo) FindReferences(_ context.Context, scope repository.ReferenceScope) ([]*entity.Person, error) {
	f.lastReferenceScope = &scope
	if f.referencesErr != nil {
		return nil, f.referencesErr
	}

	return f.references, nil
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type capturePublisher struct {
	events []*service.MatchSearchEvent
	err    error
}

func (p *capturePublisher) PublishMatchSearch(_ context.Context, event *service.MatchSearchEvent) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *capturePublisher) Close() error {
	return nil
}

// --- Fixtures ---

func createTestMatchmakingService(t *testing.T, maxResults int) (usecase.MatchmakingUsecase, *fakePersonRepo, *capturePublisher) {
	t.Helper()

	repo := &fakePersonRepo{persons: map[uuid.UUID]*entity.Person{}}
	publisher := &capturePublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Matching: &config.MatchingConfig{MaxResults: maxResults}}

	svc := NewMatchmakingService(cfg, repo, fakeClock{now: testNow}, publisher, logger)

	return svc, repo, publisher
}

func createTestReference(gender entity.Gender) *entity.Person {
	birth := testNow.AddDate(-30, 0, 0)

	return &entity.Person{
		ID:     uuid.New(),
		Gender: gender,
		Status: entity.StatusClient,
		Role:   entity.RoleUser,
		Profile: &entity.Profile{
			Completed: true,
			BirthDate: &birth,
			Religion:  "Islam",
			Preferences: &entity.SearchPreferences{
				Religion:  "Islam",
				Countries: []string{"Maroc"},
			},
		},
	}
}

func createTestCandidate(gender entity.Gender, religion string, updated time.Time) *entity.Person {
	birth := testNow.AddDate(-28, 0, 0)

	return &entity.Person{
		ID:     uuid.New(),
		Gender: gender,
		Status: entity.StatusActive,
		Role:   entity.RoleUser,
		Profile: &entity.Profile{
			Completed: true,
			BirthDate: &birth,
			Religion:  religion,
			UpdatedAt: updated,
		},
	}
}

// --- FindMatches ---

func TestMatchmakingService_FindMatches_ReferenceNotFound(t *testing.T) {
	svc, _, _ := createTestMatchmakingService(t, 0)

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReferenceNotFound))
}

func TestMatchmakingService_FindMatches_ProfileIncomplete(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	ref.Profile.Completed = false
	repo.persons[ref.ID] = ref

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileIncomplete))
	assert.Nil(t, repo.lastCandidateQuery, "no candidate query is performed")
}

func TestMatchmakingService_FindMatches_MissingProfile(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	ref.Profile = nil
	repo.persons[ref.ID] = ref

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileIncomplete))
}

func TestMatchmakingService_FindMatches_DefaultOnlyInvariant(t *testing.T) {
	svc, repo, publisher := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref

	output, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.NoError(t, err)
	assert.Equal(t, output.DefaultFilters, output.AppliedFilters,
		"no overrides: applied filters equal defaults")
	require.Len(t, publisher.events, 1)
	assert.Empty(t, publisher.events[0].ChangedFilters)
}

func TestMatchmakingService_FindMatches_TargetsOppositeGender(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.NoError(t, err)
	require.NotNil(t, repo.lastCandidateQuery)
	assert.Equal(t, entity.GenderFemale, repo.lastCandidateQuery.Gender)
	assert.Equal(t, ref.ID, repo.lastCandidateQuery.ExcludeID)
}

func TestMatchmakingService_FindMatches_NoTargetGender(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderOther)
	repo.persons[ref.ID] = ref

	output, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.NoError(t, err)
	assert.Empty(t, output.Matches)
	assert.Nil(t, repo.lastCandidateQuery, "no pool exists without a target gender")
}

func TestMatchmakingService_FindMatches_EmptyPool(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderFemale)
	repo.persons[ref.ID] = ref
	repo.candidates = nil

	output, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.NoError(t, err)
	assert.NotNil(t, output.Matches)
	assert.Empty(t, output.Matches)
}

func TestMatchmakingService_FindMatches_StoreFailure(t *testing.T) {
	svc, repo, publisher := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref
	repo.candidatesErr = errors.New("connection reset")

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATA_STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.Empty(t, publisher.events, "failed searches publish nothing")
}

func TestMatchmakingService_FindMatches_RanksAndPublishes(t *testing.T) {
	svc, repo, publisher := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref

	weak := createTestCandidate(entity.GenderFemale, "", testNow)
	strong := createTestCandidate(entity.GenderFemale, "Islam", testNow)
	repo.candidates = []*entity.Person{weak, strong}

	output, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{
		ReferenceID: ref.ID,
		RequestID:   "req-42",
	})

	require.NoError(t, err)
	require.Len(t, output.Matches, 2)
	assert.Equal(t, strong.ID, output.Matches[0].Person.ID, "higher score ranks first")

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, ref.ID.String(), event.ReferenceID)
	assert.Equal(t, 2, event.MatchCount)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, testNow, event.SearchedAt)
}

func TestMatchmakingService_FindMatches_PublisherFailureIsSwallowed(t *testing.T) {
	svc, repo, publisher := createTestMatchmakingService(t, 0)
	publisher.err = errors.New("broker down")

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref

	_, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	assert.NoError(t, err, "publishing failure never fails the search")
}

func TestMatchmakingService_FindMatches_MaxResults(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 2)

	ref := createTestReference(entity.GenderMale)
	repo.persons[ref.ID] = ref
	repo.candidates = []*entity.Person{
		createTestCandidate(entity.GenderFemale, "Islam", testNow),
		createTestCandidate(entity.GenderFemale, "Islam", testNow),
		createTestCandidate(entity.GenderFemale, "Islam", testNow),
	}

	output, err := svc.FindMatches(context.Background(), usecase.FindMatchesInput{ReferenceID: ref.ID})

	require.NoError(t, err)
	assert.Len(t, output.Matches, 2)
}

// --- ListReferences ---

func TestMatchmakingService_ListReferences_Summaries(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	ref := createTestReference(entity.GenderFemale)
	repo.references = []*entity.Person{ref}

	summaries, err := svc.ListReferences(context.Background(), usecase.ListReferencesInput{})

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].Age)
	assert.Equal(t, 30, *summaries[0].Age)
	assert.Positive(t, summaries[0].Completeness)
}

func TestMatchmakingService_ListReferences_PassesScope(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)

	matchmakerID := uuid.New()
	_, err := svc.ListReferences(context.Background(), usecase.ListReferencesInput{MatchmakerID: &matchmakerID})

	require.NoError(t, err)
	require.NotNil(t, repo.lastReferenceScope)
	require.NotNil(t, repo.lastReferenceScope.MatchmakerID)
	assert.Equal(t, matchmakerID, *repo.lastReferenceScope.MatchmakerID)
}

func TestMatchmakingService_ListReferences_StoreFailure(t *testing.T) {
	svc, repo, _ := createTestMatchmakingService(t, 0)
	repo.referencesErr = errors.New("timeout")

	_, err := svc.ListReferences(context.Background(), usecase.ListReferencesInput{})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATA_STORE_UNAVAILABLE", appErr.ErrorCode())
}
