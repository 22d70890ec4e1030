package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mawadda/internal/delivery/http/response"
	"mawadda/internal/domain/entity"
	"mawadda/internal/domain/matching"
	"mawadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchmakingHandler holds dependencies for the matchmaking handlers.
type MatchmakingHandler struct {
	uc     usecase.MatchmakingUsecase
	logger *slog.Logger
}

// NewMatchmakingHandler is the constructor for MatchmakingHandler, injected by Fx.
func NewMatchmakingHandler(uc usecase.MatchmakingUsecase, logger *slog.Logger) *MatchmakingHandler {
	return &MatchmakingHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Response views ---

// personView is the wire shape of a person. The entity itself never crosses
// the transport boundary (it carries the password hash).
type personView struct {
	ID        string       `json:"id"`
	Gender    string       `json:"gender"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	Profile   *profileView `json:"profile,omitempty"`
}

type profileView struct {
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	CountryResidence string     `json:"countryResidence,omitempty"`
	CityResidence    string     `json:"cityResidence,omitempty"`
	CountryOrigin    string     `json:"countryOrigin,omitempty"`
	CityOrigin       string     `json:"cityOrigin,omitempty"`
	Religion         string     `json:"religion,omitempty"`
	EducationLevel   string     `json:"educationLevel,omitempty"`
	EmploymentStatus string     `json:"employmentStatus,omitempty"`
	Sector           string     `json:"sector,omitempty"`
	IncomeBracket    string     `json:"incomeBracket,omitempty"`
	MaritalStatus    []string   `json:"maritalStatus,omitempty"`
	Housing          string     `json:"housing,omitempty"`
	Smoker           string     `json:"smoker,omitempty"`
	Drinker          string     `json:"drinker,omitempty"`
	Sport            string     `json:"sport,omitempty"`
	Hobbies          string     `json:"hobbies,omitempty"`
	Origin           string     `json:"origin,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	PicturePath      string     `json:"picturePath,omitempty"`
}

type referenceView struct {
	Person       personView `json:"person"`
	Age          *int       `json:"age,omitempty"`
	Completeness int        `json:"completeness"`
}

type matchView struct {
	Person       personView            `json:"person"`
	Score        int                   `json:"score"`
	ScoreDetails matching.ScoreDetails `json:"scoreDetails"`
	Completeness int                   `json:"completeness"`
}

type findMatchesResponse struct {
	Matches         []matchView      `json:"matches"`
	DefaultFilters  matching.Filters `json:"defaultFilters"`
	AppliedFilters  matching.Filters `json:"appliedFilters"`
	ReferencePerson personView       `json:"referencePerson"`
}

// ListReferences handles the eligible-reference listing. Matchmakers see
// their own pool by default; managers and admins see everything unless they
// narrow by query parameter.
func (h *MatchmakingHandler) ListReferences(c echo.Context) error {
	input, err := h.referenceScope(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid scope parameter")
	}

	summaries, err := h.uc.ListReferences(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]referenceView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, referenceView{
			Person:       toPersonView(summary.Person),
			Age:          summary.Age,
			Completeness: summary.Completeness,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// FindMatches handles a match search. The request body is the override
// filter map; an empty body searches with the stored preferences.
func (h *MatchmakingHandler) FindMatches(c echo.Context) error {
	referenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reference id")
	}

	overrides := map[string]any{}
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&overrides); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid filter overrides")
		}
	}

	output, err := h.uc.FindMatches(c.Request().Context(), usecase.FindMatchesInput{
		ReferenceID: referenceID,
		Overrides:   matching.FiltersFromAny(overrides),
		RequestID:   c.Request().Header.Get(echo.HeaderXRequestID),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	matches := make([]matchView, 0, len(output.Matches))
	for _, match := range output.Matches {
		matches = append(matches, matchView{
			Person:       toPersonView(match.Person),
			Score:        match.Score,
			ScoreDetails: match.Details,
			Completeness: match.Completeness,
		})
	}

	return response.Success(c, http.StatusOK, findMatchesResponse{
		Matches:         matches,
		DefaultFilters:  output.DefaultFilters,
		AppliedFilters:  output.AppliedFilters,
		ReferencePerson: toPersonView(output.ReferencePerson),
	}, "")
}

// referenceScope derives the listing scope from query parameters, falling
// back to the authenticated matchmaker's own pool.
func (h *MatchmakingHandler) referenceScope(c echo.Context) (usecase.ListReferencesInput, error) {
	var input usecase.ListReferencesInput

	if raw := c.QueryParam("matchmaker_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, errors.Wrap(err, "parse matchmaker_id")
		}
		input.MatchmakerID = &id

		return input, nil
	}
	if raw := c.QueryParam("agency_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, errors.Wrap(err, "parse agency_id")
		}
		input.AgencyID = &id

		return input, nil
	}

	// A matchmaker with no explicit scope sees their own pool.
	roles, _ := c.Get("roles").([]string)
	personID, ok := c.Get("personID").(uuid.UUID)
	if ok && containsRole(roles, string(entity.RoleMatchmaker)) {
		input.MatchmakerID = &personID
	}

	return input, nil
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}

	return false
}

func toPersonView(person *entity.Person) personView {
	if person == nil {
		return personView{}
	}

	view := personView{
		ID:        person.ID.String(),
		Gender:    string(person.Gender),
		Status:    string(person.Status),
		CreatedAt: person.CreatedAt,
	}
	if profile := person.Profile; profile != nil {
		view.Profile = &profileView{
			FirstName:        profile.FirstName,
			LastName:         profile.LastName,
			BirthDate:        profile.BirthDate,
			CountryResidence: profile.CountryResidence,
			CityResidence:    profile.CityResidence,
			CountryOrigin:    profile.CountryOrigin,
			CityOrigin:       profile.CityOrigin,
			Religion:         profile.Religion,
			EducationLevel:   profile.EducationLevel,
			EmploymentStatus: profile.EmploymentStatus,
			Sector:           profile.Sector,
			IncomeBracket:    profile.IncomeBracket,
			MaritalStatus:    profile.MaritalStatus,
			Housing:          profile.Housing,
			Smoker:           profile.Smoker,
			Drinker:          profile.Drinker,
			Sport:            profile.Sport,
			Hobbies:          profile.Hobbies,
			Origin:           profile.Origin,
			Bio:              profile.Bio,
			PicturePath:      profile.PicturePath,
		}
	}

	return view
}
