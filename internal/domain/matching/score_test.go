package matching

import (
	"testing"
	"time"

	"mawadda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreNow = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func birthForAge(age int) *time.Time {
	d := scoreNow.AddDate(-age, 0, 0)

	return &d
}

func TestScore_AgePoints(t *testing.T) {
	ref := &entity.Profile{}

	tests := []struct {
		name     string
		candAge  int
		expected int
	}{
		{"lower window edge", 20, 20},
		{"upper window edge", 40, 20},
		{"mid window", 30, 20},
		{"just below window", 17, 10},
		{"just above window", 44, 10},
		{"lowest fringe age", 16, 10},
		{"five below window", 15, 0},
		{"five above window", 45, 0},
		{"far above window", 46, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &entity.Profile{BirthDate: birthForAge(tt.candAge)}
			_, details := Score(ref, cand, intPtr(30), scoreNow)
			assert.Equal(t, tt.expected, details["age"], "candidate aged %d", tt.candAge)
		})
	}
}

func TestScore_AgeSkippedWithoutBirthDate(t *testing.T) {
	_, details := Score(&entity.Profile{}, &entity.Profile{}, intPtr(30), scoreNow)
	assert.Zero(t, details["age"])
}

func TestScore_Education(t *testing.T) {
	ref := &entity.Profile{
		Preferences: &entity.SearchPreferences{EducationLevel: "Licence"},
	}

	_, exact := Score(ref, &entity.Profile{EducationLevel: "Licence"}, nil, scoreNow)
	assert.Equal(t, 15, exact["education"])

	_, adjacent := Score(ref, &entity.Profile{EducationLevel: "Master"}, nil, scoreNow)
	assert.Equal(t, 8, adjacent["education"])

	_, below := Score(ref, &entity.Profile{EducationLevel: "Bac+2"}, nil, scoreNow)
	assert.Equal(t, 8, below["education"])

	_, far := Score(ref, &entity.Profile{EducationLevel: "Primaire"}, nil, scoreNow)
	assert.Zero(t, far["education"])

	_, unknown := Score(ref, &entity.Profile{EducationLevel: "Autodidacte"}, nil, scoreNow)
	assert.Zero(t, unknown["education"])
}

func TestScore_IncomeDigitComparison(t *testing.T) {
	ref := &entity.Profile{
		Preferences: &entity.SearchPreferences{IncomeMinimum: "2500"},
	}

	_, above := Score(ref, &entity.Profile{IncomeBracket: "5000"}, nil, scoreNow)
	assert.Equal(t, 10, above["income"])

	_, below := Score(ref, &entity.Profile{IncomeBracket: "1000"}, nil, scoreNow)
	assert.Zero(t, below["income"])

	_, unparsable := Score(ref, &entity.Profile{IncomeBracket: "peu-importe"}, nil, scoreNow)
	assert.Zero(t, unparsable["income"])
}

func TestScore_HobbiesCappedAtFive(t *testing.T) {
	ref := &entity.Profile{Hobbies: "lecture, sport, cuisine, voyage, cinéma, musique, peinture"}
	cand := &entity.Profile{Hobbies: "musique,peinture,cinéma,voyage,cuisine,sport,lecture"}

	_, details := Score(ref, cand, nil, scoreNow)
	assert.Equal(t, 5, details["hobbies"])

	_, two := Score(ref, &entity.Profile{Hobbies: "sport, échecs, lecture"}, nil, scoreNow)
	assert.Equal(t, 2, two["hobbies"])
}

func TestScore_OwnAttributeClauses(t *testing.T) {
	yes := true
	ref := &entity.Profile{
		Smoker:           "non",
		Drinker:          "non",
		Housing:          "propriétaire",
		Sport:            "course",
		Origin:           "maghrébine",
		HasChildren:      &yes,
		HealthConditions: []string{"aucune"},
	}
	cand := &entity.Profile{
		Smoker:           "non",
		Drinker:          "oui",
		Housing:          "propriétaire",
		Sport:            "course",
		Origin:           "maghrébine",
		HasChildren:      &yes,
		HealthConditions: []string{"aucune"},
	}

	_, details := Score(ref, cand, nil, scoreNow)
	assert.Equal(t, 5, details["smoking"])
	assert.Zero(t, details["drinking"])
	assert.Equal(t, 5, details["housing"])
	assert.Equal(t, 5, details["sport"])
	assert.Equal(t, 5, details["origin"])
	assert.Equal(t, 5, details["children"])
	assert.Equal(t, 10, details["health"])
}

// Full-rubric candidate against a full-preference reference: the total must
// stay within the additive bound and be reproducible.
func TestScore_BoundsAndDeterminism(t *testing.T) {
	yes := true
	ref := &entity.Profile{
		Smoker:           "non",
		Drinker:          "non",
		Housing:          "propriétaire",
		Sport:            "course",
		Origin:           "maghrébine",
		Hobbies:          "lecture,sport,cuisine,voyage,cinéma",
		HasChildren:      &yes,
		HealthConditions: []string{"aucune"},
		Preferences: &entity.SearchPreferences{
			Countries:        []string{"Maroc"},
			Cities:           []string{"Casablanca"},
			Religion:         "Islam",
			IncomeMinimum:    "2500",
			EducationLevel:   "Licence",
			EmploymentStatus: "Salarié",
			MaritalStatuses:  []string{"célibataire"},
		},
	}
	cand := &entity.Profile{
		BirthDate:        birthForAge(30),
		CountryResidence: "Maroc",
		CityResidence:    "Casablanca",
		Religion:         "Islam",
		EducationLevel:   "Licence",
		EmploymentStatus: "Salarié",
		IncomeBracket:    "5000",
		MaritalStatus:    []string{"célibataire"},
		Smoker:           "non",
		Drinker:          "non",
		Housing:          "propriétaire",
		Sport:            "course",
		Origin:           "maghrébine",
		Hobbies:          "lecture,sport,cuisine,voyage,cinéma",
		HasChildren:      &yes,
		HealthConditions: []string{"aucune"},
	}

	total, details := Score(ref, cand, intPtr(30), scoreNow)
	require.Equal(t, 140, total, "every clause at its maximum")

	sum := 0
	for _, pts := range details {
		sum += pts
	}
	assert.Equal(t, total, sum)

	again, _ := Score(ref, cand, intPtr(30), scoreNow)
	assert.Equal(t, total, again, "scoring is deterministic")
}

// makeCandidate steers the score through the religion clause alone and the
// completeness through a handful of extra checklist fields.
func makeCandidate(scored bool, updated time.Time, complete bool) *entity.Person {
	profile := &entity.Profile{
		BirthDate: birthForAge(30),
		UpdatedAt: updated,
	}
	if scored {
		profile.Religion = "Islam"
	}
	if complete {
		profile.FirstName = "Sara"
		profile.LastName = "B"
		profile.EducationLevel = "Licence"
		profile.Sector = "Santé"
		profile.Housing = "locataire"
	}

	return &entity.Person{
		ID:      uuid.New(),
		Gender:  entity.GenderFemale,
		Profile: profile,
	}
}

func TestRank_OrderAndTieBreaks(t *testing.T) {
	ref := &entity.Profile{
		Preferences: &entity.SearchPreferences{Religion: "Islam"},
	}

	older := makeCandidate(true, scoreNow.Add(-48*time.Hour), true)
	newer := makeCandidate(true, scoreNow.Add(-1*time.Hour), true)
	sparse := makeCandidate(true, scoreNow, false)
	zero := makeCandidate(false, scoreNow, true)
	noProfile := &entity.Person{ID: uuid.New()}

	ranked := Rank([]*entity.Person{zero, older, sparse, newer, noProfile}, ref, nil, scoreNow)

	require.Len(t, ranked, 4, "candidates without a profile are skipped")
	assert.Equal(t, newer.ID, ranked[0].Person.ID, "same score and completeness: most recent update first")
	assert.Equal(t, older.ID, ranked[1].Person.ID)
	assert.Equal(t, sparse.ID, ranked[2].Person.ID, "lower completeness ranks below")
	assert.Equal(t, zero.ID, ranked[3].Person.ID, "lowest score last")
}

func TestRank_Idempotent(t *testing.T) {
	ref := &entity.Profile{Preferences: &entity.SearchPreferences{Religion: "Islam"}}
	candidates := []*entity.Person{
		makeCandidate(true, scoreNow.Add(-time.Hour), true),
		makeCandidate(true, scoreNow.Add(-2*time.Hour), true),
		makeCandidate(false, scoreNow, true),
	}

	first := Rank(candidates, ref, nil, scoreNow)
	second := Rank(candidates, ref, nil, scoreNow)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Person.ID, second[i].Person.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}
