package matching

import (
	"testing"
	"time"

	"mawadda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func datePtr(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return &d
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, AgeAt(time.Date(1996, 9, 1, 0, 0, 0, 0, time.UTC), now), "birthday today")
	assert.Equal(t, 29, AgeAt(time.Date(1996, 9, 2, 0, 0, 0, 0, time.UTC), now), "birthday tomorrow")
	assert.Equal(t, 30, AgeAt(time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), now), "birthday passed")
}

func TestDefaultFilters_AgeWindowFromOwnAge(t *testing.T) {
	profile := &entity.Profile{}
	defaults := DefaultFilters(profile, intPtr(30))

	min, ok := defaults[KeyAgeMin].Number()
	require.True(t, ok)
	max, ok := defaults[KeyAgeMax].Number()
	require.True(t, ok)
	assert.InDelta(t, 20, min, 0.001)
	assert.InDelta(t, 40, max, 0.001)
}

func TestDefaultFilters_AgeWindowFlooredAtEighteen(t *testing.T) {
	defaults := DefaultFilters(&entity.Profile{}, intPtr(22))

	min, _ := defaults[KeyAgeMin].Number()
	max, _ := defaults[KeyAgeMax].Number()
	assert.InDelta(t, 18, min, 0.001, "window floor is the minimum candidate age")
	assert.InDelta(t, 32, max, 0.001)
}

func TestDefaultFilters_AbsoluteRangeWins(t *testing.T) {
	profile := &entity.Profile{
		Preferences: &entity.SearchPreferences{
			AgeMin: intPtr(25),
			AgeMax: intPtr(35),
		},
	}
	defaults := DefaultFilters(profile, intPtr(50))

	min, _ := defaults[KeyAgeMin].Number()
	max, _ := defaults[KeyAgeMax].Number()
	assert.InDelta(t, 25, min, 0.001)
	assert.InDelta(t, 35, max, 0.001)
}

func TestDefaultFilters_UnknownAgeOmitsWindow(t *testing.T) {
	defaults := DefaultFilters(&entity.Profile{}, nil)

	_, hasMin := defaults[KeyAgeMin]
	_, hasMax := defaults[KeyAgeMax]
	assert.False(t, hasMin)
	assert.False(t, hasMax)
}

func TestDefaultFilters_PreferenceKeys(t *testing.T) {
	profile := &entity.Profile{
		Preferences: &entity.SearchPreferences{
			Countries:        []string{"Maroc", "France"},
			Cities:           []string{"Casablanca"},
			Religion:         "Islam",
			IncomeMinimum:    "2500-5000",
			EducationLevel:   "Licence",
			EmploymentStatus: "Salarié",
			MaritalStatuses:  []string{"célibataire", "divorcé"},
		},
	}
	defaults := DefaultFilters(profile, intPtr(30))

	assert.Equal(t, []string{"Maroc", "France"}, defaults[KeyCountriesSearched].Strings())
	assert.Equal(t, []string{"Casablanca"}, defaults[KeyCitiesSearched].Strings())
	assert.Equal(t, "Islam", defaults[KeyReligion].Text())
	assert.Equal(t, "2500-5000", defaults[KeyIncomeMinimum].Text())
	assert.Equal(t, "Licence", defaults[KeyEducationLevel].Text())
	assert.Equal(t, "Salarié", defaults[KeyEmploymentStatus].Text())
	assert.Equal(t, []string{"célibataire", "divorcé"}, defaults[KeyMaritalStatus].Strings())
}

func TestDefaultFilters_OnlyStoredPreferencesPresent(t *testing.T) {
	defaults := DefaultFilters(&entity.Profile{}, intPtr(30))

	assert.Len(t, defaults, 2, "only the derived age window is present without stored preferences")
}
