package matching

import (
	"mawadda/internal/domain/entity"
)

const defaultAgeWindowOffset = 10

// minimumCandidateAge is the floor of every derived age window.
const minimumCandidateAge = 18

// ageWindowOffset returns the reference's symmetric age window half-width.
func ageWindowOffset(prefs *entity.SearchPreferences) int {
	if prefs != nil && prefs.AgeWindowOffset != nil && *prefs.AgeWindowOffset > 0 {
		return *prefs.AgeWindowOffset
	}

	return defaultAgeWindowOffset
}

// DefaultFilters derives the default filter set from a reference profile's
// stored preferences and derived age. Only keys for which the reference holds
// a preference are present. Pure function, no side effects.
func DefaultFilters(profile *entity.Profile, age *int) Filters {
	defaults := Filters{}
	if profile == nil {
		return defaults
	}
	prefs := profile.Preferences

	// Age range: absolute preference wins, otherwise a symmetric window
	// around the reference's own age, floored at the minimum candidate age.
	switch {
	case prefs != nil && prefs.AgeMin != nil && prefs.AgeMax != nil:
		defaults[KeyAgeMin] = NumberValue(float64(*prefs.AgeMin))
		defaults[KeyAgeMax] = NumberValue(float64(*prefs.AgeMax))
	case age != nil:
		offset := ageWindowOffset(prefs)
		low := *age - offset
		if low < minimumCandidateAge {
			low = minimumCandidateAge
		}
		defaults[KeyAgeMin] = NumberValue(float64(low))
		defaults[KeyAgeMax] = NumberValue(float64(*age + offset))
	}

	if prefs == nil {
		return defaults
	}

	if len(prefs.Countries) > 0 {
		defaults[KeyCountriesSearched] = ListValue(prefs.Countries...)
	}
	if len(prefs.Cities) > 0 {
		defaults[KeyCitiesSearched] = ListValue(prefs.Cities...)
	}
	if prefs.Religion != "" {
		defaults[KeyReligion] = StringValue(prefs.Religion)
	}
	if prefs.IncomeMinimum != "" {
		defaults[KeyIncomeMinimum] = StringValue(prefs.IncomeMinimum)
	}
	if prefs.EducationLevel != "" {
		defaults[KeyEducationLevel] = StringValue(prefs.EducationLevel)
	}
	if prefs.EmploymentStatus != "" {
		defaults[KeyEmploymentStatus] = StringValue(prefs.EmploymentStatus)
	}
	if len(prefs.MaritalStatuses) > 0 {
		defaults[KeyMaritalStatus] = ListValue(prefs.MaritalStatuses...)
	}

	return defaults
}
