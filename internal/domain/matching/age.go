package matching

import (
	"time"

	"mawadda/internal/domain/entity"
)

// AgeAt returns the floor of full years between birth and now.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	// Not yet had the birthday this year
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	return years
}

// AgeOf derives a profile's age, or nil when no birth date is stored.
// Age is always derived, never stored.
func AgeOf(p *entity.Profile, now time.Time) *int {
	if p == nil || p.BirthDate == nil {
		return nil
	}

	age := AgeAt(*p.BirthDate, now)

	return &age
}
