package matching

import (
	"strings"

	"mawadda/internal/domain/entity"
)

// completenessChecks is the fixed checklist behind the completeness
// percentage shown next to every match.
var completenessChecks = []struct {
	name   string
	filled func(p *entity.Profile) bool
}{
	{"first_name", func(p *entity.Profile) bool { return strings.TrimSpace(p.FirstName) != "" }},
	{"last_name", func(p *entity.Profile) bool { return strings.TrimSpace(p.LastName) != "" }},
	{"birth_date", func(p *entity.Profile) bool { return p.BirthDate != nil }},
	{"education", func(p *entity.Profile) bool { return p.EducationLevel != "" }},
	{"employment", func(p *entity.Profile) bool { return p.EmploymentStatus != "" }},
	{"sector", func(p *entity.Profile) bool { return p.Sector != "" }},
	{"income", func(p *entity.Profile) bool { return p.IncomeBracket != "" }},
	{"religion", func(p *entity.Profile) bool { return p.Religion != "" }},
	{"marital_status", func(p *entity.Profile) bool { return len(p.MaritalStatus) > 0 }},
	{"housing", func(p *entity.Profile) bool { return p.Housing != "" }},
	{"height", func(p *entity.Profile) bool { return p.Height > 0 }},
	{"weight", func(p *entity.Profile) bool { return p.Weight > 0 }},
	{"health", func(p *entity.Profile) bool {
		return p.HealthStatus != "" || len(p.HealthConditions) > 0
	}},
	{"smoking", func(p *entity.Profile) bool { return p.Smoker != "" }},
	{"drinking", func(p *entity.Profile) bool { return p.Drinker != "" }},
	{"sport", func(p *entity.Profile) bool { return p.Sport != "" }},
	{"motorization", func(p *entity.Profile) bool { return p.Motorized != "" }},
	{"hobbies", func(p *entity.Profile) bool { return strings.TrimSpace(p.Hobbies) != "" }},
	{"origin", func(p *entity.Profile) bool { return p.Origin != "" }},
	{"residence_location", func(p *entity.Profile) bool {
		return p.CountryResidence != "" && p.CityResidence != ""
	}},
	{"origin_location", func(p *entity.Profile) bool {
		return p.CountryOrigin != "" && p.CityOrigin != ""
	}},
	{"bio", func(p *entity.Profile) bool { return strings.TrimSpace(p.Bio) != "" }},
	{"picture", func(p *entity.Profile) bool { return p.PicturePath != "" }},
}

// Completeness returns the percentage of the profile checklist that is
// populated, rounded down. Display and tie-break only; it never feeds the
// compatibility score.
func Completeness(p *entity.Profile) int {
	if p == nil {
		return 0
	}

	filled := 0
	for _, check := range completenessChecks {
		if check.filled(p) {
			filled++
		}
	}

	return filled * 100 / len(completenessChecks)
}
