package matching

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"mawadda/internal/domain/entity"
)

// educationLevels orders the recognized education levels from lowest to
// highest. Adjacency in this list is what "one rank apart" means.
var educationLevels = []string{
	"Primaire",
	"Collège",
	"Lycée",
	"Baccalauréat",
	"Bac+2",
	"Licence",
	"Master",
	"Ingénieur",
	"Doctorat",
}

func educationRank(level string) (int, bool) {
	for i, l := range educationLevels {
		if strings.EqualFold(l, strings.TrimSpace(level)) {
			return i, true
		}
	}

	return 0, false
}

// ScoreDetails breaks a candidate's score down per rubric clause.
type ScoreDetails map[string]int

// ScoredCandidate pairs a candidate with its compatibility score, the
// per-clause breakdown and profile completeness.
type ScoredCandidate struct {
	Person       *entity.Person `json:"person"`
	Score        int            `json:"score"`
	Details      ScoreDetails   `json:"scoreDetails"`
	Completeness int            `json:"completeness"`
}

// Score computes the weighted compatibility score of a candidate profile
// against the reference profile. Each clause contributes only when both sides
// carry the relevant attribute; the total is a raw additive value used for
// relative ranking, never normalized.
func Score(ref, cand *entity.Profile, refAge *int, now time.Time) (int, ScoreDetails) {
	details := ScoreDetails{}
	if ref == nil || cand == nil {
		return 0, details
	}
	prefs := ref.Preferences

	if pts := ageScore(prefs, refAge, AgeOf(cand, now)); pts > 0 {
		details["age"] = pts
	}
	if pts := educationScore(prefs, cand.EducationLevel); pts > 0 {
		details["education"] = pts
	}
	if prefs != nil && anyInList(prefs.Countries, cand.CountryResidence, cand.CountryOrigin) {
		details["country"] = 10
	}
	if prefs != nil && anyInList(prefs.Cities, cand.CityResidence, cand.CityOrigin) {
		details["city"] = 10
	}
	if prefs != nil && prefs.Religion != "" && prefs.Religion == cand.Religion {
		details["religion"] = 10
	}
	if prefs != nil && incomeAtLeast(cand.IncomeBracket, prefs.IncomeMinimum) {
		details["income"] = 10
	}
	if prefs != nil && prefs.EmploymentStatus != "" && prefs.EmploymentStatus == cand.EmploymentStatus {
		details["employment"] = 10
	}
	if prefs != nil && intersects(prefs.MaritalStatuses, cand.MaritalStatus) {
		details["marital"] = 10
	}
	if intersects(ref.HealthConditions, cand.HealthConditions) {
		details["health"] = 10
	}
	if ref.Smoker != "" && cand.Smoker != "" && ref.Smoker == cand.Smoker {
		details["smoking"] = 5
	}
	if ref.Drinker != "" && cand.Drinker != "" && ref.Drinker == cand.Drinker {
		details["drinking"] = 5
	}
	if ref.HasChildren != nil && cand.HasChildren != nil && *ref.HasChildren == *cand.HasChildren {
		details["children"] = 5
	}
	if ref.Housing != "" && ref.Housing == cand.Housing {
		details["housing"] = 5
	}
	if ref.Sport != "" && ref.Sport == cand.Sport {
		details["sport"] = 5
	}
	if pts := hobbiesScore(ref.Hobbies, cand.Hobbies); pts > 0 {
		details["hobbies"] = pts
	}
	if ref.Origin != "" && ref.Origin == cand.Origin {
		details["origin"] = 5
	}

	total := 0
	for _, pts := range details {
		total += pts
	}

	return total, details
}

// ageScore awards 20 points inside the reference's symmetric age window, 10
// within five years of its edges, 0 otherwise.
func ageScore(prefs *entity.SearchPreferences, refAge, candAge *int) int {
	if refAge == nil || candAge == nil {
		return 0
	}
	offset := ageWindowOffset(prefs)
	low := *refAge - offset
	if low < minimumCandidateAge {
		low = minimumCandidateAge
	}
	high := *refAge + offset

	switch {
	case *candAge >= low && *candAge <= high:
		return 20
	// The five-year fringe is open: an age exactly five years past either
	// window edge already scores nothing.
	case *candAge > low-5 && *candAge < high+5:
		return 10
	default:
		return 0
	}
}

// educationScore awards 15 points for an exact match with the desired level,
// 8 when the candidate is one rank away in the level hierarchy.
func educationScore(prefs *entity.SearchPreferences, candLevel string) int {
	if prefs == nil || prefs.EducationLevel == "" || candLevel == "" {
		return 0
	}
	if strings.EqualFold(strings.TrimSpace(prefs.EducationLevel), strings.TrimSpace(candLevel)) {
		return 15
	}

	want, okWant := educationRank(prefs.EducationLevel)
	got, okGot := educationRank(candLevel)
	if okWant && okGot && abs(want-got) == 1 {
		return 8
	}

	return 0
}

// incomeAtLeast compares income brackets numerically after stripping every
// non-digit character. Unparsable values never qualify, which keeps the
// "peu-importe" placeholder out.
func incomeAtLeast(candBracket, minBracket string) bool {
	cand, okCand := incomeNumber(candBracket)
	min, okMin := incomeNumber(minBracket)

	return okCand && okMin && cand >= min
}

func incomeNumber(bracket string) (int64, bool) {
	var digits strings.Builder
	for _, r := range bracket {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// hobbiesScore counts shared hobby tokens, capped at 5 points.
func hobbiesScore(refHobbies, candHobbies string) int {
	ref := splitTokens(refHobbies)
	cand := splitTokens(candHobbies)
	if len(ref) == 0 || len(cand) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(ref))
	for _, token := range ref {
		set[token] = struct{}{}
	}

	common := 0
	for _, token := range cand {
		if _, ok := set[token]; ok {
			common++
			delete(set, token)
		}
	}
	if common > 5 {
		return 5
	}

	return common
}

func splitTokens(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	tokens := make([]string, 0, 4)
	for _, part := range strings.Split(csv, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func anyInList(list []string, candidates ...string) bool {
	if len(list) == 0 {
		return false
	}
	for _, want := range list {
		for _, got := range candidates {
			if got != "" && strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(got)) {
				return true
			}
		}
	}

	return false
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[strings.ToLower(strings.TrimSpace(item))] = struct{}{}
	}
	for _, item := range b {
		if _, ok := set[strings.ToLower(strings.TrimSpace(item))]; ok {
			return true
		}
	}

	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Rank scores every candidate against the reference profile and sorts the
// result by score, then profile completeness, then recency of the last
// profile update. Candidates without a profile record are skipped.
func Rank(candidates []*entity.Person, ref *entity.Profile, refAge *int, now time.Time) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand == nil || cand.Profile == nil {
			continue
		}
		total, details := Score(ref, cand.Profile, refAge, now)
		scored = append(scored, ScoredCandidate{
			Person:       cand,
			Score:        total,
			Details:      details,
			Completeness: Completeness(cand.Profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Completeness != scored[j].Completeness {
			return scored[i].Completeness > scored[j].Completeness
		}

		return scored[i].Person.Profile.UpdatedAt.After(scored[j].Person.Profile.UpdatedAt)
	})

	return scored
}
