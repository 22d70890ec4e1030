package matching

import (
	"strings"
	"time"

	"mawadda/internal/domain/entity"
)

// Attr identifies a candidate profile attribute. The string form doubles as
// the legacy column name, which the persistence layer relies on when
// translating predicates to SQL.
type Attr string

const (
	AttrBirthDate         Attr = "date_naissance"
	AttrCountryResidence  Attr = "pays_residence"
	AttrCountryOrigin     Attr = "pays_origine"
	AttrCityResidence     Attr = "ville_residence"
	AttrCityOrigin        Attr = "ville_origine"
	AttrReligion          Attr = "religion"
	AttrEducationLevel    Attr = "niveau_etudes"
	AttrEmploymentStatus  Attr = "situation_professionnelle"
	AttrSector            Attr = "secteur"
	AttrIncomeBracket     Attr = "tranche_revenu"
	AttrMaritalStatus     Attr = "etat_matrimonial"
	AttrHealthStatus      Attr = "etat_sante"
	AttrHealthConditions  Attr = "situation_sante"
	AttrSmoker            Attr = "fumeur"
	AttrDrinker           Attr = "buveur"
	AttrMotorized         Attr = "motorise"
	AttrHousing           Attr = "logement"
	AttrOrigin            Attr = "origine"
	AttrHijabChoice       Attr = "hijab_choice"
	AttrVeil              Attr = "veil"
	AttrNiqabAcceptance   Attr = "niqab_acceptance"
	AttrPolygamy          Attr = "polygamy"
	AttrForeignMarriage   Attr = "foreign_marriage"
	AttrWorkAfterMarriage Attr = "work_after_marriage"
	AttrSport             Attr = "sport"
	AttrHasChildren       Attr = "has_children"
	AttrChildrenCount     Attr = "children_count"
	AttrHeight            Attr = "taille"
	AttrWeight            Attr = "poids"
)

// Predicate is a composable candidate condition. It can be evaluated
// in-memory against a profile or translated to the data store's query
// language by the persistence layer.
type Predicate interface {
	// Matches evaluates the predicate against a candidate's profile.
	Matches(p *entity.Profile) bool
}

// Equals matches a scalar attribute exactly. An empty Value is a real
// condition: it matches candidates whose attribute is empty.
type Equals struct {
	Attr  Attr
	Value string
}

func (e Equals) Matches(p *entity.Profile) bool {
	return attrText(p, e.Attr) == e.Value
}

// EqualsBool matches a boolean attribute. Candidates with no stored value
// never match.
type EqualsBool struct {
	Attr  Attr
	Value bool
}

func (e EqualsBool) Matches(p *entity.Profile) bool {
	b, ok := attrBool(p, e.Attr)

	return ok && b == e.Value
}

// EqualsNumber matches a numeric attribute exactly.
type EqualsNumber struct {
	Attr  Attr
	Value float64
}

func (e EqualsNumber) Matches(p *entity.Profile) bool {
	f, ok := attrNumber(p, e.Attr)

	return ok && f == e.Value
}

// ListMembership matches when the scalar attribute is one of the listed
// values.
type ListMembership struct {
	Attr   Attr
	Values []string
}

func (m ListMembership) Matches(p *entity.Profile) bool {
	got := attrText(p, m.Attr)
	for _, v := range m.Values {
		if got == v {
			return true
		}
	}

	return false
}

// SetIntersects matches when the list-valued attribute shares at least one
// element with the listed values.
type SetIntersects struct {
	Attr   Attr
	Values []string
}

func (s SetIntersects) Matches(p *entity.Profile) bool {
	have := attrList(p, s.Attr)
	if len(have) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, item := range have {
		set[strings.TrimSpace(item)] = struct{}{}
	}
	for _, v := range s.Values {
		if _, ok := set[strings.TrimSpace(v)]; ok {
			return true
		}
	}

	return false
}

// RangeNumeric matches a numeric attribute against an inclusive range. A nil
// bound is open. Candidates with no stored value never match.
type RangeNumeric struct {
	Attr Attr
	Min  *float64
	Max  *float64
}

func (r RangeNumeric) Matches(p *entity.Profile) bool {
	f, ok := attrNumber(p, r.Attr)
	if !ok {
		return false
	}
	if r.Min != nil && f < *r.Min {
		return false
	}
	if r.Max != nil && f > *r.Max {
		return false
	}

	return true
}

// RangeDate matches a date attribute against an inclusive range. A nil bound
// is open. Candidates with no stored value never match.
type RangeDate struct {
	Attr Attr
	From *time.Time
	To   *time.Time
}

func (r RangeDate) Matches(p *entity.Profile) bool {
	t, ok := attrTime(p, r.Attr)
	if !ok {
		return false
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}

	return true
}

// And matches when every child predicate matches. An empty And matches.
type And struct {
	Preds []Predicate
}

func (a And) Matches(p *entity.Profile) bool {
	for _, pred := range a.Preds {
		if !pred.Matches(p) {
			return false
		}
	}

	return true
}

// Or matches when at least one child predicate matches. An empty Or matches.
type Or struct {
	Preds []Predicate
}

func (o Or) Matches(p *entity.Profile) bool {
	if len(o.Preds) == 0 {
		return true
	}
	for _, pred := range o.Preds {
		if pred.Matches(p) {
			return true
		}
	}

	return false
}

// --- Attribute accessors for in-memory evaluation ---

func attrText(p *entity.Profile, a Attr) string {
	if p == nil {
		return ""
	}

	switch a {
	case AttrCountryResidence:
		return p.CountryResidence
	case AttrCountryOrigin:
		return p.CountryOrigin
	case AttrCityResidence:
		return p.CityResidence
	case AttrCityOrigin:
		return p.CityOrigin
	case AttrReligion:
		return p.Religion
	case AttrEducationLevel:
		return p.EducationLevel
	case AttrEmploymentStatus:
		return p.EmploymentStatus
	case AttrSector:
		return p.Sector
	case AttrIncomeBracket:
		return p.IncomeBracket
	case AttrHealthStatus:
		return p.HealthStatus
	case AttrSmoker:
		return p.Smoker
	case AttrDrinker:
		return p.Drinker
	case AttrMotorized:
		return p.Motorized
	case AttrHousing:
		return p.Housing
	case AttrOrigin:
		return p.Origin
	case AttrHijabChoice:
		return p.HijabChoice
	case AttrVeil:
		return p.Veil
	case AttrNiqabAcceptance:
		return p.NiqabAcceptance
	case AttrPolygamy:
		return p.Polygamy
	case AttrForeignMarriage:
		return p.ForeignMarriage
	case AttrWorkAfterMarriage:
		return p.WorkAfterMarriage
	case AttrSport:
		return p.Sport
	default:
		return ""
	}
}

func attrList(p *entity.Profile, a Attr) []string {
	if p == nil {
		return nil
	}

	switch a {
	case AttrMaritalStatus:
		return p.MaritalStatus
	case AttrHealthConditions:
		return p.HealthConditions
	default:
		return nil
	}
}

func attrNumber(p *entity.Profile, a Attr) (float64, bool) {
	if p == nil {
		return 0, false
	}

	switch a {
	case AttrHeight:
		if p.Height == 0 {
			return 0, false
		}

		return p.Height, true
	case AttrWeight:
		if p.Weight == 0 {
			return 0, false
		}

		return p.Weight, true
	case AttrChildrenCount:
		if p.ChildrenCount == nil {
			return 0, false
		}

		return float64(*p.ChildrenCount), true
	default:
		return 0, false
	}
}

func attrBool(p *entity.Profile, a Attr) (bool, bool) {
	if p == nil {
		return false, false
	}

	switch a {
	case AttrHasChildren:
		if p.HasChildren == nil {
			return false, false
		}

		return *p.HasChildren, true
	default:
		return false, false
	}
}

func attrTime(p *entity.Profile, a Attr) (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}

	switch a {
	case AttrBirthDate:
		if p.BirthDate == nil {
			return time.Time{}, false
		}

		return *p.BirthDate, true
	default:
		return time.Time{}, false
	}
}
