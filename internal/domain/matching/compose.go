package matching

import (
	"time"
)

// incomeBrackets orders the legacy income brackets from lowest to highest.
// Values outside this list (notably the "peu-importe" placeholder) have no
// rank and can never satisfy a minimum-income filter.
var incomeBrackets = []string{
	"0-2500",
	"2500-5000",
	"5000-10000",
	"10000-20000",
	"20000-50000",
	"50000+",
}

func incomeBracketRank(bracket string) (int, bool) {
	for i, b := range incomeBrackets {
		if b == bracket {
			return i, true
		}
	}

	return 0, false
}

// incomeBracketsAtLeast lists the brackets ranking at or above the given one.
// Unknown brackets yield nil.
func incomeBracketsAtLeast(minimum string) []string {
	rank, ok := incomeBracketRank(minimum)
	if !ok {
		return nil
	}

	return incomeBrackets[rank:]
}

// Compose builds the candidate predicate from the classified filters.
// Unchanged filters are combined with OR: a candidate qualifies by matching
// any one of them. Changed filters are strict and combined with AND. The two
// groups intersect. With no filters at all the predicate accepts every
// candidate in the base pool.
func Compose(changed, unchanged Filters, now time.Time) Predicate {
	var parts []Predicate

	if or := composeGroup(unchanged, now); len(or) > 0 {
		parts = append(parts, Or{Preds: or})
	}
	if and := composeGroup(changed, now); len(and) > 0 {
		parts = append(parts, And{Preds: and})
	}

	return And{Preds: parts}
}

func composeGroup(filters Filters, now time.Time) []Predicate {
	preds := make([]Predicate, 0, len(filters))
	for _, key := range filters.Keys() {
		if p := filterPredicate(key, filters[key], now); p != nil {
			preds = append(preds, p)
		}
	}

	return preds
}

// filterPredicate maps one filter to its candidate condition. Unsupported
// keys and unusable values yield nil and are skipped.
func filterPredicate(key Key, value Value, now time.Time) Predicate {
	switch key {
	case KeyAgeMin:
		min, ok := value.Number()
		if !ok {
			return nil
		}
		// Born on or before this date means the candidate is at least min
		// years old today.
		latest := now.AddDate(-int(min), 0, 0)

		return RangeDate{Attr: AttrBirthDate, To: &latest}

	case KeyAgeMax:
		max, ok := value.Number()
		if !ok {
			return nil
		}
		// The earliest birth date still aged max: one day past max+1 years
		// ago.
		earliest := now.AddDate(-int(max)-1, 0, 1)

		return RangeDate{Attr: AttrBirthDate, From: &earliest}

	case KeyCountriesSearched:
		values := value.Strings()
		if len(values) == 0 {
			return nil
		}

		return Or{Preds: []Predicate{
			ListMembership{Attr: AttrCountryResidence, Values: values},
			ListMembership{Attr: AttrCountryOrigin, Values: values},
		}}

	case KeyCitiesSearched:
		values := value.Strings()
		if len(values) == 0 {
			return nil
		}

		return Or{Preds: []Predicate{
			ListMembership{Attr: AttrCityResidence, Values: values},
			ListMembership{Attr: AttrCityOrigin, Values: values},
		}}

	case KeyCountryResidence:
		return listMembershipPredicate(AttrCountryResidence, value)
	case KeyCountryOrigin:
		return listMembershipPredicate(AttrCountryOrigin, value)
	case KeyCityResidence:
		return listMembershipPredicate(AttrCityResidence, value)
	case KeyCityOrigin:
		return listMembershipPredicate(AttrCityOrigin, value)

	case KeyReligion:
		return Equals{Attr: AttrReligion, Value: value.Text()}
	case KeyEducationLevel:
		return Equals{Attr: AttrEducationLevel, Value: value.Text()}
	case KeyEmploymentStatus:
		return Equals{Attr: AttrEmploymentStatus, Value: value.Text()}
	case KeySector:
		return Equals{Attr: AttrSector, Value: value.Text()}
	case KeyOrigin:
		return Equals{Attr: AttrOrigin, Value: value.Text()}
	case KeyHousing:
		return Equals{Attr: AttrHousing, Value: value.Text()}
	case KeyHijabChoice:
		return Equals{Attr: AttrHijabChoice, Value: value.Text()}
	case KeyVeil:
		return Equals{Attr: AttrVeil, Value: value.Text()}
	case KeyNiqabAcceptance:
		return Equals{Attr: AttrNiqabAcceptance, Value: value.Text()}
	case KeyPolygamy:
		return Equals{Attr: AttrPolygamy, Value: value.Text()}
	case KeyForeignMarriage:
		return Equals{Attr: AttrForeignMarriage, Value: value.Text()}
	case KeyWorkAfterMarriage:
		return Equals{Attr: AttrWorkAfterMarriage, Value: value.Text()}
	case KeySport:
		return Equals{Attr: AttrSport, Value: value.Text()}

	case KeySmoker:
		return Equals{Attr: AttrSmoker, Value: value.Text()}
	case KeyDrinker:
		return Equals{Attr: AttrDrinker, Value: value.Text()}
	case KeyMotorized:
		return Equals{Attr: AttrMotorized, Value: value.Text()}

	case KeyHealthStatus:
		return Equals{Attr: AttrHealthStatus, Value: value.Text()}
	case KeyHealthConditions:
		values := value.Strings()
		if len(values) == 0 {
			return nil
		}

		return SetIntersects{Attr: AttrHealthConditions, Values: values}

	case KeyMaritalStatus:
		values := value.Strings()
		if len(values) == 0 {
			return nil
		}

		return SetIntersects{Attr: AttrMaritalStatus, Values: values}

	case KeyIncomeMinimum:
		brackets := incomeBracketsAtLeast(value.Text())
		if len(brackets) == 0 {
			return nil
		}

		return ListMembership{Attr: AttrIncomeBracket, Values: brackets}

	case KeyHasChildren:
		return EqualsBool{Attr: AttrHasChildren, Value: value.Truthy()}

	case KeyChildrenCount:
		n, ok := value.Number()
		if !ok {
			return nil
		}

		return EqualsNumber{Attr: AttrChildrenCount, Value: n}

	case KeyHeightMin:
		return numericBoundPredicate(AttrHeight, value, true)
	case KeyHeightMax:
		return numericBoundPredicate(AttrHeight, value, false)
	case KeyWeightMin:
		return numericBoundPredicate(AttrWeight, value, true)
	case KeyWeightMax:
		return numericBoundPredicate(AttrWeight, value, false)

	default:
		return nil
	}
}

func listMembershipPredicate(attr Attr, value Value) Predicate {
	values := value.Strings()
	if len(values) == 0 {
		return nil
	}

	return ListMembership{Attr: attr, Values: values}
}

func numericBoundPredicate(attr Attr, value Value, lower bool) Predicate {
	f, ok := value.Number()
	if !ok {
		return nil
	}
	if lower {
		return RangeNumeric{Attr: attr, Min: &f}
	}

	return RangeNumeric{Attr: attr, Max: &f}
}
