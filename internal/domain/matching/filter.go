package matching

import (
	"slices"
)

// Key enumerates the supported filter keys. The spellings are the legacy
// wire names and are part of the public API of the engine.
type Key string

const (
	KeyAgeMin Key = "age_min"
	KeyAgeMax Key = "age_max"

	KeyCountriesSearched Key = "pays_recherche"
	KeyCountryResidence  Key = "pays_residence"
	KeyCountryOrigin     Key = "pays_origine"
	KeyCitiesSearched    Key = "villes_recherche"
	KeyCityResidence     Key = "ville_residence"
	KeyCityOrigin        Key = "ville_origine"

	KeyReligion          Key = "religion"
	KeyEducationLevel    Key = "niveau_etudes"
	KeyEmploymentStatus  Key = "situation_professionnelle"
	KeySector            Key = "secteur"
	KeyIncomeMinimum     Key = "revenu_minimum"
	KeyMaritalStatus     Key = "etat_matrimonial"
	KeyHealthStatus      Key = "etat_sante"
	KeyHealthConditions  Key = "situation_sante"
	KeySmoker            Key = "fumeur"
	KeyDrinker           Key = "buveur"
	KeyMotorized         Key = "motorise"
	KeyHousing           Key = "logement"
	KeyOrigin            Key = "origine"
	KeyHijabChoice       Key = "hijab_choice"
	KeyVeil              Key = "veil"
	KeyNiqabAcceptance   Key = "niqab_acceptance"
	KeyPolygamy          Key = "polygamy"
	KeyForeignMarriage   Key = "foreign_marriage"
	KeyWorkAfterMarriage Key = "work_after_marriage"
	KeySport             Key = "sport"
	KeyHasChildren       Key = "has_children"
	KeyChildrenCount     Key = "children_count"

	KeyHeightMin Key = "taille_min"
	KeyHeightMax Key = "taille_max"
	KeyWeightMin Key = "poids_min"
	KeyWeightMax Key = "poids_max"
)

// Filters maps filter keys to their values. A key that is absent carries no
// constraint; an explicitly empty value is meaningful for some keys (fumeur,
// buveur, motorise).
type Filters map[Key]Value

// FiltersFromAny converts a loosely-typed map (e.g. a decoded JSON body)
// into Filters.
func FiltersFromAny(raw map[string]any) Filters {
	if len(raw) == 0 {
		return Filters{}
	}

	filters := make(Filters, len(raw))
	for k, v := range raw {
		filters[Key(k)] = FromAny(v)
	}

	return filters
}

// Clone returns a shallow copy of the filter map.
func (f Filters) Clone() Filters {
	cloned := make(Filters, len(f))
	for k, v := range f {
		cloned[k] = v
	}

	return cloned
}

// Overlay returns the filters with every non-empty override applied on top;
// the override wins when both sides carry a value.
func (f Filters) Overlay(overrides Filters) Filters {
	applied := f.Clone()
	for k, v := range overrides {
		if !v.IsEmpty() {
			applied[k] = v
		}
	}

	return applied
}

// Keys lists the keys present in the filter map in lexicographic order, so
// that everything derived from a filter map is deterministic.
func (f Filters) Keys() []Key {
	keys := make([]Key, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
