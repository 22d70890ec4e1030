package matching

// Classification splits the effective filters into the manually changed set
// and the default (unchanged) set. The two maps are disjoint.
type Classification struct {
	// Changed holds overrides that meaningfully differ from the default, plus
	// any new non-empty override without a default counterpart.
	Changed Filters

	// Unchanged holds every default the caller did not meaningfully override,
	// at its default value.
	Unchanged Filters
}

// Classify compares caller-supplied overrides against the resolved defaults.
//
// Each default key lands in exactly one of the two sets: in Changed when a
// non-empty override differs from it under the Value equality rule, otherwise
// in Unchanged with the default value. Override keys with no default land in
// Changed when non-empty.
func Classify(defaults, overrides Filters) Classification {
	result := Classification{
		Changed:   Filters{},
		Unchanged: Filters{},
	}

	for key, def := range defaults {
		override, ok := overrides[key]
		if !ok || override.IsEmpty() || Equal(override, def) {
			result.Unchanged[key] = def

			continue
		}
		result.Changed[key] = override
	}

	for key, override := range overrides {
		if _, ok := defaults[key]; ok {
			continue
		}
		if override.IsEmpty() {
			continue
		}
		result.Changed[key] = override
	}

	return result
}
