package postgres

import (
	"testing"
	"time"

	"mawadda/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCondition_Equals(t *testing.T) {
	sql, args := buildCondition(matching.Equals{Attr: matching.AttrReligion, Value: "Islam"})

	assert.Equal(t, "profiles.religion = ?", sql)
	assert.Equal(t, []any{"Islam"}, args)
}

func TestBuildCondition_ListMembership(t *testing.T) {
	sql, args := buildCondition(matching.ListMembership{
		Attr:   matching.AttrIncomeBracket,
		Values: []string{"5000-10000", "10000-20000"},
	})

	assert.Equal(t, "profiles.tranche_revenu IN ?", sql)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"5000-10000", "10000-20000"}, args[0])
}

func TestBuildCondition_EmptyListNeverMatches(t *testing.T) {
	sql, args := buildCondition(matching.ListMembership{Attr: matching.AttrIncomeBracket})

	assert.Equal(t, "FALSE", sql)
	assert.Empty(t, args)
}

func TestBuildCondition_SetIntersects(t *testing.T) {
	sql, args := buildCondition(matching.SetIntersects{
		Attr:   matching.AttrMaritalStatus,
		Values: []string{"celibataire", " divorce "},
	})

	assert.Contains(t, sql, "string_to_array(profiles.etat_matrimonial, ',')")
	assert.Contains(t, sql, " OR ")
	assert.Equal(t, []any{"celibataire", "divorce"}, args, "values are trimmed")
}

func TestBuildCondition_RangeNumericGuardsUnset(t *testing.T) {
	min := 160.0
	max := 180.0
	sql, args := buildCondition(matching.RangeNumeric{Attr: matching.AttrHeight, Min: &min, Max: &max})

	assert.Equal(t, "(profiles.taille <> 0 AND profiles.taille >= ? AND profiles.taille <= ?)", sql)
	assert.Equal(t, []any{160.0, 180.0}, args)
}

func TestBuildCondition_RangeDate(t *testing.T) {
	from := time.Date(1986, 9, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2006, 9, 1, 0, 0, 0, 0, time.UTC)

	sql, args := buildCondition(matching.RangeDate{Attr: matching.AttrBirthDate, From: &from, To: &to})
	assert.Equal(t, "(profiles.date_naissance >= ? AND profiles.date_naissance <= ?)", sql)
	assert.Equal(t, []any{from, to}, args)

	sql, args = buildCondition(matching.RangeDate{Attr: matching.AttrBirthDate})
	assert.Empty(t, sql, "unbounded range imposes nothing")
	assert.Empty(t, args)
}

func TestBuildCondition_AndOrCombining(t *testing.T) {
	pred := matching.And{Preds: []matching.Predicate{
		matching.Or{Preds: []matching.Predicate{
			matching.Equals{Attr: matching.AttrCountryResidence, Value: "Maroc"},
			matching.Equals{Attr: matching.AttrCountryOrigin, Value: "Maroc"},
		}},
		matching.Equals{Attr: matching.AttrReligion, Value: "Islam"},
	}}

	sql, args := buildCondition(pred)

	assert.Equal(t,
		"((profiles.pays_residence = ? OR profiles.pays_origine = ?) AND profiles.religion = ?)",
		sql)
	assert.Equal(t, []any{"Maroc", "Maroc", "Islam"}, args)
}

func TestBuildCondition_EmptyGroups(t *testing.T) {
	sql, args := buildCondition(matching.And{})
	assert.Empty(t, sql)
	assert.Empty(t, args)

	// A single surviving child collapses without extra parentheses.
	sql, _ = buildCondition(matching.And{Preds: []matching.Predicate{
		matching.Or{},
		matching.Equals{Attr: matching.AttrSmoker, Value: "non"},
	}})
	assert.Equal(t, "profiles.fumeur = ?", sql)
}

func TestBuildCondition_ComposedFilters(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	changed := matching.Filters{matching.KeyReligion: matching.StringValue("Islam")}
	unchanged := matching.Filters{matching.KeyCountriesSearched: matching.ListValue("Maroc")}

	sql, args := buildCondition(matching.Compose(changed, unchanged, now))

	assert.NotEmpty(t, sql)
	assert.NotEmpty(t, args)
	assert.Contains(t, sql, "profiles.religion = ?")
}
