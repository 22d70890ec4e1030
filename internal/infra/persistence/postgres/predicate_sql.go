package postgres

import (
	"fmt"
	"strings"

	"mawadda/internal/domain/matching"
)

// buildCondition translates a predicate tree into a parameterized SQL
// fragment against the joined profiles table. An empty fragment means the
// predicate imposes no restriction.
func buildCondition(p matching.Predicate) (string, []any) {
	switch pred := p.(type) {
	case nil:
		return "", nil

	case matching.Equals:
		return fmt.Sprintf("%s = ?", column(pred.Attr)), []any{pred.Value}

	case matching.EqualsBool:
		return fmt.Sprintf("%s = ?", column(pred.Attr)), []any{pred.Value}

	case matching.EqualsNumber:
		return fmt.Sprintf("%s = ?", column(pred.Attr)), []any{pred.Value}

	case matching.ListMembership:
		if len(pred.Values) == 0 {
			return "FALSE", nil
		}

		return fmt.Sprintf("%s IN ?", column(pred.Attr)), []any{pred.Values}

	case matching.SetIntersects:
		return setIntersectsCondition(pred)

	case matching.RangeNumeric:
		return rangeNumericCondition(pred)

	case matching.RangeDate:
		return rangeDateCondition(pred)

	case matching.And:
		return combine(pred.Preds, " AND ", "")

	case matching.Or:
		return combine(pred.Preds, " OR ", "")

	default:
		// Unknown predicate shapes impose no SQL restriction; the in-memory
		// ranking still sees the full profile.
		return "", nil
	}
}

func column(attr matching.Attr) string {
	return "profiles." + string(attr)
}

// setIntersectsCondition matches comma-separated legacy list columns: the
// candidate column, split on commas and trimmed, must contain any value.
func setIntersectsCondition(pred matching.SetIntersects) (string, []any) {
	if len(pred.Values) == 0 {
		return "FALSE", nil
	}

	col := column(pred.Attr)
	parts := make([]string, 0, len(pred.Values))
	args := make([]any, 0, len(pred.Values))
	for _, v := range pred.Values {
		parts = append(parts, fmt.Sprintf("? = ANY(SELECT btrim(x) FROM unnest(string_to_array(%s, ',')) AS x)", col))
		args = append(args, strings.TrimSpace(v))
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

func rangeNumericCondition(pred matching.RangeNumeric) (string, []any) {
	col := column(pred.Attr)
	// Zero doubles as "unset" in the legacy numeric columns.
	parts := []string{fmt.Sprintf("%s <> 0", col)}
	var args []any
	if pred.Min != nil {
		parts = append(parts, fmt.Sprintf("%s >= ?", col))
		args = append(args, *pred.Min)
	}
	if pred.Max != nil {
		parts = append(parts, fmt.Sprintf("%s <= ?", col))
		args = append(args, *pred.Max)
	}

	return "(" + strings.Join(parts, " AND ") + ")", args
}

func rangeDateCondition(pred matching.RangeDate) (string, []any) {
	col := column(pred.Attr)
	var parts []string
	var args []any
	if pred.From != nil {
		parts = append(parts, fmt.Sprintf("%s >= ?", col))
		args = append(args, *pred.From)
	}
	if pred.To != nil {
		parts = append(parts, fmt.Sprintf("%s <= ?", col))
		args = append(args, *pred.To)
	}
	if len(parts) == 0 {
		return "", nil
	}

	return "(" + strings.Join(parts, " AND ") + ")", args
}

func combine(preds []matching.Predicate, sep, empty string) (string, []any) {
	parts := make([]string, 0, len(preds))
	var args []any
	for _, child := range preds {
		sql, childArgs := buildCondition(child)
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	if len(parts) == 0 {
		return empty, nil
	}
	if len(parts) == 1 {
		return parts[0], args
	}

	return "(" + strings.Join(parts, sep) + ")", args
}
