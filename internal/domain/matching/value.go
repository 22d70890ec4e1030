// Package matching implements the matchmaking engine: resolving a reference
// person's default filters, classifying caller overrides, composing the
// candidate predicate and scoring/ranking candidates.
package matching

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type valueKind int

const (
	kindNone valueKind = iota
	kindString
	kindNumber
	kindBool
	kindList
)

// Value is the typed union carried by a filter. The legacy engine passed
// arbitrary scalars and arrays around; here the shape is explicit: a string,
// a number, a boolean or a list of strings.
type Value struct {
	kind valueKind
	str  string
	num  float64
	b    bool
	list []string
}

// StringValue wraps a string filter value.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// NumberValue wraps a numeric filter value.
func NumberValue(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// BoolValue wraps a boolean filter value.
func BoolValue(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// ListValue wraps a list filter value.
func ListValue(items ...string) Value {
	return Value{kind: kindList, list: items}
}

// FromAny converts a loosely-typed value (e.g. a decoded JSON field) into a
// Value. Unrecognized types collapse to their string representation.
func FromAny(x any) Value {
	switch v := x.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(float64(v))
	case int:
		return NumberValue(float64(v))
	case int64:
		return NumberValue(float64(v))
	case []string:
		return ListValue(v...)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, FromAny(item).Text())
		}

		return ListValue(items...)
	default:
		return StringValue(strings.TrimSpace(toString(v)))
	}
}

func toString(x any) string {
	if s, ok := x.(interface{ String() string }); ok {
		return s.String()
	}

	raw, err := json.Marshal(x)
	if err != nil {
		return ""
	}

	return strings.Trim(string(raw), `"`)
}

// IsEmpty reports whether the value counts as "empty" for classification:
// null, empty string, or empty array.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case kindNone:
		return true
	case kindString:
		return strings.TrimSpace(v.str) == ""
	case kindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// Text returns the scalar string form of the value. Lists join on commas.
func (v Value) Text() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// Number returns the numeric form of the value, if it has one.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// Strings normalizes the value to a list: lists as-is, non-empty scalars as a
// single-element list.
func (v Value) Strings() []string {
	switch v.kind {
	case kindList:
		return v.list
	case kindNone:
		return nil
	default:
		if v.IsEmpty() {
			return nil
		}

		return []string{v.Text()}
	}
}

// IsList reports whether the value is array-shaped.
func (v Value) IsList() bool {
	return v.kind == kindList
}

// Truthy interprets the value as a boolean flag: true, "yes", "true", "1" and
// non-zero numbers all count as true.
func (v Value) Truthy() bool {
	switch v.kind {
	case kindBool:
		return v.b
	case kindNumber:
		return v.num != 0
	case kindString:
		switch strings.ToLower(strings.TrimSpace(v.str)) {
		case "yes", "true", "1", "oui":
			return true
		}

		return false
	default:
		return false
	}
}

// Equal implements the classifier's equality rule:
//   - both empty -> equal
//   - exactly one empty -> different
//   - both arrays -> order- and duplicate-insensitive set equality
//   - either numeric -> floating point comparison
//   - otherwise -> trimmed string comparison
func Equal(a, b Value) bool {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	if aEmpty && bEmpty {
		return true
	}
	if aEmpty != bEmpty {
		return false
	}

	if a.kind == kindList && b.kind == kindList {
		return setEqual(a.list, b.list)
	}

	if af, ok := a.Number(); ok {
		if bf, ok := b.Number(); ok {
			return af == bf
		}

		return false
	}
	if _, ok := b.Number(); ok {
		// a is not numeric but b is
		return false
	}

	return strings.TrimSpace(a.Text()) == strings.TrimSpace(b.Text())
}

func setEqual(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, item := range a {
		seen[strings.TrimSpace(item)] = struct{}{}
	}

	other := make(map[string]struct{}, len(b))
	for _, item := range b {
		key := strings.TrimSpace(item)
		if _, ok := seen[key]; !ok {
			return false
		}
		other[key] = struct{}{}
	}

	return len(seen) == len(other)
}

// MarshalJSON renders the underlying scalar or list.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.kind {
	case kindNone:
		payload = nil
	case kindString:
		payload = v.str
	case kindNumber:
		payload = v.num
	case kindBool:
		payload = v.b
	case kindList:
		payload = v.list
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal filter value")
	}

	return raw, nil
}

// UnmarshalJSON accepts a string, number, boolean, array or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "unmarshal filter value")
	}

	*v = FromAny(raw)

	return nil
}
