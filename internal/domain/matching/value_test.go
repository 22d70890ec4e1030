package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		empty bool
	}{
		{"nil value", Value{}, true},
		{"empty string", StringValue(""), true},
		{"blank string", StringValue("   "), true},
		{"empty list", ListValue(), true},
		{"zero number", NumberValue(0), false},
		{"false bool", BoolValue(false), false},
		{"non-empty string", StringValue("Islam"), false},
		{"non-empty list", ListValue("Maroc"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.value.IsEmpty())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"both empty", StringValue(""), Value{}, true},
		{"empty vs value", StringValue(""), StringValue("Islam"), false},
		{"same strings", StringValue("Islam"), StringValue("Islam"), true},
		{"trimmed strings", StringValue(" Islam "), StringValue("Islam"), true},
		{"different strings", StringValue("Islam"), StringValue("Christianisme"), false},
		{"numeric equal across kinds", NumberValue(30), StringValue("30"), true},
		{"numeric unequal", NumberValue(30), NumberValue(31), false},
		{"numeric vs non-numeric", NumberValue(30), StringValue("trente"), false},
		{"lists same order", ListValue("a", "b"), ListValue("a", "b"), true},
		{"lists different order", ListValue("b", "a"), ListValue("a", "b"), true},
		{"lists with duplicates", ListValue("a", "a", "b"), ListValue("b", "a"), true},
		{"list subset", ListValue("a"), ListValue("a", "b"), false},
		{"list superset", ListValue("a", "b", "c"), ListValue("a", "b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a), "equality must be symmetric")
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	assert.True(t, BoolValue(true).Truthy())
	assert.True(t, StringValue("yes").Truthy())
	assert.True(t, StringValue("oui").Truthy())
	assert.True(t, StringValue("1").Truthy())
	assert.True(t, NumberValue(1).Truthy())
	assert.False(t, StringValue("no").Truthy())
	assert.False(t, BoolValue(false).Truthy())
	assert.False(t, Value{}.Truthy())
}

func TestValue_Strings(t *testing.T) {
	assert.Equal(t, []string{"Maroc", "France"}, ListValue("Maroc", "France").Strings())
	assert.Equal(t, []string{"Maroc"}, StringValue("Maroc").Strings())
	assert.Nil(t, StringValue("").Strings())
	assert.Nil(t, Value{}.Strings())
}

func TestValue_JSONRoundTrip(t *testing.T) {
	raw := []byte(`{"religion":"Islam","age_min":25,"pays_recherche":["Maroc","France"],"has_children":false}`)

	var filters map[string]Value
	require.NoError(t, json.Unmarshal(raw, &filters))

	assert.Equal(t, "Islam", filters["religion"].Text())
	min, ok := filters["age_min"].Number()
	require.True(t, ok)
	assert.InDelta(t, 25, min, 0.001)
	assert.Equal(t, []string{"Maroc", "France"}, filters["pays_recherche"].Strings())
	assert.False(t, filters["has_children"].Truthy())

	encoded, err := json.Marshal(filters)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(encoded))
}
