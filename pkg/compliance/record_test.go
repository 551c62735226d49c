package compliance

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	r := Record{
		"delete": map[string]any{
			"status": map[string]any{
				"id_str":      "42",
				"user_id_str": "7",
			},
			"timestamp_ms": "1610000000123",
		},
	}

	t.Run("descends nested keys in order", func(t *testing.T) {
		assert.Equal(t, "42", r.Lookup("delete", "status", "id_str"))
		assert.Equal(t, "1610000000123", r.Lookup("delete", "timestamp_ms"))
	})

	t.Run("empty path returns the record itself", func(t *testing.T) {
		v, ok := r.Lookup().(map[string]any)
		require.True(t, ok)
		assert.Contains(t, v, "delete")
	})

	t.Run("missing key returns nil at any depth", func(t *testing.T) {
		assert.Nil(t, r.Lookup("drop"))
		assert.Nil(t, r.Lookup("delete", "favorite"))
		assert.Nil(t, r.Lookup("delete", "status", "geo"))
		assert.Nil(t, r.Lookup("delete", "status", "geo", "lat", "deep", "deeper", "deepest"))
	})

	t.Run("descending through a non-mapping returns nil", func(t *testing.T) {
		assert.Nil(t, r.Lookup("delete", "timestamp_ms", "anything"))
		assert.Nil(t, r.Lookup("delete", "status", "id_str", "x", "y"))
	})

	t.Run("nested Record values are traversable", func(t *testing.T) {
		nested := Record{"outer": Record{"inner": "v"}}
		assert.Equal(t, "v", nested.Lookup("outer", "inner"))
	})
}

func TestRecordJSON(t *testing.T) {
	r := Record{"scrub_geo": map[string]any{"user_id_str": "7"}}
	out, err := r.JSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"scrub_geo\": {\n    \"user_id_str\": \"7\"\n  }\n}", out)
}

func TestStringValue(t *testing.T) {
	want := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   any
		out  *string
	}{
		{"nil", nil, nil},
		{"string", "abc", want("abc")},
		{"json.Number", stdjson.Number("63046977"), want("63046977")},
		{"int", 42, want("42")},
		{"int64", int64(63046977), want("63046977")},
		{"float64 without exponent", float64(63046977), want("63046977")},
		{"mapping is not an ID", map[string]any{}, nil},
		{"list is not an ID", []any{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stringValue(tt.in)
			if tt.out == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.out, *got)
		})
	}
}

func TestStringSlice(t *testing.T) {
	t.Run("decoded JSON list", func(t *testing.T) {
		assert.Equal(t, []string{"DE", "TR"}, stringSlice([]any{"DE", "TR"}))
	})

	t.Run("native string slice is copied", func(t *testing.T) {
		in := []string{"IN"}
		out := stringSlice(in)
		assert.Equal(t, []string{"IN"}, out)
		out[0] = "mutated"
		assert.Equal(t, "IN", in[0])
	})

	t.Run("absent and scalar values", func(t *testing.T) {
		assert.Nil(t, stringSlice(nil))
		assert.Nil(t, stringSlice("DE"))
	})
}
