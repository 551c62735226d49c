// Package compliance classifies social-media compliance event records
// (deletions, suspensions, withholding notices, geo scrubs, like
// deletions) and projects class-specific fields out of them.
//
// A record arrives as a decoded nested mapping with exactly one
// top-level key, the action name. NewBase identifies which action class
// the record belongs to; the five action views (TweetAction, UserAction,
// DropAction, ScrubGeoAction, DeleteLikeAction) narrow a classified
// record to one class and expose typed accessors. Classification
// failures surface at construction; accessors never fail and return nil
// for fields the current action does not carry.
//
// The package performs no I/O: a collaborating ingestion layer decodes
// the wire format into Records before handing them over.
package compliance

import (
	stdjson "encoding/json"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	dErrors "decahose/pkg/domain-errors"
)

// jsonAPI is the jsoniter instance used for all record rendering.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a compliance event as delivered by the firehose: a nested
// mapping whose sole top-level key is the action name.
type Record map[string]any

// Lookup descends the record through each key in order and returns the
// value it reaches. It returns nil the moment a key is absent or the
// current value is not a mapping; it never errors, arbitrarily deep
// paths included. Lookup is a best-effort read, not schema validation.
func (r Record) Lookup(path ...string) any {
	var cur any = map[string]any(r)
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil
		}
		cur, ok = m[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// JSON renders the record as indented JSON for logs and debugging.
func (r Record) JSON() (string, error) {
	out, err := jsonAPI.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to render record")
	}
	return string(out), nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}

// stringValue converts a looked-up value to a string pointer. Numeric
// values are stringified because the upstream API is inconsistent about
// whether IDs arrive as strings or numbers. Returns nil for absent
// values and for shapes no ID field legitimately takes.
func stringValue(v any) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s = val
	case stdjson.Number:
		s = val.String()
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return nil
	}
	return &s
}

// stringSlice converts a looked-up value to a string slice, accepting
// both []string and the []any a JSON decoder produces. Returns nil for
// absent or non-list values.
func stringSlice(v any) []string {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != nil {
				out = append(out, *s)
			}
		}
		return out
	}
	return nil
}
