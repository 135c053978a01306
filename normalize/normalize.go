// Package normalize holds the scalar coercion rules shared by every entity
// adapter. Both backends are loose about types: booleans arrive as true,
// "1", 1 or "yes"; numbers arrive as float64, int or numeric strings.
// Every function here is total and never panics, whatever the input.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

var truthyStrings = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"y":    true,
}

// ParseBool coerces any backend value into a boolean.
//
// Strings outside the truthy allow-list are false, including "false", "no"
// and arbitrary words alike. Do not "improve" this with a falsy list: call
// sites rely on unknown strings landing in the false bucket.
func ParseBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case float32:
		return val != 0
	case int:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		if s == "" {
			return false
		}
		return truthyStrings[s]
	default:
		return v != nil
	}
}

// NumOr coerces v to a finite float64, falling back when it is not a number
// at all or is NaN/Inf. Numeric strings parse: the legacy backend sends
// `"time_limit": "1000"` on some endpoints.
func NumOr(v any, fallback float64) float64 {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int32:
		n = float64(val)
	case int64:
		n = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// IntOr is NumOr truncated to int.
func IntOr(v any, fallback int) int {
	return int(NumOr(v, float64(fallback)))
}

// StrOr returns v when it is a string, the fallback otherwise.
func StrOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// FirstPresent scans keys in order and returns the value of the first key
// that exists in obj with a non-nil value. Presence wins over truthiness:
// {"visible": false, "is_public": true} resolves to false when "visible"
// is scanned first.
func FirstPresent(obj map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// AsObject returns raw as a JSON object, or false when raw is nil, a
// scalar, an array or anything else that is not a decoded object.
func AsObject(raw any) (map[string]any, bool) {
	obj, ok := raw.(map[string]any)
	return obj, ok
}

// AsArray returns raw as a decoded JSON array.
func AsArray(raw any) ([]any, bool) {
	arr, ok := raw.([]any)
	return arr, ok
}

// StrSlice coerces a decoded JSON array into its string elements,
// skipping anything that is not a string. Non-arrays yield an empty,
// non-nil slice.
func StrSlice(v any) []string {
	res := []string{}
	arr, ok := v.([]any)
	if !ok {
		return res
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			res = append(res, s)
		}
	}
	return res
}
