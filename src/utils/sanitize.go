package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes every HTML tag from s.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}

// SanitizeValue strips tags from strings, recursing into slices and maps.
// Other values are returned unchanged.
func SanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return StripTags(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = SanitizeValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = SanitizeValue(item)
		}
		return out
	}
	return v
}
