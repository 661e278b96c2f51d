package sources

import (
	"strconv"
	"strings"
)

// Text returns the first non-empty string value behind the given keys.
// String slices (author lists) are joined with ", ".
func Text(doc Document, keys ...string) (string, bool) {
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v, true
			}
		case []any:
			if joined := joinStrings(v); joined != "" {
				return joined, true
			}
		}
	}
	return "", false
}

// Integer returns the first value behind the given keys that is a JSON
// number or a numeric string.
func Integer(doc Document, keys ...string) (int, bool) {
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case string:
			if v == "" {
				continue
			}
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func joinStrings(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
