// Package form implements the shared field-normalization and validation core
// behind the three submission endpoints. Payloads have no enforced shape: the
// same logical field can arrive under several aliases and as a scalar, list,
// or comma-separated string. Everything here is a pure function of the
// payload and the alias table.
package form

import (
	"strconv"
	"strings"

	"go-leadform-backend/internal/domain"
)

// Clean converts one raw payload value to a trimmed string. JSON numbers are
// stringified ("3", "3.5"); booleans, nulls and nested structures clean to "".
func Clean(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// First resolves a single-valued logical field: the first alias in declared
// order whose value cleans to a non-empty string wins. A list value
// contributes its first non-empty cleaned element. A key that is present but
// cleans to empty falls through to the next alias.
func First(payload domain.Payload, aliases ...string) string {
	for _, key := range aliases {
		value, ok := payload[key]
		if !ok {
			continue
		}
		if items, isList := value.([]any); isList {
			for _, item := range items {
				if cleaned := Clean(item); cleaned != "" {
					return cleaned
				}
			}
			continue
		}
		if cleaned := Clean(value); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// List resolves a multi-valued logical field, accumulating across every
// matching alias: list values contribute each non-empty cleaned element,
// strings are split on commas with each segment trimmed, other scalars are
// cleaned whole. The result is de-duplicated preserving first-seen order.
func List(payload domain.Payload, aliases ...string) []string {
	var result []string
	for _, key := range aliases {
		value, ok := payload[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case []any:
			for _, item := range v {
				if cleaned := Clean(item); cleaned != "" {
					result = append(result, cleaned)
				}
			}
		case string:
			for _, part := range strings.Split(v, ",") {
				if cleaned := strings.TrimSpace(part); cleaned != "" {
					result = append(result, cleaned)
				}
			}
		default:
			if cleaned := Clean(value); cleaned != "" {
				result = append(result, cleaned)
			}
		}
	}
	return dedupe(result)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ListText renders a multi-valued field for composition: comma-and-space
// joined, or the literal fallback when empty. The fallback text is contract;
// tests assert on it.
func ListText(values []string) string {
	if len(values) == 0 {
		return "Not provided"
	}
	return strings.Join(values, ", ")
}

// OrText renders an optional single-valued field with the same fallback.
func OrText(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
