package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Regex patterns
var (
	// local@domain.tld: no whitespace or @ in local/domain, domain needs a dot
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Formatting characters stripped before counting phone digits
	phoneStripRegex = regexp.MustCompile(`[\s\-().+]`)
)

// Rule is one ordered validation step: the logical field it guards, the exact
// message surfaced to the client when it fails, and the predicate outcome.
type Rule struct {
	Field   string
	Message string
	Valid   bool
}

// Failure is the first failing rule of a schema.
type Failure struct {
	Field   string
	Message string
}

// FirstFailure evaluates rules in declared order and returns the first
// failure, or nil when the whole schema passes. The ordering is contract:
// with two invalid fields the earlier one's message wins. There is no
// multi-error aggregation.
func FirstFailure(rules []Rule) *Failure {
	for _, r := range rules {
		if !r.Valid {
			return &Failure{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}

// MinLen reports whether s is non-empty and at least n characters. Lengths
// count runes, not bytes, so multibyte input is not penalized.
func MinLen(s string, n int) bool {
	return s != "" && utf8.RuneCountInString(s) >= n
}

// MaxLen reports whether s is at most n characters. Empty passes; pair with
// MinLen or NonEmpty for required fields.
func MaxLen(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// LenBetween reports whether s is non-empty and within [min, max].
func LenBetween(s string, min, max int) bool {
	return MinLen(s, min) && MaxLen(s, max)
}

// ValidEmail checks the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidPhone strips spaces, hyphens, parentheses, periods and plus signs,
// then requires at least 7 digits in what remains.
func ValidPhone(s string) bool {
	if s == "" {
		return false
	}
	stripped := phoneStripRegex.ReplaceAllString(s, "")
	digits := 0
	for _, r := range stripped {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7
}

// NonNegativeNumber reports whether s parses as a finite float >= 0.
func NonNegativeNumber(s string) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return !math.IsInf(value, 0) && !math.IsNaN(value) && value >= 0
}

// IsYes is the consent check: case-insensitive equality to "yes".
func IsYes(s string) bool {
	return strings.EqualFold(s, "yes")
}
