package form_test

import (
	"strings"
	"testing"

	"go-leadform-backend/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestFirstFailureReturnsEarliestInvalidRule(t *testing.T) {
	rules := []form.Rule{
		{Field: "name", Message: "Name is required", Valid: false},
		{Field: "email", Message: "Valid email is required", Valid: false},
	}

	failure := form.FirstFailure(rules)
	assert.NotNil(t, failure)
	assert.Equal(t, "name", failure.Field)
	assert.Equal(t, "Name is required", failure.Message)

	rules[0].Valid = true
	failure = form.FirstFailure(rules)
	assert.Equal(t, "email", failure.Field)

	rules[1].Valid = true
	assert.Nil(t, form.FirstFailure(rules))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, form.ValidEmail("a@b.co"))
	assert.True(t, form.ValidEmail("jane.doe+tag@mail.example.org"))

	assert.False(t, form.ValidEmail("a@b"))
	assert.False(t, form.ValidEmail("a b@c.com"))
	assert.False(t, form.ValidEmail(""))
	assert.False(t, form.ValidEmail("a@@b.co"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, form.ValidPhone("(555) 123-4567"))
	assert.True(t, form.ValidPhone("+1 555.123.4567"))
	assert.True(t, form.ValidPhone("5551234"))

	assert.False(t, form.ValidPhone("555-12"))
	assert.False(t, form.ValidPhone(""))
	assert.False(t, form.ValidPhone("call me maybe"))
}

func TestNonNegativeNumber(t *testing.T) {
	assert.True(t, form.NonNegativeNumber("0"))
	assert.True(t, form.NonNegativeNumber("3"))
	assert.True(t, form.NonNegativeNumber(" 2.5 "))

	assert.False(t, form.NonNegativeNumber("-1"))
	assert.False(t, form.NonNegativeNumber("three"))
	assert.False(t, form.NonNegativeNumber(""))
}

func TestIsYes(t *testing.T) {
	assert.True(t, form.IsYes("yes"))
	assert.True(t, form.IsYes("Yes"))
	assert.True(t, form.IsYes("YES"))

	assert.False(t, form.IsYes("sure"))
	assert.False(t, form.IsYes(""))
	assert.False(t, form.IsYes("yes please"))
}

func TestLengthPredicates(t *testing.T) {
	assert.True(t, form.MinLen("Jo", 2))
	assert.False(t, form.MinLen("J", 2))
	assert.False(t, form.MinLen("", 2))

	assert.True(t, form.MaxLen("", 5000))
	assert.True(t, form.MaxLen(strings.Repeat("a", 5000), 5000))
	assert.False(t, form.MaxLen(strings.Repeat("a", 5001), 5000))

	assert.True(t, form.LenBetween("a decade of courses", 10, 5000))
	assert.False(t, form.LenBetween("short", 10, 5000))
	assert.False(t, form.LenBetween(strings.Repeat("a", 5001), 10, 5000))

	// Lengths count runes: a 5000-character accented message is within the
	// limit even though it is 10000 bytes.
	assert.True(t, form.MaxLen(strings.Repeat("é", 5000), 5000))
	assert.False(t, form.MaxLen(strings.Repeat("é", 5001), 5000))
	assert.True(t, form.MinLen("Ré", 2))
	assert.True(t, form.LenBetween(strings.Repeat("日本語のメッセージ", 10), 10, 5000))
}
