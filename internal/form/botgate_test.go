package form_test

import (
	"testing"

	"go-leadform-backend/internal/domain"
	"go-leadform-backend/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestLooksAutomated(t *testing.T) {
	t.Run("Filled honeypot flags the payload", func(t *testing.T) {
		assert.True(t, form.LooksAutomated(domain.Payload{"hp_field": "buy now"}, 3))
		assert.True(t, form.LooksAutomated(domain.Payload{"pr_hp": "x"}, 3))
	})

	t.Run("Blank honeypot passes", func(t *testing.T) {
		assert.False(t, form.LooksAutomated(domain.Payload{"hp_field": "  "}, 3))
	})

	t.Run("Too-fast fill flags the payload", func(t *testing.T) {
		assert.True(t, form.LooksAutomated(domain.Payload{"elapsedSeconds": 1.2}, 3))
	})

	t.Run("Slow enough fill passes", func(t *testing.T) {
		assert.False(t, form.LooksAutomated(domain.Payload{"elapsedSeconds": "10"}, 3))
	})

	t.Run("Missing or garbage elapsed time passes", func(t *testing.T) {
		assert.False(t, form.LooksAutomated(domain.Payload{}, 3))
		assert.False(t, form.LooksAutomated(domain.Payload{"elapsedSeconds": "soon"}, 3))
	})

	t.Run("Disabled time gate ignores elapsed", func(t *testing.T) {
		assert.False(t, form.LooksAutomated(domain.Payload{"elapsedSeconds": "0"}, 0))
	})
}
