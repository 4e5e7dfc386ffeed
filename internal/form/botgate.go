package form

import (
	"strconv"
	"strings"

	"go-leadform-backend/internal/domain"
)

// Honeypot field names. Real users never see these inputs; any submitted
// value marks the payload as automated.
var honeypotAliases = []string{"hp_field", "pr_hp", "honeypot"}

// Elapsed-time keys the client may report alongside the form fields.
var elapsedAliases = []string{"elapsedSeconds", "elapsed_seconds", "fillSeconds"}

// LooksAutomated applies the bot heuristics: a filled honeypot field, or a
// reported time-on-page below minFillSeconds. Callers must not reveal the
// detection — they respond with a fake success and silently skip the relay,
// so the bot learns nothing. This is a deterrent, not a security boundary.
func LooksAutomated(payload domain.Payload, minFillSeconds float64) bool {
	if First(payload, honeypotAliases...) != "" {
		return true
	}
	if minFillSeconds <= 0 {
		return false
	}
	raw := First(payload, elapsedAliases...)
	if raw == "" {
		return false
	}
	elapsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	return elapsed < minFillSeconds
}
