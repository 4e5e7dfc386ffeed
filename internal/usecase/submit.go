package usecase

import (
	"strings"

	"go-leadform-backend/config"
)

// displayName is the brand used in auto-reply copy.
func displayName(cfg *config.Config) string {
	if name := strings.TrimSpace(cfg.FromName); name != "" {
		return name
	}
	return "Website"
}
