package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting. It is built once at startup
// and passed into constructors; nothing reads the environment mid-request.
type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration
	SMTPHost   string `validate:"omitempty,hostname|ip"`
	SMTPPort   string `validate:"omitempty,numeric"`
	SMTPSecure bool
	SMTPUser   string `validate:"omitempty,email"`
	SMTPPass   string
	FromName   string
	// Recipients per form. Missing values are not fatal here: a submission
	// against an unconfigured recipient fails with a generic 500 instead.
	ToContact   string `validate:"omitempty,email"`
	ToEstimates string `validate:"omitempty,email"`
	ToApply     string `validate:"omitempty,email"`
	// Auto-reply / anti-bot
	AutoReplyEnabled bool
	MinFillSeconds   float64
}

func LoadConfig() (*Config, error) {
	// .env is for local development; ignored in production when absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "465"),
		SMTPSecure: getEnvBool("SMTP_SECURE", false),
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		FromName:   getEnv("FROM_NAME", "Website"),

		ToContact:   strings.TrimSpace(getEnv("TO_CONTACT", "")),
		ToEstimates: strings.TrimSpace(getEnv("TO_ESTIMATES", "")),
		ToApply:     strings.TrimSpace(getEnv("TO_APPLY", "")),

		AutoReplyEnabled: getEnvBool("AUTO_REPLY_ENABLED", false),
		MinFillSeconds:   getEnvFloat("MIN_FILL_SECONDS", 3),
	}

	// Applications fall back to the contact recipient when TO_APPLY is unset.
	if cfg.ToApply == "" {
		cfg.ToApply = cfg.ToContact
	}

	// Sanity pass: malformed values are worth a startup warning, but the
	// request path treats missing mail config as a per-request send failure,
	// so nothing here is fatal.
	if err := validator.New().Struct(cfg); err != nil {
		log.Printf("WARNING: suspicious config value(s): %v", err)
	}
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("WARNING: SMTP settings incomplete. Form submissions will fail until configured.")
	}
	if cfg.ToContact == "" {
		log.Println("WARNING: TO_CONTACT is missing. Contact and application forms have no recipient.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
