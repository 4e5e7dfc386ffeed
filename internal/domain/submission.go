package domain

import "context"

// Payload is one decoded request body. The transport enforces no shape; the
// same logical field may arrive under several keys, as a scalar, a list, or a
// comma-separated string. Normalization reconciles it into one of the
// submission structs below.
type Payload map[string]any

// ContactSubmission is the normalized contact form schema.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
	// Optional, composed only when present
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
}

// EstimateSubmission is the normalized pricing questionnaire schema.
type EstimateSubmission struct {
	Name     string
	Email    string
	Phone    string
	Budget   string
	Timeline string
	Details  string
	Services []string
	// Optional questionnaire attributes
	Company        string
	Tier           string
	ContactMethod  string
	DesignScope    string
	StyleDirection string
	SiteType       string
	ProdType       string
	MicroType      string
	Compliance     []string
	Access         []string
	Source         string
}

// ApplicationSubmission is the normalized job application schema. Every field
// is required; WorkType must carry at least one value and Consent must be the
// literal "yes" (case-insensitive).
type ApplicationSubmission struct {
	Name              string
	Email             string
	Phone             string
	Location          string
	RoleInterest      string
	ExperienceLevel   string
	YearsExperience   string
	Schooling         string
	SelfTaught        string
	SystemsExperience string
	PortfolioLinks    string
	BiggestProject    string
	Availability      string
	EmploymentType    string
	WorkType          []string
	Consent           string
}

// ContactUsecase defines the contact form submission pipeline
type ContactUsecase interface {
	SubmitContact(ctx context.Context, payload Payload) error
}

// EstimateUsecase defines the estimate request submission pipeline
type EstimateUsecase interface {
	SubmitEstimate(ctx context.Context, payload Payload) error
}

// ApplicationUsecase defines the job application submission pipeline
type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, payload Payload) error
}
