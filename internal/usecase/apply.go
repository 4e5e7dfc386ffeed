package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-leadform-backend/config"
	"go-leadform-backend/internal/domain"
	"go-leadform-backend/internal/form"
	"go-leadform-backend/pkg/apperror"
	"go-leadform-backend/pkg/logger"
	"go-leadform-backend/pkg/mailer"
)

type applicationUsecase struct {
	cfg    *config.Config
	sender mailer.Sender
}

// NewApplicationUsecase creates the job application submission pipeline
func NewApplicationUsecase(cfg *config.Config, sender mailer.Sender) domain.ApplicationUsecase {
	return &applicationUsecase{cfg: cfg, sender: sender}
}

func (uc *applicationUsecase) SubmitApplication(ctx context.Context, payload domain.Payload) error {
	if form.LooksAutomated(payload, uc.cfg.MinFillSeconds) {
		logger.Log.Debug("application submission gated as automated")
		return nil
	}

	sub := normalizeApplication(payload)

	rules := []form.Rule{
		{Field: "name", Message: "Name is required", Valid: form.MinLen(sub.Name, 2)},
		{Field: "email", Message: "Valid email is required", Valid: form.ValidEmail(sub.Email)},
		{Field: "phone", Message: "Valid phone is required", Valid: form.ValidPhone(sub.Phone)},
		{Field: "location", Message: "Location is required", Valid: sub.Location != ""},
		{Field: "roleInterest", Message: "Role interest is required", Valid: sub.RoleInterest != ""},
		{Field: "experienceLevel", Message: "Experience level is required", Valid: sub.ExperienceLevel != ""},
		{Field: "yearsExperience", Message: "Years of experience is required", Valid: form.NonNegativeNumber(sub.YearsExperience)},
		{Field: "schooling", Message: "Schooling is required", Valid: sub.Schooling != ""},
		{Field: "selfTaught", Message: "Self-taught/courses details are required", Valid: form.LenBetween(sub.SelfTaught, 10, 5000)},
		{Field: "systemsExperience", Message: "Web systems experience is required", Valid: form.LenBetween(sub.SystemsExperience, 20, 5000)},
		{Field: "portfolioLinks", Message: "Portfolio links are required", Valid: form.LenBetween(sub.PortfolioLinks, 6, 5000)},
		{Field: "biggestProject", Message: "Biggest shipped project details are required", Valid: form.LenBetween(sub.BiggestProject, 20, 5000)},
		{Field: "availability", Message: "Availability is required", Valid: sub.Availability != ""},
		{Field: "employmentType", Message: "Employment type is required", Valid: sub.EmploymentType != ""},
		{Field: "workType", Message: "Work type is required", Valid: len(sub.WorkType) > 0},
		{Field: "consent", Message: "Consent is required", Valid: form.IsYes(sub.Consent)},
	}
	if failure := form.FirstFailure(rules); failure != nil {
		return apperror.BadRequest(failure.Message)
	}

	to := uc.cfg.ToApply
	if to == "" {
		return apperror.SendFailed(fmt.Errorf("application recipient not configured"))
	}
	from, err := mailer.FormatFrom(uc.cfg.FromName, uc.cfg.SMTPUser)
	if err != nil {
		return apperror.SendFailed(err)
	}

	subject, text := composeApplication(sub)
	if err := uc.sender.Send(mailer.Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: subject,
		Text:    text,
	}); err != nil {
		return apperror.SendFailed(err)
	}

	if uc.cfg.AutoReplyEnabled {
		brand := displayName(uc.cfg)
		if err := uc.sender.Send(mailer.Message{
			From:    from,
			To:      sub.Email,
			Subject: "We received your application",
			Text:    fmt.Sprintf("Hi %s,\n\nThanks for applying to %s. We received your application and will review it shortly.\n\n- %s", sub.Name, brand, brand),
		}); err != nil {
			logger.Log.Warn("application auto-reply failed", "error", err)
		}
	}

	return nil
}

func normalizeApplication(payload domain.Payload) domain.ApplicationSubmission {
	return domain.ApplicationSubmission{
		Name:              form.First(payload, "name", "fullName", "full_name"),
		Email:             form.First(payload, "email", "mail", "reply_to"),
		Phone:             form.First(payload, "phone", "phoneNumber", "telephone"),
		Location:          form.First(payload, "location", "cityState", "city_state"),
		RoleInterest:      form.First(payload, "roleInterest", "role", "position"),
		ExperienceLevel:   form.First(payload, "experienceLevel", "level"),
		YearsExperience:   form.First(payload, "yearsExperience", "years", "experienceYears"),
		Schooling:         form.First(payload, "schooling", "education"),
		SelfTaught:        form.First(payload, "selfTaught", "courses", "self_taught"),
		SystemsExperience: form.First(payload, "systemsExperience", "webSystemsExperience", "systems"),
		PortfolioLinks:    form.First(payload, "portfolioLinks", "portfolio", "links"),
		BiggestProject:    form.First(payload, "biggestProject", "project", "projectShipped"),
		Availability:      form.First(payload, "availability", "startDate", "start"),
		EmploymentType:    form.First(payload, "employmentType", "employment", "schedule"),
		WorkType:          form.List(payload, "workType", "work_type", "workMode"),
		Consent:           form.First(payload, "consent", "confirmed", "confirmation"),
	}
}

// composeApplication renders the outbound message: short fields first, then
// each narrative as its own labeled block.
func composeApplication(sub domain.ApplicationSubmission) (subject, text string) {
	subject = fmt.Sprintf("New Job Application: %s — %s", sub.Name, sub.RoleInterest)
	text = strings.Join([]string{
		fmt.Sprintf("Name: %s", sub.Name),
		fmt.Sprintf("Email: %s", sub.Email),
		fmt.Sprintf("Phone: %s", sub.Phone),
		fmt.Sprintf("Location: %s", sub.Location),
		fmt.Sprintf("Role Interest: %s", sub.RoleInterest),
		fmt.Sprintf("Experience Level: %s", sub.ExperienceLevel),
		fmt.Sprintf("Years of Experience: %s", sub.YearsExperience),
		fmt.Sprintf("Availability: %s", sub.Availability),
		fmt.Sprintf("Employment Type: %s", sub.EmploymentType),
		fmt.Sprintf("Work Type: %s", form.ListText(sub.WorkType)),
		"Consent Confirmed: Yes",
		"",
		"Schooling:",
		sub.Schooling,
		"",
		"Self-taught / courses:",
		sub.SelfTaught,
		"",
		"Web systems experience:",
		sub.SystemsExperience,
		"",
		"Portfolio links:",
		sub.PortfolioLinks,
		"",
		"Biggest project shipped:",
		sub.BiggestProject,
	}, "\n")
	return subject, text
}
