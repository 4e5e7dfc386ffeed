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

type contactUsecase struct {
	cfg    *config.Config
	sender mailer.Sender
}

// NewContactUsecase creates the contact form submission pipeline
func NewContactUsecase(cfg *config.Config, sender mailer.Sender) domain.ContactUsecase {
	return &contactUsecase{cfg: cfg, sender: sender}
}

// SubmitContact normalizes, validates, composes and relays one contact form
// submission. Automated-looking payloads are silently dropped: the caller
// reports success so the detection is never revealed.
func (uc *contactUsecase) SubmitContact(ctx context.Context, payload domain.Payload) error {
	if form.LooksAutomated(payload, uc.cfg.MinFillSeconds) {
		logger.Log.Debug("contact submission gated as automated")
		return nil
	}

	sub := normalizeContact(payload)

	rules := []form.Rule{
		{Field: "name", Message: "Name is required", Valid: form.MinLen(sub.Name, 2)},
		{Field: "email", Message: "Valid email is required", Valid: form.ValidEmail(sub.Email)},
		{Field: "message", Message: "Message is required", Valid: sub.Message != ""},
		{Field: "message", Message: "Message must be 5000 characters or less", Valid: form.MaxLen(sub.Message, 5000)},
	}
	if failure := form.FirstFailure(rules); failure != nil {
		return apperror.BadRequest(failure.Message)
	}

	to := uc.cfg.ToContact
	if to == "" {
		return apperror.SendFailed(fmt.Errorf("contact recipient not configured"))
	}
	from, err := mailer.FormatFrom(uc.cfg.FromName, uc.cfg.SMTPUser)
	if err != nil {
		return apperror.SendFailed(err)
	}

	subject, text := composeContact(sub)
	if err := uc.sender.Send(mailer.Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: subject,
		Text:    text,
	}); err != nil {
		return apperror.SendFailed(err)
	}

	// Best-effort confirmation to the submitter. The client already has its
	// success by the time this runs; a failure here is logged and ignored.
	if uc.cfg.AutoReplyEnabled {
		brand := displayName(uc.cfg)
		if err := uc.sender.Send(mailer.Message{
			From:    from,
			To:      sub.Email,
			Subject: "We received your message",
			Text:    fmt.Sprintf("Hi %s,\n\nThanks for contacting %s. We received your message and will reply soon.\n\n- %s", sub.Name, brand, brand),
		}); err != nil {
			logger.Log.Warn("contact auto-reply failed", "error", err)
		}
	}

	return nil
}

func normalizeContact(payload domain.Payload) domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:        form.First(payload, "name", "fullName", "full_name"),
		Email:       form.First(payload, "email", "mail", "reply_to"),
		Phone:       form.First(payload, "phone", "phoneNumber", "telephone"),
		Message:     form.First(payload, "message", "details", "notes", "description"),
		Company:     form.First(payload, "company", "organization"),
		ProjectType: form.First(payload, "projectType", "project_type", "service"),
		Budget:      form.First(payload, "budget", "budget_range"),
		Timeline:    form.First(payload, "timeline"),
	}
}

// composeContact renders the outbound message. Line order and the
// "Not provided" fallback are contract.
func composeContact(sub domain.ContactSubmission) (subject, text string) {
	subject = fmt.Sprintf("New Contact: %s", sub.Name)
	text = strings.Join([]string{
		fmt.Sprintf("Name: %s", sub.Name),
		fmt.Sprintf("Email: %s", sub.Email),
		fmt.Sprintf("Phone: %s", form.OrText(sub.Phone)),
		"Message:",
		sub.Message,
		"",
		fmt.Sprintf("Company: %s", form.OrText(sub.Company)),
		fmt.Sprintf("Project Type: %s", form.OrText(sub.ProjectType)),
		fmt.Sprintf("Budget: %s", form.OrText(sub.Budget)),
		fmt.Sprintf("Timeline: %s", form.OrText(sub.Timeline)),
	}, "\n")
	return subject, text
}
