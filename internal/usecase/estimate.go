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

type estimateUsecase struct {
	cfg    *config.Config
	sender mailer.Sender
}

// NewEstimateUsecase creates the estimate request submission pipeline
func NewEstimateUsecase(cfg *config.Config, sender mailer.Sender) domain.EstimateUsecase {
	return &estimateUsecase{cfg: cfg, sender: sender}
}

func (uc *estimateUsecase) SubmitEstimate(ctx context.Context, payload domain.Payload) error {
	if form.LooksAutomated(payload, uc.cfg.MinFillSeconds) {
		logger.Log.Debug("estimate submission gated as automated")
		return nil
	}

	sub := normalizeEstimate(payload)

	// The length cap on the narrative is checked ahead of the required
	// fields; its message wins over a missing name.
	rules := []form.Rule{
		{Field: "details", Message: "Message must be 5000 characters or less", Valid: form.MaxLen(sub.Details, 5000)},
		{Field: "name", Message: "Name is required", Valid: form.MinLen(sub.Name, 2)},
		{Field: "email", Message: "Valid email is required", Valid: form.ValidEmail(sub.Email)},
	}
	if failure := form.FirstFailure(rules); failure != nil {
		return apperror.BadRequest(failure.Message)
	}

	to := uc.cfg.ToEstimates
	if to == "" {
		return apperror.SendFailed(fmt.Errorf("estimate recipient not configured"))
	}
	from, err := mailer.FormatFrom(uc.cfg.FromName, uc.cfg.SMTPUser)
	if err != nil {
		return apperror.SendFailed(err)
	}

	subject, text := composeEstimate(sub)
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
			Subject: "We received your estimate request",
			Text:    fmt.Sprintf("Hi %s,\n\nThanks for requesting an estimate from %s. We received your request and will follow up soon.\n\n- %s", sub.Name, brand, brand),
		}); err != nil {
			logger.Log.Warn("estimate auto-reply failed", "error", err)
		}
	}

	return nil
}

func normalizeEstimate(payload domain.Payload) domain.EstimateSubmission {
	return domain.EstimateSubmission{
		Name:           form.First(payload, "name", "fullName", "full_name"),
		Email:          form.First(payload, "email", "mail", "reply_to"),
		Phone:          form.First(payload, "phone", "phoneNumber", "telephone"),
		Budget:         form.First(payload, "budget", "budget_range", "price_range"),
		Timeline:       form.First(payload, "timeline", "timeframe"),
		Details:        form.First(payload, "details", "message", "notes", "description", "microDesc"),
		Services:       form.List(payload, "services", "service", "features", "projectType"),
		Company:        form.First(payload, "company", "organization"),
		Tier:           form.First(payload, "tier"),
		ContactMethod:  form.First(payload, "contactMethod"),
		DesignScope:    form.First(payload, "designScope"),
		StyleDirection: form.First(payload, "styleDirection"),
		SiteType:       form.First(payload, "siteType"),
		ProdType:       form.First(payload, "prodType"),
		MicroType:      form.First(payload, "microType"),
		Compliance:     form.List(payload, "compliance"),
		Access:         form.List(payload, "access"),
		Source:         form.First(payload, "source"),
	}
}

// composeEstimate renders the outbound message. The subject carries the
// budget range when one was given.
func composeEstimate(sub domain.EstimateSubmission) (subject, text string) {
	subject = fmt.Sprintf("New Estimate: %s", sub.Name)
	if sub.Budget != "" {
		subject = fmt.Sprintf("New Estimate: %s — %s", sub.Name, sub.Budget)
	}
	text = strings.Join([]string{
		fmt.Sprintf("Name: %s", sub.Name),
		fmt.Sprintf("Email: %s", sub.Email),
		fmt.Sprintf("Phone: %s", form.OrText(sub.Phone)),
		fmt.Sprintf("Budget: %s", form.OrText(sub.Budget)),
		fmt.Sprintf("Timeline: %s", form.OrText(sub.Timeline)),
		fmt.Sprintf("Services: %s", form.ListText(sub.Services)),
		fmt.Sprintf("Details: %s", form.OrText(sub.Details)),
		"",
		fmt.Sprintf("Company: %s", form.OrText(sub.Company)),
		fmt.Sprintf("Tier: %s", form.OrText(sub.Tier)),
		fmt.Sprintf("Contact Method: %s", form.OrText(sub.ContactMethod)),
		fmt.Sprintf("Design Scope: %s", form.OrText(sub.DesignScope)),
		fmt.Sprintf("Style Direction: %s", form.OrText(sub.StyleDirection)),
		fmt.Sprintf("Website Type: %s", form.OrText(sub.SiteType)),
		fmt.Sprintf("Product Type: %s", form.OrText(sub.ProdType)),
		fmt.Sprintf("Micro Service: %s", form.OrText(sub.MicroType)),
		fmt.Sprintf("Compliance: %s", form.ListText(sub.Compliance)),
		fmt.Sprintf("Access: %s", form.ListText(sub.Access)),
		fmt.Sprintf("Source: %s", form.OrText(sub.Source)),
	}, "\n")
	return subject, text
}
