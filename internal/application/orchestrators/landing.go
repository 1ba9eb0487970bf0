package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"padelcygnus/internal/adapters/email"
	"padelcygnus/internal/domain/contact"
	"padelcygnus/internal/domain/plan"
	"padelcygnus/internal/domain/profile"
	"padelcygnus/internal/domain/settings"
)

// ExecuteConfirmPlan records a visitor's plan choice. No subscription is created.
// PRE: none
// POST: Returns the plan or plan.ErrUnknownPlan
func ExecuteConfirmPlan(_ context.Context, slug string) (plan.Plan, error) {
	p, err := plan.Find(slug)
	if err != nil {
		return plan.Plan{}, err
	}
	slog.Info("landing_event", "event", "membership_plan_confirmed", "plan", p.Slug, "price", p.Price)
	return p, nil
}

// ContactDeps holds dependencies for SendContactInquiry.
type ContactDeps struct {
	Sender email.Sender
	From   string
	Inbox  string // club address that receives inquiries
}

// ExecuteSendContactInquiry forwards a contact-form message to the club inbox.
// The visitor's address becomes the reply-to.
// PRE: deps.Sender is non-nil
// POST: One email sent to deps.Inbox, or a validation / provider error
func ExecuteSendContactInquiry(ctx context.Context, inquiry contact.Inquiry, deps ContactDeps) (email.SendResult, error) {
	if err := inquiry.Validate(); err != nil {
		return email.SendResult{}, err
	}

	body := fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt; escribió:</p><p>%s</p>",
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Message),
	)
	res, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.Inbox},
		From:    deps.From,
		Subject: "Nuevo mensaje de contacto: " + inquiry.Name,
		HTML:    body,
		ReplyTo: inquiry.Email,
	})
	if err != nil {
		return email.SendResult{}, fmt.Errorf("send contact inquiry: %w", err)
	}
	slog.Info("landing_event", "event", "contact_inquiry_sent", "message_id", res.MessageID)
	return res, nil
}

// ExecuteSaveProfile accepts a profile edit and discards it.
// PRE: none
// POST: Nothing is persisted; the submitted values are logged
func ExecuteSaveProfile(_ context.Context, workspaceID string, p profile.Profile) {
	slog.Info("profile_event", "event", "profile_submitted", "workspace_id", workspaceID, "name", p.Name)
}

// ExecuteSaveSettings accepts a settings edit and discards it.
// PRE: none
// POST: Nothing is persisted; the submitted values are logged
func ExecuteSaveSettings(_ context.Context, workspaceID string, s settings.Settings) {
	slog.Info("settings_event", "event", "settings_submitted", "workspace_id", workspaceID, "club_name", s.ClubName)
}
