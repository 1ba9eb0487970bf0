package email

import (
	"context"
	"time"
)

// SendRequest is one outbound message.
type SendRequest struct {
	To      []string
	From    string // e.g. "Padel Cygnus <noreply@padelcygnus.com>"; empty uses the sender default
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult is the provider's acknowledgement.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers club email (contact-form forwarding).
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
