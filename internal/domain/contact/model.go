package contact

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxMessageLength = 5000
)

// Domain errors
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrInvalidEmail   = errors.New("email must contain '@'")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 100 characters")
	ErrMessageTooLong = errors.New("message cannot exceed 5000 characters")
)

// Inquiry is a message sent through the landing page contact form.
type Inquiry struct {
	Name    string
	Email   string
	Message string
}

// Validate checks if the Inquiry has valid data.
// PRE: Inquiry struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if len(i.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !strings.Contains(i.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(i.Message) == "" {
		return ErrEmptyMessage
	}
	if len(i.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
