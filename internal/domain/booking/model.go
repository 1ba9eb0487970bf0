package booking

import "errors"

// Booking statuses. The values are the labels shown to club staff.
const (
	StatusPending   = "Pendiente"
	StatusConfirmed = "Confirmado"
)

// SampleDate is the fixed date stamped on bookings created from the member dashboard.
const SampleDate = "17/03/2024"

// Domain errors
var (
	ErrEmptyCourt    = errors.New("booking court cannot be empty")
	ErrEmptyTime     = errors.New("booking time cannot be empty")
	ErrInvalidStatus = errors.New("booking status must be one of: Pendiente, Confirmado")
)

// ValidStatuses contains all valid booking statuses.
var ValidStatuses = []string{StatusPending, StatusConfirmed}

// Booking is a court reservation.
// MemberID is only populated in the admin view.
type Booking struct {
	ID       string `json:"id"`
	CourtID  string `json:"courtId"`
	MemberID string `json:"memberId,omitempty"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// Validate checks if the Booking has valid data.
// PRE: Booking struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if b.CourtID == "" {
		return ErrEmptyCourt
	}
	if b.Time == "" {
		return ErrEmptyTime
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return ErrInvalidStatus
	}
	return nil
}

// IsPending reports whether the booking still awaits an admin decision.
func (b Booking) IsPending() bool {
	return b.Status == StatusPending
}

// Approve confirms the booking in place. Approving a confirmed booking is a no-op.
// PRE: none
// POST: Status is Confirmed
func (b *Booking) Approve() {
	b.Status = StatusConfirmed
}
