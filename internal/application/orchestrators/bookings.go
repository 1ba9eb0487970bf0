package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/court"
)

// BookingStoreForOrchestrator defines the booking store interface needed by booking mutations.
type BookingStoreForOrchestrator interface {
	GetByID(ctx context.Context, workspaceID, id string) (booking.Booking, error)
	Save(ctx context.Context, workspaceID string, b booking.Booking) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// BookingDeps holds dependencies for booking mutations.
type BookingDeps struct {
	BookingStore BookingStoreForOrchestrator
	GenerateID   func() string
}

// BookingRef identifies one booking inside a workspace.
type BookingRef struct {
	WorkspaceID string
	BookingID   string
}

// isNotFound reports whether err came from a lookup that matched no row.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ExecuteApproveBooking confirms a pending booking in place.
// An unknown id is a silent no-op.
// PRE: ref.WorkspaceID is non-empty
// POST: Booking status is Confirmado; list length and order are unchanged
func ExecuteApproveBooking(ctx context.Context, ref BookingRef, deps BookingDeps) error {
	b, err := deps.BookingStore.GetByID(ctx, ref.WorkspaceID, ref.BookingID)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	b.Approve()
	if err := deps.BookingStore.Save(ctx, ref.WorkspaceID, b); err != nil {
		return err
	}
	slog.Info("booking_event", "event", "booking_approved", "workspace_id", ref.WorkspaceID, "booking_id", b.ID)
	return nil
}

// ExecuteRejectBooking removes a booking from the admin list. No audit trail is kept.
// PRE: ref.WorkspaceID is non-empty
// POST: No booking with ref.BookingID remains
func ExecuteRejectBooking(ctx context.Context, ref BookingRef, deps BookingDeps) error {
	if err := deps.BookingStore.Delete(ctx, ref.WorkspaceID, ref.BookingID); err != nil {
		return err
	}
	slog.Info("booking_event", "event", "booking_rejected", "workspace_id", ref.WorkspaceID, "booking_id", ref.BookingID)
	return nil
}

// ExecuteCancelBooking removes one of the member's own bookings.
// PRE: ref.WorkspaceID is non-empty
// POST: No booking with ref.BookingID remains
func ExecuteCancelBooking(ctx context.Context, ref BookingRef, deps BookingDeps) error {
	if err := deps.BookingStore.Delete(ctx, ref.WorkspaceID, ref.BookingID); err != nil {
		return err
	}
	slog.Info("booking_event", "event", "booking_cancelled", "workspace_id", ref.WorkspaceID, "booking_id", ref.BookingID)
	return nil
}

// CreateBookingInput carries input for the create-booking orchestrator.
type CreateBookingInput struct {
	WorkspaceID string
	Court       string // court display name, e.g. "Pista 2"
	Time        string
}

// Create booking errors
var (
	ErrUnknownCourt = errors.New("court not found")
	ErrUnknownSlot  = errors.New("time slot is not offered by this court")
)

// ExecuteCreateBooking appends a pending booking for the chosen court and slot.
// The date is always the fixed sample date; overlapping bookings are allowed.
// PRE: input.WorkspaceID is non-empty
// POST: A new Pendiente booking with a fresh id is appended
func ExecuteCreateBooking(ctx context.Context, input CreateBookingInput, deps BookingDeps) (booking.Booking, error) {
	c, ok := court.FindByName(court.Defaults(), input.Court)
	if !ok {
		return booking.Booking{}, ErrUnknownCourt
	}
	if !c.Offers(input.Time) {
		return booking.Booking{}, ErrUnknownSlot
	}

	b := booking.Booking{
		ID:      deps.GenerateID(),
		CourtID: c.Name,
		Date:    booking.SampleDate,
		Time:    input.Time,
		Status:  booking.StatusPending,
	}
	if err := b.Validate(); err != nil {
		return booking.Booking{}, err
	}
	if err := deps.BookingStore.Save(ctx, input.WorkspaceID, b); err != nil {
		return booking.Booking{}, err
	}
	slog.Info("booking_event", "event", "booking_created", "workspace_id", input.WorkspaceID, "booking_id", b.ID, "court", b.CourtID, "time", b.Time)
	return b, nil
}
