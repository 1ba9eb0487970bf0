package projections

import (
	"context"
	"fmt"

	bookingStore "padelcygnus/internal/adapters/storage/booking"
	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/court"
	"padelcygnus/internal/domain/notification"
	"padelcygnus/internal/domain/profile"
	"padelcygnus/internal/domain/tournament"
)

// Static member cards.
const (
	MonthlyMatches   = "12 Partidos"
	MembershipStatus = "Activa"
	MembershipUntil  = "Hasta 31/12/2024"
)

// MemberDashboardQuery carries query parameters.
type MemberDashboardQuery struct {
	WorkspaceID string
}

// MemberDashboardDeps holds dependencies for QueryMemberDashboard.
type MemberDashboardDeps struct {
	BookingStore      BookingStore
	TournamentStore   TournamentStore
	NotificationStore NotificationStore
}

// MemberDashboardResult is everything the member dashboard renders.
type MemberDashboardResult struct {
	Bookings         []booking.Booking           `json:"bookings"`
	NextBooking      *booking.Booking            `json:"nextBooking,omitempty"`
	Courts           []court.Court               `json:"courts"`
	Tournaments      []tournament.Tournament     `json:"tournaments"`
	Notifications    []notification.Notification `json:"notifications"`
	Profile          profile.Profile             `json:"profile"`
	MonthlyMatches   string                      `json:"monthlyMatches"`
	MembershipStatus string                      `json:"membershipStatus"`
	MembershipUntil  string                      `json:"membershipUntil"`
}

// QueryMemberDashboard reads a member workspace.
// PRE: query.WorkspaceID names a seeded workspace
// POST: NextBooking is the first booking in list order, nil when there are none
func QueryMemberDashboard(ctx context.Context, query MemberDashboardQuery, deps MemberDashboardDeps) (MemberDashboardResult, error) {
	bookings, err := deps.BookingStore.List(ctx, query.WorkspaceID, bookingStore.ListFilter{})
	if err != nil {
		return MemberDashboardResult{}, fmt.Errorf("list bookings: %w", err)
	}
	tournaments, err := deps.TournamentStore.List(ctx, query.WorkspaceID)
	if err != nil {
		return MemberDashboardResult{}, fmt.Errorf("list tournaments: %w", err)
	}
	notifications, err := deps.NotificationStore.List(ctx, query.WorkspaceID)
	if err != nil {
		return MemberDashboardResult{}, fmt.Errorf("list notifications: %w", err)
	}

	result := MemberDashboardResult{
		Bookings:         bookings,
		Courts:           court.Defaults(),
		Tournaments:      tournaments,
		Notifications:    notifications,
		Profile:          profile.Default(),
		MonthlyMatches:   MonthlyMatches,
		MembershipStatus: MembershipStatus,
		MembershipUntil:  MembershipUntil,
	}
	if len(bookings) > 0 {
		next := bookings[0]
		result.NextBooking = &next
	}
	return result, nil
}
