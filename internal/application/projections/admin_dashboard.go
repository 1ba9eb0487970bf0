package projections

import (
	"context"
	"fmt"

	bookingStore "padelcygnus/internal/adapters/storage/booking"
	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/member"
	"padelcygnus/internal/domain/notification"
	"padelcygnus/internal/domain/settings"
	"padelcygnus/internal/domain/tournament"
)

// Admin dashboard tabs.
const (
	TabOverview      = "overview"
	TabBookings      = "bookings"
	TabMembers       = "members"
	TabTournaments   = "tournaments"
	TabNotifications = "notifications"
	TabSettings      = "settings"
)

// AdminTabs lists the tabs in display order.
var AdminTabs = []string{TabOverview, TabBookings, TabMembers, TabTournaments, TabNotifications, TabSettings}

// ParseAdminTab returns tab when known, otherwise TabOverview.
func ParseAdminTab(tab string) string {
	for _, t := range AdminTabs {
		if t == tab {
			return t
		}
	}
	return TabOverview
}

// StatCard is one headline figure on the overview tab.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

// RecentBooking is a sample row in the overview's recent-bookings card.
type RecentBooking struct {
	Member string `json:"member"`
	Court  string `json:"court"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// UpcomingTournament is a sample row in the overview's upcoming-tournaments card.
type UpcomingTournament struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
}

// AdminOverview holds the static marketing figures of the overview tab.
// None of it is derived from the workspace collections.
type AdminOverview struct {
	Stats               []StatCard           `json:"stats"`
	RecentBookings      []RecentBooking      `json:"recentBookings"`
	UpcomingTournaments []UpcomingTournament `json:"upcomingTournaments"`
}

// StaticAdminOverview returns the overview figures shown to every admin.
func StaticAdminOverview() AdminOverview {
	return AdminOverview{
		Stats: []StatCard{
			{Title: "Estadísticas Generales", Value: "1,234", Note: "+12% desde el mes pasado"},
			{Title: "Reservas Hoy", Value: "89%", Note: "Uso de pistas hoy"},
			{Title: "Ingresos Mensuales", Value: "$12,450", Note: "+8% desde el mes pasado"},
			{Title: "Pistas Activas", Value: "6/8", Note: "Pistas en uso actualmente"},
		},
		RecentBookings: []RecentBooking{
			{Member: "John Doe", Court: "Pista 1", Date: "15/03/2024", Time: "10:00"},
			{Member: "Jane Smith", Court: "Pista 2", Date: "15/03/2024", Time: "11:30"},
			{Member: "Mike Johnson", Court: "Pista 3", Date: "15/03/2024", Time: "14:00"},
		},
		UpcomingTournaments: []UpcomingTournament{
			{Name: "Campeonato de Primavera", Date: "20/03/2024", Participants: 16},
			{Name: "Torneo Juvenil", Date: "25/03/2024", Participants: 8},
			{Name: "Liga de Dobles", Date: "30/03/2024", Participants: 24},
		},
	}
}

// AdminDashboardQuery carries query parameters.
type AdminDashboardQuery struct {
	WorkspaceID   string
	Tab           string
	BookingStatus string // optional bookings-tab filter; unknown values are ignored
}

// AdminDashboardDeps holds dependencies for QueryAdminDashboard.
type AdminDashboardDeps struct {
	BookingStore      BookingStore
	MemberStore       MemberStore
	TournamentStore   TournamentStore
	NotificationStore NotificationStore
}

// AdminDashboardResult is everything the admin dashboard renders.
type AdminDashboardResult struct {
	Tab           string                      `json:"tab"`
	Overview      AdminOverview               `json:"overview"`
	Bookings      []booking.Booking           `json:"bookings"`
	BookingStatus string                      `json:"bookingStatus,omitempty"`
	PendingCount  int                         `json:"pendingCount"`
	Members       []member.Member             `json:"members"`
	Tournaments   []tournament.Tournament     `json:"tournaments"`
	Notifications []notification.Notification `json:"notifications"`
	Settings      settings.Settings           `json:"settings"`
}

// QueryAdminDashboard reads every collection of an admin workspace.
// PRE: query.WorkspaceID names a seeded workspace
// POST: Collections are returned in insertion order; Tab is normalised;
// PendingCount ignores the status filter
func QueryAdminDashboard(ctx context.Context, query AdminDashboardQuery, deps AdminDashboardDeps) (AdminDashboardResult, error) {
	bookings, err := deps.BookingStore.List(ctx, query.WorkspaceID, bookingStore.ListFilter{})
	if err != nil {
		return AdminDashboardResult{}, fmt.Errorf("list bookings: %w", err)
	}
	members, err := deps.MemberStore.List(ctx, query.WorkspaceID)
	if err != nil {
		return AdminDashboardResult{}, fmt.Errorf("list members: %w", err)
	}
	tournaments, err := deps.TournamentStore.List(ctx, query.WorkspaceID)
	if err != nil {
		return AdminDashboardResult{}, fmt.Errorf("list tournaments: %w", err)
	}
	notifications, err := deps.NotificationStore.List(ctx, query.WorkspaceID)
	if err != nil {
		return AdminDashboardResult{}, fmt.Errorf("list notifications: %w", err)
	}

	pending := 0
	for _, b := range bookings {
		if b.IsPending() {
			pending++
		}
	}

	status := ""
	if isBookingStatus(query.BookingStatus) {
		status = query.BookingStatus
		bookings, err = deps.BookingStore.List(ctx, query.WorkspaceID, bookingStore.ListFilter{Status: status})
		if err != nil {
			return AdminDashboardResult{}, fmt.Errorf("list %s bookings: %w", status, err)
		}
	}

	return AdminDashboardResult{
		Tab:           ParseAdminTab(query.Tab),
		Overview:      StaticAdminOverview(),
		Bookings:      bookings,
		BookingStatus: status,
		PendingCount:  pending,
		Members:       members,
		Tournaments:   tournaments,
		Notifications: notifications,
		Settings:      settings.Default(),
	}, nil
}

func isBookingStatus(s string) bool {
	for _, v := range booking.ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
