package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/member"
	"padelcygnus/internal/domain/notification"
	"padelcygnus/internal/domain/role"
	"padelcygnus/internal/domain/tournament"
	"padelcygnus/internal/domain/workspace"
)

// WorkspaceStoreForSeed defines the workspace store interface needed by seeding.
type WorkspaceStoreForSeed interface {
	Save(ctx context.Context, ws workspace.Workspace) error
	Delete(ctx context.Context, id string) error
}

// BookingSaver defines the booking store interface needed by seeding.
type BookingSaver interface {
	Save(ctx context.Context, workspaceID string, b booking.Booking) error
}

// MemberSaver defines the member store interface needed by seeding.
type MemberSaver interface {
	Save(ctx context.Context, workspaceID string, m member.Member) error
}

// TournamentSaver defines the tournament store interface needed by seeding.
type TournamentSaver interface {
	Save(ctx context.Context, workspaceID string, t tournament.Tournament) error
}

// NotificationSaver defines the notification store interface needed by seeding.
type NotificationSaver interface {
	Save(ctx context.Context, workspaceID string, n notification.Notification) error
}

// SeedSet is the sample data a fresh workspace starts with.
type SeedSet struct {
	Bookings      []booking.Booking           `json:"bookings"`
	Members       []member.Member             `json:"members,omitempty"`
	Tournaments   []tournament.Tournament     `json:"tournaments"`
	Notifications []notification.Notification `json:"notifications"`
}

// AdminSeed returns the sample data for the admin dashboard.
func AdminSeed() SeedSet {
	return SeedSet{
		Bookings: []booking.Booking{
			{ID: "1", CourtID: "1", MemberID: "1", Date: "15/03/2024", Time: "10:00", Status: booking.StatusPending},
			{ID: "2", CourtID: "2", MemberID: "2", Date: "15/03/2024", Time: "14:00", Status: booking.StatusPending},
			{ID: "3", CourtID: "3", MemberID: "3", Date: "16/03/2024", Time: "11:00", Status: booking.StatusConfirmed},
		},
		Members: []member.Member{
			{ID: "1", Name: "John Smith", Email: "john@example.com", MembershipType: member.MembershipPremium},
			{ID: "2", Name: "Sarah Johnson", Email: "sarah@example.com", MembershipType: member.MembershipStandard},
			{ID: "3", Name: "Mike Wilson", Email: "mike@example.com", MembershipType: member.MembershipPremium},
		},
		Tournaments: []tournament.Tournament{
			{ID: "1", Name: "Campeonato de Primavera", Date: "20/03/2024", Participants: 12},
			{ID: "2", Name: "Liga de Verano", Date: "15/06/2024", Participants: 0},
			{ID: "3", Name: "Copa de Dobles", Date: "10/04/2024", Participants: 8},
		},
		Notifications: []notification.Notification{
			{ID: "1", Title: "Nuevo Registro de Miembro", Message: "John Smith se ha registrado como miembro", Time: "hace 5 minutos", Type: notification.TypeInfo},
			{ID: "2", Title: "Mantenimiento de Pista", Message: "Mantenimiento de Pista 2 programado para mañana", Time: "hace 1 hora", Type: notification.TypeWarning},
			{ID: "3", Title: "Actualización de Torneo", Message: "Las inscripciones para el Campeonato de Primavera están abiertas", Time: "hace 2 horas", Type: notification.TypeSuccess},
		},
	}
}

// MemberSeed returns the sample data for the member dashboard.
// Member bookings name the court directly and carry no member id.
func MemberSeed() SeedSet {
	return SeedSet{
		Bookings: []booking.Booking{
			{ID: "1", CourtID: "Pista 1", Date: "15/03/2024", Time: "10:00", Status: booking.StatusConfirmed},
			{ID: "2", CourtID: "Pista 3", Date: "17/03/2024", Time: "14:00", Status: booking.StatusPending},
		},
		Tournaments: []tournament.Tournament{
			{ID: "1", Name: "Campeonato de Primavera", Date: "20/03/2024", Participants: 10},
			{ID: "2", Name: "Liga de Dobles", Date: "30/03/2024", Participants: 20},
		},
		Notifications: []notification.Notification{
			{ID: "1", Title: "Reserva Confirmada", Message: "Tu reserva de pista para mañana ha sido confirmada", Time: "hace 5 minutos", Type: notification.TypeSuccess},
			{ID: "2", Title: "Registro en Torneo", Message: "Registro exitoso en el Campeonato de Primavera", Time: "hace 1 hora", Type: notification.TypeInfo},
			{ID: "3", Title: "Actualización de Membresía", Message: "Tu membresía premium ha sido renovada", Time: "hace 2 horas", Type: notification.TypeInfo},
		},
	}
}

// SeedFor returns the seed set matching a workspace kind.
func SeedFor(kind role.Role) SeedSet {
	if kind == role.Admin {
		return AdminSeed()
	}
	return MemberSeed()
}

// SeedWorkspaceInput carries input for the seed orchestrator.
// An empty WorkspaceID asks for a freshly generated one.
type SeedWorkspaceInput struct {
	WorkspaceID string
	Kind        role.Role
}

// SeedWorkspaceDeps holds dependencies for SeedWorkspace and ResetWorkspace.
type SeedWorkspaceDeps struct {
	WorkspaceStore    WorkspaceStoreForSeed
	BookingStore      BookingSaver
	MemberStore       MemberSaver
	TournamentStore   TournamentSaver
	NotificationStore NotificationSaver
	GenerateID        func() string
	Now               func() time.Time
}

// ExecuteSeedWorkspace creates a workspace and fills it with the sample data for its kind.
// PRE: input.Kind is a valid role
// POST: Workspace exists and holds exactly SeedFor(kind)
func ExecuteSeedWorkspace(ctx context.Context, input SeedWorkspaceInput, deps SeedWorkspaceDeps) (workspace.Workspace, error) {
	ws := workspace.Workspace{
		ID:        input.WorkspaceID,
		Kind:      input.Kind,
		CreatedAt: deps.Now(),
	}
	if ws.ID == "" {
		ws.ID = deps.GenerateID()
	}
	if err := ws.Validate(); err != nil {
		return workspace.Workspace{}, err
	}
	if err := deps.WorkspaceStore.Save(ctx, ws); err != nil {
		return workspace.Workspace{}, fmt.Errorf("save workspace: %w", err)
	}

	seed := SeedFor(ws.Kind)
	for _, b := range seed.Bookings {
		if err := deps.BookingStore.Save(ctx, ws.ID, b); err != nil {
			return workspace.Workspace{}, fmt.Errorf("seed booking %s: %w", b.ID, err)
		}
	}
	for _, m := range seed.Members {
		if err := deps.MemberStore.Save(ctx, ws.ID, m); err != nil {
			return workspace.Workspace{}, fmt.Errorf("seed member %s: %w", m.ID, err)
		}
	}
	for _, t := range seed.Tournaments {
		if err := deps.TournamentStore.Save(ctx, ws.ID, t); err != nil {
			return workspace.Workspace{}, fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}
	for _, n := range seed.Notifications {
		if err := deps.NotificationStore.Save(ctx, ws.ID, n); err != nil {
			return workspace.Workspace{}, fmt.Errorf("seed notification %s: %w", n.ID, err)
		}
	}

	slog.Info("workspace_event", "event", "workspace_seeded", "workspace_id", ws.ID, "kind", ws.Kind)
	return ws, nil
}

// ExecuteResetWorkspace discards every mutation and restores the sample data,
// keeping the workspace id so the session stays valid.
// PRE: input.WorkspaceID is non-empty
// POST: Workspace holds exactly SeedFor(kind)
func ExecuteResetWorkspace(ctx context.Context, input SeedWorkspaceInput, deps SeedWorkspaceDeps) (workspace.Workspace, error) {
	if input.WorkspaceID == "" {
		return workspace.Workspace{}, workspace.ErrEmptyID
	}
	if err := deps.WorkspaceStore.Delete(ctx, input.WorkspaceID); err != nil {
		return workspace.Workspace{}, fmt.Errorf("drop workspace: %w", err)
	}
	slog.Info("workspace_event", "event", "workspace_reset", "workspace_id", input.WorkspaceID)
	return ExecuteSeedWorkspace(ctx, input, deps)
}

// WorkspaceStoreForDrop defines the workspace store interface needed by DropWorkspace.
type WorkspaceStoreForDrop interface {
	Delete(ctx context.Context, id string) error
}

// ExecuteDropWorkspace discards a workspace when its session ends.
// PRE: workspaceID is non-empty
// POST: No data remains for workspaceID
func ExecuteDropWorkspace(ctx context.Context, workspaceID string, store WorkspaceStoreForDrop) error {
	if workspaceID == "" {
		return nil
	}
	if err := store.Delete(ctx, workspaceID); err != nil {
		return fmt.Errorf("drop workspace: %w", err)
	}
	slog.Info("workspace_event", "event", "workspace_dropped", "workspace_id", workspaceID)
	return nil
}

// WorkspaceStoreForPurge defines the workspace store interface needed by PurgeWorkspaces.
type WorkspaceStoreForPurge interface {
	DeleteAll(ctx context.Context) (int, error)
}

// ExecutePurgeWorkspaces drops every workspace. The server runs it at startup
// against file-backed databases, since no session survives a restart.
// PRE: none
// POST: No workspace remains
func ExecutePurgeWorkspaces(ctx context.Context, store WorkspaceStoreForPurge) error {
	n, err := store.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("purge workspaces: %w", err)
	}
	if n > 0 {
		slog.Info("workspace_event", "event", "workspaces_purged", "count", n)
	}
	return nil
}
