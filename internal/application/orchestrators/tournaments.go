package orchestrators

import (
	"context"
	"log/slog"

	"padelcygnus/internal/domain/tournament"
)

// TournamentStoreForOrchestrator defines the tournament store interface needed by tournament mutations.
type TournamentStoreForOrchestrator interface {
	GetByID(ctx context.Context, workspaceID, id string) (tournament.Tournament, error)
	Save(ctx context.Context, workspaceID string, t tournament.Tournament) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// TournamentDeps holds dependencies for tournament mutations.
type TournamentDeps struct {
	TournamentStore TournamentStoreForOrchestrator
}

// ExecuteRegisterForTournament adds one participant to a tournament.
// An unknown id is a silent no-op.
// PRE: workspaceID is non-empty
// POST: Participants increased by one; the registrant is not recorded
// INVARIANT: no capacity check
func ExecuteRegisterForTournament(ctx context.Context, workspaceID, id string, deps TournamentDeps) (tournament.Tournament, error) {
	t, err := deps.TournamentStore.GetByID(ctx, workspaceID, id)
	if isNotFound(err) {
		return tournament.Tournament{}, nil
	}
	if err != nil {
		return tournament.Tournament{}, err
	}
	t.Register()
	if err := deps.TournamentStore.Save(ctx, workspaceID, t); err != nil {
		return tournament.Tournament{}, err
	}
	slog.Info("tournament_event", "event", "tournament_registered", "workspace_id", workspaceID, "tournament_id", id, "participants", t.Participants)
	return t, nil
}

// ExecuteDeleteTournament removes a tournament unconditionally.
// PRE: workspaceID is non-empty
// POST: No tournament with id remains
func ExecuteDeleteTournament(ctx context.Context, workspaceID, id string, deps TournamentDeps) error {
	if err := deps.TournamentStore.Delete(ctx, workspaceID, id); err != nil {
		return err
	}
	slog.Info("tournament_event", "event", "tournament_deleted", "workspace_id", workspaceID, "tournament_id", id)
	return nil
}
