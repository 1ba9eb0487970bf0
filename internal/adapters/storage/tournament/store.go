package tournament

import (
	"context"

	domain "padelcygnus/internal/domain/tournament"
)

// Store persists the tournaments of one workspace.
type Store interface {
	GetByID(ctx context.Context, workspaceID, id string) (domain.Tournament, error)
	Save(ctx context.Context, workspaceID string, value domain.Tournament) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]domain.Tournament, error)
}
