package workspace

import (
	"context"

	domain "padelcygnus/internal/domain/workspace"
)

// Store persists workspace headers. Deleting a workspace removes every
// booking, member, tournament and notification that belongs to it.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Workspace, error)
	Save(ctx context.Context, value domain.Workspace) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}
