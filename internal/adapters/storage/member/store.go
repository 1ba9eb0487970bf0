package member

import (
	"context"

	domain "padelcygnus/internal/domain/member"
)

// Store persists the members of one workspace.
type Store interface {
	GetByID(ctx context.Context, workspaceID, id string) (domain.Member, error)
	Save(ctx context.Context, workspaceID string, value domain.Member) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]domain.Member, error)
	Count(ctx context.Context, workspaceID string) (int, error)
}
