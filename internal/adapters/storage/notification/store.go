package notification

import (
	"context"

	domain "padelcygnus/internal/domain/notification"
)

// Store persists the notifications of one workspace.
type Store interface {
	Save(ctx context.Context, workspaceID string, value domain.Notification) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]domain.Notification, error)
}
