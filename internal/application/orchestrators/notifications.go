package orchestrators

import (
	"context"
	"log/slog"
)

// NotificationStoreForDismiss defines the notification store interface needed by Dismiss.
type NotificationStoreForDismiss interface {
	Delete(ctx context.Context, workspaceID, id string) error
}

// ExecuteDismissNotification removes a notification from the dashboard.
// PRE: workspaceID is non-empty
// POST: No notification with id remains
func ExecuteDismissNotification(ctx context.Context, workspaceID, id string, store NotificationStoreForDismiss) error {
	if err := store.Delete(ctx, workspaceID, id); err != nil {
		return err
	}
	slog.Info("notification_event", "event", "notification_dismissed", "workspace_id", workspaceID, "notification_id", id)
	return nil
}
