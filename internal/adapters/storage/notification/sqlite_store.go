package notification

import (
	"context"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/notification"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new notification SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Notification (insert or update).
// PRE: entity.ID is non-empty
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, workspaceID string, entity domain.Notification) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO notification (workspace_id, id, title, message, time, type)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(workspace_id, id) DO UPDATE SET
			title=excluded.title, message=excluded.message, time=excluded.time, type=excluded.type`,
		workspaceID, entity.ID, entity.Title, entity.Message, entity.Time, entity.EffectiveType(),
	)
	return err
}

// Delete removes a Notification. Deleting a missing id is not an error.
// PRE: workspaceID and id are non-empty
// POST: No notification with id remains in the workspace
func (s *SQLiteStore) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notification WHERE workspace_id = ? AND id = ?", workspaceID, id)
	return err
}

// List returns the workspace's notifications in insertion order.
// PRE: workspaceID is non-empty
// POST: Returns all notifications, possibly empty
func (s *SQLiteStore) List(ctx context.Context, workspaceID string) ([]domain.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, message, time, type FROM notification WHERE workspace_id = ? ORDER BY rowid",
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Time, &n.Type); err != nil {
			return nil, err
		}
		results = append(results, n)
	}
	return results, rows.Err()
}
