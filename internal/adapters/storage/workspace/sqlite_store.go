package workspace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"padelcygnus/internal/adapters/storage"
	"padelcygnus/internal/domain/role"
	domain "padelcygnus/internal/domain/workspace"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new workspace SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Workspace by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Workspace, error) {
	var ws domain.Workspace
	var kind, createdAt string
	err := s.db.QueryRowContext(ctx, "SELECT id, kind, created_at FROM workspace WHERE id = ?", id).
		Scan(&ws.ID, &kind, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Workspace{}, fmt.Errorf("workspace not found: %w", err)
	}
	if err != nil {
		return domain.Workspace{}, err
	}
	ws.Kind = role.Role(kind)
	ws.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return ws, nil
}

// Save persists a Workspace header (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted; existing collections are untouched
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Workspace) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO workspace (id, kind, created_at) VALUES (?, ?, ?) ON CONFLICT(id) DO UPDATE SET kind=excluded.kind",
		entity.ID, string(entity.Kind), entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Workspace and, through foreign key cascades, all of its collections.
// PRE: id is non-empty
// POST: No rows reference the workspace
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM workspace WHERE id = ?", id)
	return err
}

// Count returns the number of live workspaces.
// PRE: none
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM workspace").Scan(&n)
	return n, err
}

// DeleteAll removes every workspace and its collections.
// PRE: none
// POST: Count is zero; returns the number of workspaces removed
func (s *SQLiteStore) DeleteAll(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM workspace")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
