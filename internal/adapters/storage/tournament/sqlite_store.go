package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/tournament"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new tournament SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Tournament by its ID.
// PRE: workspaceID and id are non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if not found
func (s *SQLiteStore) GetByID(ctx context.Context, workspaceID, id string) (domain.Tournament, error) {
	var t domain.Tournament
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, date, participants, status FROM tournament WHERE workspace_id = ? AND id = ?",
		workspaceID, id,
	).Scan(&t.ID, &t.Name, &t.Date, &t.Participants, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Tournament{}, fmt.Errorf("tournament not found: %w", err)
	}
	return t, err
}

// Save persists a Tournament (insert or update).
// PRE: entity.ID is non-empty
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, workspaceID string, entity domain.Tournament) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO tournament (workspace_id, id, name, date, participants, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(workspace_id, id) DO UPDATE SET
			name=excluded.name, date=excluded.date, participants=excluded.participants, status=excluded.status`,
		workspaceID, entity.ID, entity.Name, entity.Date, entity.Participants, entity.Status,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a Tournament. Deleting a missing id is not an error.
// PRE: workspaceID and id are non-empty
// POST: No tournament with id remains in the workspace
func (s *SQLiteStore) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tournament WHERE workspace_id = ? AND id = ?", workspaceID, id)
	return err
}

// List returns the workspace's tournaments in insertion order.
// PRE: workspaceID is non-empty
// POST: Returns all tournaments, possibly empty
func (s *SQLiteStore) List(ctx context.Context, workspaceID string) ([]domain.Tournament, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, date, participants, status FROM tournament WHERE workspace_id = ? ORDER BY rowid",
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Date, &t.Participants, &t.Status); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}
