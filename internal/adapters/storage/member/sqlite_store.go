package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.MembershipType)
	return m, err
}

// GetByID retrieves a Member by its ID.
// PRE: workspaceID and id are non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if not found
func (s *SQLiteStore) GetByID(ctx context.Context, workspaceID, id string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, membership_type FROM member WHERE workspace_id = ? AND id = ?",
		workspaceID, id,
	)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return m, err
}

// Save persists a Member (insert or update).
// PRE: entity.ID is non-empty
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, workspaceID string, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"workspace_id", "id", "name", "email", "membership_type"}
	updates := []string{"name=excluded.name", "email=excluded.email", "membership_type=excluded.membership_type"}

	query := fmt.Sprintf(
		"INSERT INTO member (%s) VALUES (?, ?, ?, ?, ?) ON CONFLICT(workspace_id, id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(updates, ", "),
	)
	if _, err := tx.ExecContext(ctx, query, workspaceID, entity.ID, entity.Name, entity.Email, entity.MembershipType); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a Member. Deleting a missing id is not an error.
// PRE: workspaceID and id are non-empty
// POST: No member with id remains in the workspace
func (s *SQLiteStore) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM member WHERE workspace_id = ? AND id = ?", workspaceID, id)
	return err
}

// List returns the workspace's members in insertion order.
// PRE: workspaceID is non-empty
// POST: Returns all members, possibly empty
func (s *SQLiteStore) List(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, membership_type FROM member WHERE workspace_id = ? ORDER BY rowid",
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// Count returns the number of members in the workspace.
// PRE: workspaceID is non-empty
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, workspaceID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM member WHERE workspace_id = ?", workspaceID).Scan(&n)
	return n, err
}
