package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/booking"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new booking SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectColumns = "SELECT id, court_id, member_id, date, time, status FROM booking"

// GetByID retrieves a Booking by its ID within a workspace.
// PRE: workspaceID and id are non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if not found
func (s *SQLiteStore) GetByID(ctx context.Context, workspaceID, id string) (domain.Booking, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE workspace_id = ? AND id = ?", workspaceID, id)

	var entity domain.Booking
	err := row.Scan(&entity.ID, &entity.CourtID, &entity.MemberID, &entity.Date, &entity.Time, &entity.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Booking{}, fmt.Errorf("booking not found: %w", err)
	}
	return entity, err
}

// Save persists a Booking (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted; an update keeps the original row order
func (s *SQLiteStore) Save(ctx context.Context, workspaceID string, entity domain.Booking) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"workspace_id", "id", "court_id", "member_id", "date", "time", "status"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?"}
	updates := []string{"court_id=excluded.court_id", "member_id=excluded.member_id", "date=excluded.date", "time=excluded.time", "status=excluded.status"}

	query := fmt.Sprintf(
		"INSERT INTO booking (%s) VALUES (%s) ON CONFLICT(workspace_id, id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		workspaceID,
		entity.ID,
		entity.CourtID,
		entity.MemberID,
		entity.Date,
		entity.Time,
		entity.Status,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Booking. Deleting a missing id is not an error.
// PRE: workspaceID and id are non-empty
// POST: No booking with id remains in the workspace
func (s *SQLiteStore) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM booking WHERE workspace_id = ? AND id = ?", workspaceID, id)
	return err
}

// List returns the workspace's bookings in insertion order.
// PRE: workspaceID is non-empty
// POST: Returns matching bookings, possibly empty
func (s *SQLiteStore) List(ctx context.Context, workspaceID string, filter ListFilter) ([]domain.Booking, error) {
	query := selectColumns + " WHERE workspace_id = ?"
	args := []any{workspaceID}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY rowid"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Booking
	for rows.Next() {
		var entity domain.Booking
		if err := rows.Scan(&entity.ID, &entity.CourtID, &entity.MemberID, &entity.Date, &entity.Time, &entity.Status); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
