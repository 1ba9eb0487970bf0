package workspace

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"padelcygnus/internal/adapters/storage"
	"padelcygnus/internal/domain/role"
	domain "padelcygnus/internal/domain/workspace"
)

// TestSQLiteStore_Lifecycle verifies save, read, and cascading delete.
func TestSQLiteStore_Lifecycle(t *testing.T) {
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewSQLiteStore(db)
	ctx := context.Background()
	created := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	if err := s.Save(ctx, domain.Workspace{ID: "w-1", Kind: role.Member, CreatedAt: created}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.GetByID(ctx, "w-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Kind != role.Member || !got.CreatedAt.Equal(created) {
		t.Errorf("got %+v", got)
	}

	if _, err := db.Exec("INSERT INTO notification (workspace_id, id, title, message, time) VALUES ('w-1', '1', 't', 'm', 'hace 5 minutos')"); err != nil {
		t.Fatalf("insert notification: %v", err)
	}
	if err := s.Delete(ctx, "w-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var n int
	db.QueryRow("SELECT COUNT(*) FROM notification").Scan(&n)
	if n != 0 {
		t.Errorf("notifications after delete = %d, want 0", n)
	}
	if _, err := s.GetByID(ctx, "w-1"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID after delete err = %v, want sql.ErrNoRows", err)
	}
	if c, _ := s.Count(ctx); c != 0 {
		t.Errorf("Count = %d, want 0", c)
	}
}

// TestSQLiteStore_DeleteAll verifies every workspace is removed and counted.
func TestSQLiteStore_DeleteAll(t *testing.T) {
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewSQLiteStore(db)
	ctx := context.Background()

	for _, id := range []string{"w-1", "w-2"} {
		if err := s.Save(ctx, domain.Workspace{ID: id, Kind: role.Admin, CreatedAt: time.Now()}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	n, err := s.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 2 {
		t.Errorf("removed = %d, want 2", n)
	}
	if c, _ := s.Count(ctx); c != 0 {
		t.Errorf("Count = %d, want 0", c)
	}
}
