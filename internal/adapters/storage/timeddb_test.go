package storage

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"padelcygnus/internal/adapters/http/perf"
)

// openMigratedDB returns a migrated in-memory database.
func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db := openTestDB(t)
	if err := MigrateDB(db); err != nil {
		t.Fatalf("MigrateDB: %v", err)
	}
	return db
}

// TestTimedDB_RecordsEachCall verifies every wrapped call lands in the collector
// with a label naming the table it touched.
func TestTimedDB_RecordsEachCall(t *testing.T) {
	db := openMigratedDB(t)
	collector := perf.NewCollector(100)
	tdb := NewTimedDB(db, collector, 0)
	ctx := context.Background()

	if _, err := tdb.ExecContext(ctx, "INSERT INTO workspace (id, kind, created_at) VALUES (?, ?, ?)", "w-1", "admin", "now"); err != nil {
		t.Fatalf("ExecContext: %v", err)
	}
	rows, err := tdb.QueryContext(ctx, "SELECT id FROM workspace")
	if err != nil {
		t.Fatalf("QueryContext: %v", err)
	}
	rows.Close()

	var kind string
	if err := tdb.QueryRowContext(ctx, "SELECT kind FROM workspace WHERE id = ?", "w-1").Scan(&kind); err != nil {
		t.Fatalf("QueryRowContext: %v", err)
	}
	if kind != "admin" {
		t.Errorf("kind = %q, want admin", kind)
	}

	if collector.TotalRecorded() != 3 {
		t.Errorf("TotalRecorded = %d, want 3", collector.TotalRecorded())
	}
}

// TestTimedDB_BeginTx verifies transactions are timed and usable.
func TestTimedDB_BeginTx(t *testing.T) {
	db := openMigratedDB(t)
	collector := perf.NewCollector(100)
	tdb := NewTimedDB(db, collector, 0)

	tx, err := tdb.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO workspace (id, kind, created_at) VALUES ('w-2', 'member', 'now')"); err != nil {
		t.Fatalf("tx.Exec: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if collector.TotalRecorded() != 1 {
		t.Errorf("TotalRecorded = %d, want 1", collector.TotalRecorded())
	}
}

// TestTimedDB_ErrorPassthrough verifies SQL errors are returned unchanged and still timed.
func TestTimedDB_ErrorPassthrough(t *testing.T) {
	db := openMigratedDB(t)
	collector := perf.NewCollector(100)
	tdb := NewTimedDB(db, collector, 0)
	ctx := context.Background()

	if _, err := tdb.ExecContext(ctx, "INSERT INTO nonexistent_table VALUES (?)", 1); err == nil {
		t.Error("expected error from invalid SQL")
	}
	var id string
	if err := tdb.QueryRowContext(ctx, "SELECT id FROM workspace WHERE id = ?", "missing").Scan(&id); err != sql.ErrNoRows {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
	if collector.TotalRecorded() != 2 {
		t.Errorf("TotalRecorded = %d, want 2", collector.TotalRecorded())
	}
}

// TestTimedDB_CancelledContext verifies a cancelled context fails but is still recorded.
func TestTimedDB_CancelledContext(t *testing.T) {
	db := openMigratedDB(t)
	collector := perf.NewCollector(100)
	tdb := NewTimedDB(db, collector, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tdb.ExecContext(ctx, "INSERT INTO workspace (id, kind, created_at) VALUES ('w', 'admin', 'now')"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if collector.TotalRecorded() != 1 {
		t.Errorf("TotalRecorded = %d, want 1", collector.TotalRecorded())
	}
}

// TestTimedDB_NilCollector verifies TimedDB works without a collector.
func TestTimedDB_NilCollector(t *testing.T) {
	db := openMigratedDB(t)
	tdb := NewTimedDB(db, nil, 0)
	if _, err := tdb.ExecContext(context.Background(), "DELETE FROM booking"); err != nil {
		t.Fatalf("ExecContext with nil collector: %v", err)
	}
	if tdb.RawDB() != db {
		t.Error("RawDB() should return the original *sql.DB")
	}
}

// TestTimedDB_ConcurrentCalls verifies concurrent use does not race on the collector.
func TestTimedDB_ConcurrentCalls(t *testing.T) {
	db := openMigratedDB(t)
	collector := perf.NewCollector(1000)
	tdb := NewTimedDB(db, collector, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				var n int
				tdb.QueryRowContext(ctx, "SELECT COUNT(*) FROM booking").Scan(&n)
			}
		}()
	}
	wg.Wait()

	if collector.TotalRecorded() != 80 {
		t.Errorf("TotalRecorded = %d, want 80", collector.TotalRecorded())
	}
}

// TestQueryTable covers label extraction.
func TestQueryTable(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM booking WHERE workspace_id = ?": "booking",
		"INSERT INTO chat_message (seq) VALUES (?)":     "chat_message",
		"UPDATE tournament SET participants = ?":        "tournament",
		"DELETE FROM notification WHERE id = ?":         "notification",
		"PRAGMA foreign_keys":                           "-",
		"":                                              "-",
	}
	for q, want := range tests {
		if got := queryTable(q); got != want {
			t.Errorf("queryTable(%q) = %q, want %q", q, got, want)
		}
	}
}
