package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// migration is one forward-only schema step.
type migration struct {
	version     int
	description string
	statements  []string
}

// migrations is the ordered schema history. Append only.
var migrations = []migration{
	{
		version:     1,
		description: "workspace collections",
		statements: []string{
			`CREATE TABLE workspace (
				id TEXT PRIMARY KEY,
				kind TEXT NOT NULL,
				created_at TEXT NOT NULL
			)`,
			`CREATE TABLE booking (
				workspace_id TEXT NOT NULL,
				id TEXT NOT NULL,
				court_id TEXT NOT NULL,
				member_id TEXT NOT NULL DEFAULT '',
				date TEXT NOT NULL,
				time TEXT NOT NULL,
				status TEXT NOT NULL,
				PRIMARY KEY (workspace_id, id),
				FOREIGN KEY (workspace_id) REFERENCES workspace(id) ON DELETE CASCADE
			)`,
			`CREATE TABLE member (
				workspace_id TEXT NOT NULL,
				id TEXT NOT NULL,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				membership_type TEXT NOT NULL,
				PRIMARY KEY (workspace_id, id),
				FOREIGN KEY (workspace_id) REFERENCES workspace(id) ON DELETE CASCADE
			)`,
			`CREATE TABLE tournament (
				workspace_id TEXT NOT NULL,
				id TEXT NOT NULL,
				name TEXT NOT NULL,
				date TEXT NOT NULL,
				participants INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT '',
				PRIMARY KEY (workspace_id, id),
				FOREIGN KEY (workspace_id) REFERENCES workspace(id) ON DELETE CASCADE
			)`,
			`CREATE TABLE notification (
				workspace_id TEXT NOT NULL,
				id TEXT NOT NULL,
				title TEXT NOT NULL,
				message TEXT NOT NULL,
				time TEXT NOT NULL,
				type TEXT NOT NULL DEFAULT 'info',
				PRIMARY KEY (workspace_id, id),
				FOREIGN KEY (workspace_id) REFERENCES workspace(id) ON DELETE CASCADE
			)`,
		},
	},
	{
		version:     2,
		description: "chat transcripts",
		statements: []string{
			`CREATE TABLE chat_message (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				conversation_id TEXT NOT NULL,
				sender TEXT NOT NULL,
				text TEXT NOT NULL,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX idx_chat_message_conversation ON chat_message (conversation_id, seq)`,
		},
	},
}

// LatestSchemaVersion returns the version the migration chain ends at.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// IsMemoryDSN reports whether dsn names an in-process database that lives
// only as long as its connection.
func IsMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Open opens a SQLite database with foreign keys enforced.
// Memory databases are pinned to a single connection so every query sees the same data.
// PRE: dsn is a modernc.org/sqlite DSN
// POST: Returns a pinged *sql.DB; caller must Close it
func Open(dsn string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	full := dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", full)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if IsMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// SchemaVersion returns the highest applied migration, or 0 for a fresh database.
// PRE: db is a valid database connection
// POST: Returns the current version
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check schema_version: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}
	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema_version: %w", err)
	}
	return int(version.Int64), nil
}

// MigrateDB applies every migration newer than the current schema version.
// Each migration runs in its own transaction together with its version row.
// PRE: db is a valid database connection
// POST: SchemaVersion(db) == LatestSchemaVersion()
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.description, err)
		}
	}
	return nil
}

func applyMigration(db *sql.DB, m migration) error {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_version (version, description, applied_at) VALUES (?, ?, ?)",
		m.version, m.description, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}
	return tx.Commit()
}
