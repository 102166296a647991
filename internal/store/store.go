package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Store persists the flat time-block list in SQLite. The in-memory
// repository is the source of truth while the app runs; the store only
// loads it at startup and rewrites it whenever the repository changes.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS time_blocks (
		id                    TEXT PRIMARY KEY,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		date                  TEXT NOT NULL,
		start_time            TEXT NOT NULL,
		duration_minutes      INTEGER NOT NULL,
		block_type            TEXT NOT NULL DEFAULT 'focus',
		icon                  TEXT NOT NULL DEFAULT '',
		color                 TEXT NOT NULL DEFAULT '',
		linked_item_type      TEXT NOT NULL DEFAULT '',
		linked_item_id        TEXT NOT NULL DEFAULT '',
		reminder_minutes      INTEGER,
		status                TEXT NOT NULL DEFAULT 'scheduled',
		is_recurring          INTEGER NOT NULL DEFAULT 0,
		recurrence_type       TEXT NOT NULL DEFAULT '',
		recurrence_interval   INTEGER NOT NULL DEFAULT 0,
		recurrence_end_date   TEXT NOT NULL DEFAULT '',
		original_event_id     TEXT NOT NULL DEFAULT '',
		recurrence_exceptions TEXT NOT NULL DEFAULT '[]',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_blocks_date     ON time_blocks(date);
	CREATE INDEX IF NOT EXISTS idx_blocks_original ON time_blocks(original_event_id);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('default_view',   'week'),
		('day_start_hour', '7'),
		('day_end_hour',   '22');
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/dayblock/dayblock.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "dayblock", "dayblock.db"), nil
}
