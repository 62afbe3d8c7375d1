package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// MasteryRepo returns the mastery-record repository backed by this store.
func (s *Store) MasteryRepo() *MasteryRepo {
	return &MasteryRepo{db: s.db}
}

// GapRepo returns the gap-history repository backed by this store.
func (s *Store) GapRepo() *GapRepo {
	return &GapRepo{db: s.db}
}

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Statements are idempotent.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mastery_records (
			user_id       TEXT NOT NULL,
			lesson_id     TEXT NOT NULL,
			best_score    INTEGER NOT NULL DEFAULT 0,
			attempt_count INTEGER NOT NULL DEFAULT 0,
			is_mastered   INTEGER NOT NULL DEFAULT 0,
			lp_awarded    INTEGER NOT NULL DEFAULT 0,
			updated_at    TEXT NOT NULL,
			PRIMARY KEY (user_id, lesson_id)
		)`,
		`CREATE TABLE IF NOT EXISTS gap_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id       TEXT NOT NULL,
			submission_id TEXT NOT NULL,
			recorded_at   TEXT NOT NULL,
			gaps          TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gap_snapshots_user
			ON gap_snapshots (user_id, id)`,
		`CREATE TABLE IF NOT EXISTS grade_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id       TEXT NOT NULL,
			submission_id TEXT NOT NULL,
			kind          TEXT NOT NULL,
			is_correct    INTEGER NOT NULL,
			percentage    INTEGER NOT NULL,
			severe_gap    INTEGER NOT NULL,
			result        TEXT NOT NULL,
			created_at    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT '',
			created_at    TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SCRIVO_DB environment variable
// 2. $XDG_DATA_HOME/scrivo/scrivo.db
// 3. ~/.local/share/scrivo/scrivo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SCRIVO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "scrivo", "scrivo.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
