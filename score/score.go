// Package score persists per-game best scores in a SQLite database.
// Persistence is best-effort: callers log failures and keep playing.
package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for high scores.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if necessary) the score database at the given path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("score db path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create score dir: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping score db: %w", err)
	}

	st := &Store{sqlDB: sqlDB}
	if err := st.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate score db: %w", err)
	}
	return st, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) migrate() error {
	_, err := s.sqlDB.Exec(`CREATE TABLE IF NOT EXISTS scores (
		game TEXT PRIMARY KEY,
		best INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	return err
}

// Record stores value as the best score for game if it beats the current
// best. It reports whether a new best was set.
func (s *Store) Record(game string, value int) (bool, error) {
	best, ok, err := s.Best(game)
	if err != nil {
		return false, err
	}
	if ok && value <= best {
		return false, nil
	}

	now := time.Now().UTC().UnixMilli()
	_, err = s.sqlDB.Exec(`INSERT INTO scores (game, best, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(game) DO UPDATE SET best = excluded.best, updated_at = excluded.updated_at`,
		game, value, now)
	if err != nil {
		return false, fmt.Errorf("record score: %w", err)
	}
	return true, nil
}

// Best returns the stored best score for game and whether one exists.
func (s *Store) Best(game string) (int, bool, error) {
	var best int
	err := s.sqlDB.QueryRow(`SELECT best FROM scores WHERE game = ?`, game).Scan(&best)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read score: %w", err)
	}
	return best, true, nil
}
