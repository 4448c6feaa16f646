// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished (or abandoned) session.
type RunRecord struct {
	ID           int64
	Mode         string // "campaign", "daily", "practice"
	Seed         int64  // Seed/level number the run started from
	Score        int
	LevelReached int
	DurationSecs int
	CreatedAt    time.Time
}

// ModeStats summarizes the stored runs of one mode.
type ModeStats struct {
	Mode         string
	Runs         int
	BestScore    int
	BestLevel    int
	TotalSeconds int
}

// Open creates or opens a SQLite database at the given path, creating
// parent directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL DEFAULT 1,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts a run record and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (mode, seed, score, level_reached, duration_secs) VALUES (?, ?, ?, ?, ?)`,
		r.Mode, r.Seed, r.Score, r.LevelReached, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the highest-scoring runs for a mode, newest first
// among ties.
func (s *Store) TopRuns(mode string, limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, seed, score, level_reached, duration_secs, created_at
		 FROM runs WHERE mode = ?
		 ORDER BY score DESC, created_at DESC LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Mode, &r.Seed, &r.Score, &r.LevelReached, &r.DurationSecs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// BestScore returns the highest score for a mode, or 0 with no rows.
func (s *Store) BestScore(mode string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE mode = ?`, mode).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats summarizes all runs of a mode.
func (s *Store) Stats(mode string) (*ModeStats, error) {
	var stats ModeStats
	stats.Mode = mode
	var bestScore, bestLevel, total sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), MAX(level_reached), SUM(duration_secs)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &bestScore, &bestLevel, &total)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if bestScore.Valid {
		stats.BestScore = int(bestScore.Int64)
	}
	if bestLevel.Valid {
		stats.BestLevel = int(bestLevel.Int64)
	}
	if total.Valid {
		stats.TotalSeconds = int(total.Int64)
	}
	return &stats, nil
}

// ClearRuns deletes all runs for a mode.
func (s *Store) ClearRuns(mode string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE mode = ?`, mode); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
