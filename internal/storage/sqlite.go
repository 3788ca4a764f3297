// Package storage provides SQLite-based persistence for the match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is an archive of finished matches. Nothing in it is read back into
// a game; every match starts at 0-0.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Store manages the SQLite database connection for the match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID           int64
	Player       string // local user or SSH user name
	LeftScore    int
	RightScore   int
	Winner       string // "Player 1" or "Player 2"
	Returns      int
	LongestRally int
	PeakSpeed    float64
	DurationSecs int
	CreatedAt    time.Time
}

// Summary aggregates the whole history.
type Summary struct {
	Matches      int
	LeftWins     int
	RightWins    int
	LongestRally int
	PeakSpeed    float64
	LastPlayed   time.Time
}

const timestampLayout = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			returns INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			peak_speed REAL NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.Winner == "" {
		return 0, errors.New("storage: cannot save match without a winner")
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (player, left_score, right_score, winner, returns, longest_rally, peak_speed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Player, m.LeftScore, m.RightScore, m.Winner,
		m.Returns, m.LongestRally, m.PeakSpeed, m.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, left_score, right_score, winner, returns,
		        longest_rally, peak_speed, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var createdAt any
		if err := rows.Scan(
			&m.ID,
			&m.Player,
			&m.LeftScore,
			&m.RightScore,
			&m.Winner,
			&m.Returns,
			&m.LongestRally,
			&m.PeakSpeed,
			&m.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTimestamp(createdAt)
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary retrieves aggregate figures for the whole history.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'Player 1' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'Player 2' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(longest_rally), 0),
		        COALESCE(MAX(peak_speed), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&sum.Matches, &sum.LeftWins, &sum.RightWins, &sum.LongestRally, &sum.PeakSpeed, &lastPlayed)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	sum.LastPlayed = parseTimestamp(lastPlayed)
	return sum, nil
}

// ClearMatches deletes the whole history.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timestampLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
