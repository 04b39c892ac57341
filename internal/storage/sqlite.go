// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is used when a query is given a non-positive limit.
const DefaultLimit = 10

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished crossing: who made it, how long it took, and how many
// times the player was sent back to the hostel on the way.
type Run struct {
	ID        int64
	Player    string
	Time      time.Duration
	Hits      int
	Seed      int64
	Preset    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
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
			player TEXT NOT NULL,
			time_ms INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			preset TEXT NOT NULL DEFAULT 'normal',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(preset, time_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.Player == "" {
		return 0, errors.New("storage: run has no player name")
	}
	if run.Time < 0 {
		return 0, fmt.Errorf("storage: negative run time %v", run.Time)
	}
	if run.Preset == "" {
		run.Preset = "normal"
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (player, time_ms, hits, seed, preset) VALUES (?, ?, ?, ?, ?)",
		run.Player, run.Time.Milliseconds(), run.Hits, run.Seed, run.Preset,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, player, time_ms, hits, seed, preset, created_at`

// BestRuns retrieves the fastest runs, optionally restricted to one preset.
// An empty preset matches every preset.
func (s *Store) BestRuns(preset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR preset = ?
		 ORDER BY time_ms ASC, id ASC
		 LIMIT ?`,
		preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// PlayerRuns retrieves the most recent runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &ms, &r.Hits, &r.Seed, &r.Preset, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Time = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestTime returns the fastest time of a player on a preset.
// The boolean is false if the player has no runs there yet.
func (s *Store) BestTime(player, preset string) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(time_ms) FROM runs WHERE player = ? AND preset = ?",
		player, preset,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearRuns deletes every stored run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	Players    int
	BestTime   time.Duration
	AvgTime    time.Duration
	TotalHits  int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over every stored run.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var best int64
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MIN(time_ms), 0),
		        COALESCE(AVG(time_ms), 0), COALESCE(SUM(hits), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Players, &best, &avg, &stats.TotalHits)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.BestTime = time.Duration(best) * time.Millisecond
	stats.AvgTime = time.Duration(avg * float64(time.Millisecond))

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
