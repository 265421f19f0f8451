// Package storage provides SQLite-based persistence for save slots and scores.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a finished (or abandoned) run.
type ScoreEntry struct {
	ID        int64
	Variant   string
	RunID     string
	Score     int
	MaxTile   int
	Won       bool
	CreatedAt time.Time
}

// SavedGame is the persisted state of one save slot. Cells and UndoCells
// hold space-separated codec sequences.
type SavedGame struct {
	Slot      string
	Variant   string
	RunID     string
	GridSize  int
	Cells     string
	Score     int
	HighScore int
	UndoCells string // Empty when there is nothing to undo
	UndoScore int
	UpdatedAt time.Time
}

// HasUndo reports whether the slot carries an undo snapshot.
func (g SavedGame) HasUndo() bool {
	return g.UndoCells != ""
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			run_id TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			cells TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			undo_cells TEXT NOT NULL DEFAULT '',
			undo_score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records the score of a run. Recording the same run again
// replaces the earlier result. Returns the row ID.
func (s *Store) SaveScore(entry ScoreEntry) (int64, error) {
	if entry.RunID == "" {
		return 0, errors.New("storage: score entry without run id")
	}

	_, err := s.db.Exec(
		`INSERT INTO scores (variant, run_id, score, max_tile, won)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
		   score = excluded.score,
		   max_tile = excluded.max_tile,
		   won = excluded.won,
		   created_at = CURRENT_TIMESTAMP`,
		entry.Variant, entry.RunID, entry.Score, entry.MaxTile, boolToInt(entry.Won),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM scores WHERE run_id = ?", entry.RunID).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get score ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given variant.
// Results are ordered by score descending.
func (s *Store) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, run_id, score, max_tile, won, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// AllScores retrieves all scores for the given variant (no limit).
func (s *Store) AllScores(variant string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, variant, run_id, score, max_tile, won, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.RunID, &e.Score, &e.MaxTile, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no scores exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveGame writes a save slot, replacing any previous content.
func (s *Store) SaveGame(g SavedGame) error {
	if g.Slot == "" {
		return errors.New("storage: save without slot name")
	}

	_, err := s.db.Exec(
		`INSERT INTO saves
		 (slot, variant, run_id, grid_size, cells, score, high_score, undo_cells, undo_score, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   variant = excluded.variant,
		   run_id = excluded.run_id,
		   grid_size = excluded.grid_size,
		   cells = excluded.cells,
		   score = excluded.score,
		   high_score = excluded.high_score,
		   undo_cells = excluded.undo_cells,
		   undo_score = excluded.undo_score,
		   updated_at = CURRENT_TIMESTAMP`,
		g.Slot, g.Variant, g.RunID, g.GridSize, g.Cells, g.Score, g.HighScore, g.UndoCells, g.UndoScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads a save slot. Returns nil, nil when the slot is empty.
func (s *Store) LoadGame(slot string) (*SavedGame, error) {
	var g SavedGame
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT slot, variant, run_id, grid_size, cells, score, high_score, undo_cells, undo_score, updated_at
		 FROM saves
		 WHERE slot = ?`,
		slot,
	).Scan(
		&g.Slot,
		&g.Variant,
		&g.RunID,
		&g.GridSize,
		&g.Cells,
		&g.Score,
		&g.HighScore,
		&g.UndoCells,
		&g.UndoScore,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}

	g.UpdatedAt = parseTime(updatedAt)
	return &g, nil
}

// DeleteGame removes a save slot. Deleting a missing slot is not an error.
func (s *Store) DeleteGame(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// Slots lists all save slots, most recently updated first.
func (s *Store) Slots() ([]SavedGame, error) {
	rows, err := s.db.Query(
		`SELECT slot, variant, run_id, grid_size, cells, score, high_score, undo_cells, undo_score, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []SavedGame
	for rows.Next() {
		var g SavedGame
		var updatedAt any
		if err := rows.Scan(
			&g.Slot,
			&g.Variant,
			&g.RunID,
			&g.GridSize,
			&g.Cells,
			&g.Score,
			&g.HighScore,
			&g.UndoCells,
			&g.UndoScore,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.UpdatedAt = parseTime(updatedAt)
		saves = append(saves, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saves, nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	Variant    string
	GamesCount int
	Wins       int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific variant.
func (s *Store) Stats(variant string) (*GameStats, error) {
	stats := &GameStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.BestTile, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE variant = ? ORDER BY created_at DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
