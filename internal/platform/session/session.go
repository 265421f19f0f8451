// Package session ties a t2048 game to a save slot. Every state change is
// written back to the store, and finished or abandoned runs land in the
// score table.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Store is the persistence a session needs. *storage.Store satisfies it.
type Store interface {
	LoadGame(slot string) (*storage.SavedGame, error)
	SaveGame(g storage.SavedGame) error
	SaveScore(entry storage.ScoreEntry) (int64, error)
	HighScore(variant string) (int, error)
}

// Options configures Open.
type Options struct {
	Slot    string
	Runtime core.RuntimeConfig
}

// Session is a game bound to a save slot. Not safe for concurrent use.
type Session struct {
	store  Store
	logger *log.Logger
	slot   string
	base   core.RuntimeConfig

	game  *t2048.Game
	runID string
}

// Open loads the slot, or starts a new game when the slot is empty or its
// data cannot be restored. The slot is written before Open returns.
func Open(store Store, logger *log.Logger, opts Options) (*Session, error) {
	if store == nil {
		return nil, errors.New("session: nil store")
	}
	if opts.Slot == "" {
		return nil, errors.New("session: empty slot name")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		store:  store,
		logger: logger.With("slot", opts.Slot),
		slot:   opts.Slot,
		base:   opts.Runtime,
	}

	saved, err := store.LoadGame(opts.Slot)
	if err != nil {
		return nil, fmt.Errorf("session: load slot: %w", err)
	}

	if saved != nil {
		s.restore(saved)
	}
	if s.game == nil {
		game, err := t2048.New(s.base)
		if err != nil {
			return nil, fmt.Errorf("session: new game: %w", err)
		}
		s.game = game
		s.runID = uuid.NewString()
		if saved != nil && saved.Variant == game.Variant() {
			game.SeedHighScore(saved.HighScore)
		}
		s.logger.Info("new game", "run", s.runID, "variant", game.Variant())
	}

	if err := s.seedHighScore(); err != nil {
		return nil, err
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s, nil
}

// restore rebuilds the game from a saved slot. On failure s.game stays nil.
func (s *Session) restore(saved *storage.SavedGame) {
	cfg := s.base
	cfg.Variant = saved.Variant
	cfg.GridSize = saved.GridSize

	data := t2048.SaveData{
		GridSize:  saved.GridSize,
		Score:     saved.Score,
		HighScore: saved.HighScore,
	}
	cells, cellsErr := t2048.ParseCells(saved.Cells)
	if cellsErr == nil {
		data.Cells = cells
	}
	if saved.HasUndo() {
		if undo, err := t2048.ParseCells(saved.UndoCells); err == nil {
			data.Undo = &t2048.UndoData{Cells: undo, Score: saved.UndoScore}
		}
	}

	game, err := t2048.Restore(cfg, data)
	if err != nil {
		s.logger.Warn("ignoring save data", "variant", saved.Variant, "error", err)
		return
	}
	if !game.Restored() {
		// A board holding a single tile is saved as an empty sequence.
		if saved.Cells != "" {
			s.logger.Warn("ignoring save data", "variant", saved.Variant, "error", t2048.ErrInvalidSaveData)
		}
		s.game = game
		s.runID = uuid.NewString()
		s.logger.Info("new game", "run", s.runID, "variant", game.Variant())
		return
	}

	s.game = game
	s.runID = saved.RunID
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	s.logger.Debug("restored game", "run", s.runID, "score", game.Score(), "state", game.State())
}

// seedHighScore lifts the game's high score to the best recorded run.
func (s *Session) seedHighScore() error {
	best, err := s.store.HighScore(s.game.Variant())
	if err != nil {
		return fmt.Errorf("session: high score: %w", err)
	}
	s.game.SeedHighScore(best)
	return nil
}

// Move applies one move and saves the slot. A move that loses the game
// records the run's score.
func (s *Session) Move(dir t2048.Direction) (t2048.MoveResult, error) {
	res, err := s.game.ApplyMove(dir)
	if err != nil {
		return res, err
	}
	if res.Rejected {
		s.logger.Debug("move rejected", "run", s.runID, "dir", dir)
		return res, nil
	}

	s.logger.Debug("move", "run", s.runID, "dir", dir, "moved", res.Moved, "score", s.game.Score())

	if s.game.Lost() {
		if err := s.recordScore(); err != nil {
			return res, err
		}
	}
	if err := s.persist(); err != nil {
		return res, err
	}
	return res, nil
}

// Undo reverts the last move. Returns false when there was nothing to undo.
func (s *Session) Undo() (bool, error) {
	if !s.game.Undo() {
		return false, nil
	}
	s.logger.Debug("undo", "run", s.runID, "score", s.game.Score())
	return true, s.persist()
}

// NewGame abandons the current run and starts another. An empty variant
// keeps the current one. A run with points is recorded before it is
// dropped.
func (s *Session) NewGame(variant string) error {
	if s.game.Score() > 0 {
		if err := s.recordScore(); err != nil {
			return err
		}
	}

	if variant == "" || variant == s.game.Variant() {
		if err := s.game.NewGame(s.game.Grid().Size()); err != nil {
			return fmt.Errorf("session: new game: %w", err)
		}
	} else {
		cfg := s.base
		cfg.Variant = variant
		cfg.GridSize = 0
		game, err := t2048.New(cfg)
		if err != nil {
			return fmt.Errorf("session: new game: %w", err)
		}
		s.game = game
		if err := s.seedHighScore(); err != nil {
			return err
		}
	}

	s.runID = uuid.NewString()
	s.logger.Info("new game", "run", s.runID, "variant", s.game.Variant())
	return s.persist()
}

func (s *Session) recordScore() error {
	entry := storage.ScoreEntry{
		Variant: s.game.Variant(),
		RunID:   s.runID,
		Score:   s.game.Score(),
		MaxTile: s.game.Grid().MaxTile(),
		Won:     s.game.Won(),
	}
	if _, err := s.store.SaveScore(entry); err != nil {
		return fmt.Errorf("session: record score: %w", err)
	}
	s.logger.Info("score recorded", "run", s.runID, "score", entry.Score, "max_tile", entry.MaxTile)
	return nil
}

func (s *Session) persist() error {
	data := s.game.SaveData()
	saved := storage.SavedGame{
		Slot:      s.slot,
		Variant:   s.game.Variant(),
		RunID:     s.runID,
		GridSize:  data.GridSize,
		Cells:     t2048.FormatCells(data.Cells),
		Score:     data.Score,
		HighScore: data.HighScore,
	}
	if data.Undo != nil {
		saved.UndoCells = t2048.FormatCells(data.Undo.Cells)
		saved.UndoScore = data.Undo.Score
	}
	if err := s.store.SaveGame(saved); err != nil {
		return fmt.Errorf("session: save slot: %w", err)
	}
	return nil
}

// Game returns the underlying engine.
func (s *Session) Game() *t2048.Game { return s.game }

// Snapshot returns the current game view.
func (s *Session) Snapshot() t2048.Snapshot { return s.game.Snapshot() }

func (s *Session) RunID() string { return s.runID }
func (s *Session) Slot() string  { return s.slot }
