package t2048

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/t2048/internal/core"
)

// Game owns one board and applies moves to it. A Game is not safe for
// concurrent use; callers serialize moves.
type Game struct {
	variant string
	winTile int
	rng     *rand.Rand

	grid      Grid
	score     int
	highScore int

	won      bool
	lost     bool
	restored bool

	history *history // nil when there is nothing to undo
}

// SaveData is everything a caller persists to resume a game.
type SaveData struct {
	GridSize  int
	Cells     []int // Encode output; may be empty
	Score     int
	HighScore int
	Undo      *UndoData
}

// New creates a game from cfg and starts it with one spawned tile.
func New(cfg core.RuntimeConfig) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.NewGame(g.grid.size); err != nil {
		return nil, err
	}
	return g, nil
}

// Restore resumes a game from persisted data. Save data that does not
// decode is ignored and a fresh game is started; Restored reports which
// path was taken. The high score survives either way.
func Restore(cfg core.RuntimeConfig, save SaveData) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	g.highScore = max(save.HighScore, 0)

	size := save.GridSize
	if size == 0 {
		size = g.grid.size
	}
	grid, err := Decode(save.Cells, size)
	if err != nil || save.Score < 0 {
		if err := g.NewGame(g.grid.size); err != nil {
			return nil, err
		}
		return g, nil
	}

	g.grid = grid
	g.score = save.Score
	g.highScore = max(g.highScore, g.score)
	g.restored = true

	if save.Undo != nil {
		if prev, err := Decode(save.Undo.Cells, size); err == nil {
			g.history = &history{grid: prev, score: save.Undo.Score}
		}
	}

	g.refreshState()
	return g, nil
}

func newGame(cfg core.RuntimeConfig) (*Game, error) {
	id := cfg.Variant
	if id == "" {
		id = DefaultVariant
	}
	variant, err := VariantByID(id)
	if err != nil {
		return nil, err
	}

	size := variant.GridSize
	if cfg.GridSize > 0 {
		size = cfg.GridSize
	}
	if size < MinGridSize || size > MaxGridSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}

	winTile := variant.WinTile
	if cfg.WinTile > 0 {
		winTile = cfg.WinTile
	}
	if winTile < 4 || !isTileValue(winTile) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWinTile, winTile)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		variant: variant.ID,
		winTile: winTile,
		rng:     rand.New(rand.NewSource(seed)),
		grid:    NewGrid(size),
	}, nil
}

// NewGame discards the board and starts over on an empty size x size grid
// with one spawned tile. The high score is kept.
func (g *Game) NewGame(size int) error {
	if size < MinGridSize || size > MaxGridSize {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}

	g.grid = NewGrid(size)
	g.score = 0
	g.won = false
	g.lost = false
	g.restored = false
	g.history = nil

	_, err := g.Spawn()
	return err
}

// Spawn adds a 2 or a 4 to a random empty cell.
func (g *Game) Spawn() (SpawnedTile, error) {
	return spawnTile(g.grid, g.rng)
}

// ApplyMove slides the board in dir. A lost game rejects the move; a move
// that changes nothing leaves the board, score and undo slot untouched.
// An error means the board could not take the follow-up spawn, which
// signals broken bookkeeping rather than a player mistake.
func (g *Game) ApplyMove(dir Direction) (MoveResult, error) {
	if g.lost {
		return MoveResult{Rejected: true, State: g.State()}, nil
	}
	if dir < DirUp || dir > DirRight {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	before := &history{grid: g.grid.Clone(), score: g.score}

	b, modified := slide(g.grid, dir)
	if !modified {
		if !g.grid.CanMove() {
			g.lost = true
		}
		return MoveResult{State: g.State()}, nil
	}

	g.history = before

	next, merges, moves := collect(b)
	g.grid = next

	delta := 0
	for _, m := range merges {
		delta += m
		g.score += m
		g.highScore = max(g.highScore, g.score)
	}

	spawned, err := g.Spawn()
	if err != nil {
		return MoveResult{}, fmt.Errorf("t2048: spawn after %s: %w", dir, err)
	}

	g.refreshState()

	return MoveResult{
		Moved:      true,
		ScoreDelta: delta,
		State:      g.State(),
		Moves:      moves,
		Spawned:    &spawned,
	}, nil
}

// Undo restores the board and score from before the last move.
// Returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	if g.history == nil {
		return false
	}

	g.grid = g.history.grid
	g.score = g.history.score
	g.history = nil

	g.won = g.grid.Contains(g.winTile)
	g.lost = !g.grid.CanMove()
	return true
}

// refreshState re-evaluates win and lose after the board changed.
// Win is sticky until undo or a new game.
func (g *Game) refreshState() {
	if g.grid.Contains(g.winTile) {
		g.won = true
	}
	g.lost = !g.grid.CanMove()
}

// State returns the terminal state. Win is reported ahead of Lose.
func (g *Game) State() State {
	switch {
	case g.won:
		return StateWin
	case g.lost:
		return StateLose
	default:
		return StatePlaying
	}
}

// SaveData returns the persisted form of the game.
func (g *Game) SaveData() SaveData {
	save := SaveData{
		GridSize:  g.grid.size,
		Cells:     Encode(g.grid),
		Score:     g.score,
		HighScore: g.highScore,
	}
	if g.history != nil {
		save.Undo = &UndoData{Cells: Cells(g.history.grid), Score: g.history.score}
	}
	return save
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid { return g.grid.Clone() }

func (g *Game) Score() int      { return g.score }
func (g *Game) HighScore() int  { return g.highScore }
func (g *Game) WinTile() int    { return g.winTile }
func (g *Game) Variant() string { return g.variant }
func (g *Game) Won() bool       { return g.won }
func (g *Game) Lost() bool      { return g.lost }
func (g *Game) CanUndo() bool   { return g.history != nil }

// SeedHighScore raises the high score to at least v, for callers that
// track the best score outside the game.
func (g *Game) SeedHighScore(v int) {
	g.highScore = max(g.highScore, v)
}

// Restored reports whether the board came from save data.
func (g *Game) Restored() bool { return g.restored }

// DirectionForAction maps a directional action to a Direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}
