package t2048

// State is the terminal state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWin     State = "win"
	StateLose    State = "lose"
)

// Snapshot is a read-only view of a game for renderers and tools.
type Snapshot struct {
	Variant   string
	GridSize  int
	WinTile   int
	Cells     [][]int
	Score     int
	HighScore int
	MaxTile   int
	State     State
	CanUndo   bool
}

// Snapshot returns the current game view.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:   g.variant,
		GridSize:  g.grid.size,
		WinTile:   g.winTile,
		Cells:     g.grid.Values(),
		Score:     g.score,
		HighScore: g.highScore,
		MaxTile:   g.grid.MaxTile(),
		State:     g.State(),
		CanUndo:   g.history != nil,
	}
}
