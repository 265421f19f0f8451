package t2048

// TileMove records a tile sliding from one cell to another during a move.
// It is informational: renderers use it to animate, the engine ignores it.
type TileMove struct {
	From   Pos
	To     Pos
	Value  int  // Original value (before merge)
	Merged bool // Whether this tile merged with another
}

// SpawnedTile describes the tile added after a successful move.
type SpawnedTile struct {
	Pos   Pos
	Value int
}

// MoveResult is returned by Game.ApplyMove.
type MoveResult struct {
	// Rejected is set when the game was already lost; nothing changed.
	Rejected bool
	// Moved reports whether any tile slid or merged.
	Moved      bool
	ScoreDelta int
	State      State
	Moves      []TileMove
	Spawned    *SpawnedTile
}
