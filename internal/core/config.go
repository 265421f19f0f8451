package core

// RuntimeConfig contains configuration passed to the engine at creation.
// Zero values select the variant's defaults.
type RuntimeConfig struct {
	Variant  string // Board preset id (default "classic")
	GridSize int    // Overrides the preset's grid dimension
	WinTile  int    // Overrides the preset's winning tile
	Seed     int64  // RNG seed for deterministic play, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Variant: "classic",
		Seed:    0,
	}
}
