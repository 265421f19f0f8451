package config

import (
	_ "embed"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultDBPath is where saves and scores live unless configured otherwise.
const DefaultDBPath = "~/.t2048/t2048.db"

// DefaultSlot is the save slot used when none is named.
const DefaultSlot = "default"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Variant: t2048.DefaultVariant,
		},
		Storage: StorageConfig{
			DBPath: DefaultDBPath,
			Slot:   DefaultSlot,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
