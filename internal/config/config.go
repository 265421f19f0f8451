// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig selects the board preset and its overrides.
type GameConfig struct {
	Variant  string `yaml:"variant"`
	GridSize int    `yaml:"grid_size"` // 0 = use preset
	WinTile  int    `yaml:"win_tile"`  // 0 = use preset
	Seed     int64  `yaml:"seed"`      // 0 = time based
}

// StorageConfig locates the save database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Slot   string `yaml:"slot"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Runtime converts the game section into engine options.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Variant:  c.Game.Variant,
		GridSize: c.Game.GridSize,
		WinTile:  c.Game.WinTile,
		Seed:     c.Game.Seed,
	}
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := t2048.VariantByID(c.Game.Variant); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Game.GridSize != 0 && (c.Game.GridSize < t2048.MinGridSize || c.Game.GridSize > t2048.MaxGridSize) {
		return fmt.Errorf("%w: grid_size %d outside [%d,%d]",
			ErrInvalidConfig, c.Game.GridSize, t2048.MinGridSize, t2048.MaxGridSize)
	}
	if w := c.Game.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("%w: win_tile %d is not a power of two >= 4", ErrInvalidConfig, w)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalidConfig)
	}
	if c.Storage.Slot == "" {
		return fmt.Errorf("%w: storage.slot is empty", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}
