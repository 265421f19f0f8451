// t2048 is a terminal 2048 game with persistent save slots.
//
// Usage:
//
//	t2048 new                 - Start a new game in the current slot
//	t2048 move <dir>...       - Slide the board (left/right/up/down, h/j/k/l, w/a/s/d)
//	t2048 undo                - Take back the last move
//	t2048 show                - Print the board
//	t2048 play                - Line-oriented interactive play on stdin
//	t2048 scores [variant]    - Show high scores
//	t2048 slots               - List save slots
//	t2048 variants            - List board presets
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--db <path>        - Database path (default: ~/.t2048/t2048.db)
//	--slot <name>      - Save slot (default: default)
//	--variant <id>     - Board preset for new games
//	--seed <value>     - RNG seed for reproducible spawns
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/platform/session"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSlot     string
	flagVariant  string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is a sliding tile puzzle: merge equal tiles until one reaches
the winning value. Games are saved after every move, so each command
picks up where the last one stopped.

Examples:
  t2048 new
  t2048 move left up up
  t2048 undo
  t2048 play
  t2048 new --variant mini
  t2048 scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath, "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", config.DefaultSlot, "Save slot name")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Board preset for new games (see 't2048 variants')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(variantsCmd)
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("slot") {
		cfg.Storage.Slot = flagSlot
	}
	if flags.Changed("variant") {
		cfg.Game.Variant = flagVariant
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

func newLogger(cfg config.Config) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
}

// openStore opens the database named by cfg.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

// openSession loads config, opens the database and the save slot.
// The caller closes the returned store.
func openSession(cmd *cobra.Command) (config.Config, *storage.Store, *session.Session) {
	cfg := loadConfig(cmd)
	logger := newLogger(cfg)
	store := openStore(cfg)

	s, err := session.Open(store, logger, session.Options{
		Slot:    cfg.Storage.Slot,
		Runtime: cfg.Runtime(),
	})
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	return cfg, store, s
}
