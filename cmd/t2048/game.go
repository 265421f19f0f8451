package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Long: `Abandon the game in the current slot and start a new one. A run that
scored points is added to the score table first.

Examples:
  t2048 new
  t2048 new --variant big
  t2048 new --slot work`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

var moveCmd = &cobra.Command{
	Use:   "move <dir>...",
	Short: "Slide the board",
	Long: `Slide the board once per direction given.

Directions:
  left  / h / a
  right / l / d
  up    / k / w
  down  / j / s

Examples:
  t2048 move left
  t2048 move h k k l`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMove,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Take back the last move",
	Args:  cobra.NoArgs,
	Run:   runUndo,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board",
	Args:  cobra.NoArgs,
	Run:   runShow,
}

func runNew(cmd *cobra.Command, _ []string) {
	cfg, store, s := openSession(cmd)
	defer store.Close()

	if err := s.NewGame(cfg.Game.Variant); err != nil {
		fail("%v", err)
	}
	printBoard(os.Stdout, s.Snapshot())
}

func runMove(cmd *cobra.Command, args []string) {
	// Parse everything before touching the save.
	dirs := make([]t2048.Direction, 0, len(args))
	for _, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			fail("%v", err)
		}
		dirs = append(dirs, dir)
	}

	_, store, s := openSession(cmd)
	defer store.Close()

	for _, dir := range dirs {
		res, err := s.Move(dir)
		if err != nil {
			fail("%v", err)
		}
		if res.Rejected {
			fmt.Println("Game over, move ignored.")
			break
		}
		if !res.Moved {
			fmt.Printf("Nothing moves %s.\n", dir)
		}
	}
	printBoard(os.Stdout, s.Snapshot())
}

func runUndo(cmd *cobra.Command, _ []string) {
	_, store, s := openSession(cmd)
	defer store.Close()

	undone, err := s.Undo()
	if err != nil {
		fail("%v", err)
	}
	if !undone {
		fmt.Println("Nothing to undo.")
	}
	printBoard(os.Stdout, s.Snapshot())
}

func runShow(cmd *cobra.Command, _ []string) {
	_, store, s := openSession(cmd)
	defer store.Close()

	printBoard(os.Stdout, s.Snapshot())
}
