package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Read commands from stdin, one or more per line, and print the board
after each line. The game is saved after every move.

Controls:
  h/a/left   k/w/up   j/s/down   l/d/right
  u/z/undo   - Undo the last move
  n/new      - Start a new game
  q/quit     - Quit

Examples:
  t2048 play
  echo "h k k l" | t2048 play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	_, store, s := openSession(cmd)
	defer store.Close()

	if err := playLoop(os.Stdin, os.Stdout, s); err != nil {
		store.Close()
		fail("%v", err)
	}
}

// playLoop drives s from line input until quit or EOF.
func playLoop(in io.Reader, out io.Writer, s *session.Session) error {
	printBoard(out, s.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		for _, token := range strings.Fields(scanner.Text()) {
			quit, err := playAction(out, s, token)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
		printBoard(out, s.Snapshot())
	}
}

// playAction applies one token. Reports whether the player quit.
func playAction(out io.Writer, s *session.Session, token string) (bool, error) {
	action := core.ParseAction(token)

	if dir, ok := t2048.DirectionForAction(action); ok {
		wasWon := s.Game().Won()
		res, err := s.Move(dir)
		if err != nil {
			return false, err
		}
		if res.Rejected {
			fmt.Fprintln(out, "No moves left. Undo or start a new game.")
		}
		if !wasWon && s.Game().Won() {
			fmt.Fprintf(out, "%d! You win.\n", s.Game().WinTile())
		}
		return false, nil
	}

	switch action {
	case core.ActionUndo:
		undone, err := s.Undo()
		if err != nil {
			return false, err
		}
		if !undone {
			fmt.Fprintln(out, "Nothing to undo.")
		}
	case core.ActionRestart:
		if err := s.NewGame(""); err != nil {
			return false, err
		}
	case core.ActionQuit:
		return true, nil
	default:
		fmt.Fprintf(out, "Unknown command %q\n", token)
	}
	return false, nil
}
