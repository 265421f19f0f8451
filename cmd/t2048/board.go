package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// printBoard writes the board as a right-aligned number table followed by
// the score line.
func printBoard(w io.Writer, snap t2048.Snapshot) {
	width := max(len(strconv.Itoa(snap.MaxTile)), 4)
	border := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", snap.GridSize)

	fmt.Fprintln(w, border)
	for _, row := range snap.Cells {
		var b strings.Builder
		b.WriteString("|")
		for _, v := range row {
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, " %*s |", width, cell)
		}
		fmt.Fprintln(w, b.String())
		fmt.Fprintln(w, border)
	}

	fmt.Fprintf(w, "Score: %d  Best: %d  Goal: %d\n", snap.Score, snap.HighScore, snap.WinTile)
	switch snap.State {
	case t2048.StateWin:
		fmt.Fprintln(w, "You reached the goal! Keep sliding or start a new game.")
	case t2048.StateLose:
		if snap.CanUndo {
			fmt.Fprintln(w, "No moves left. Undo or start a new game.")
		} else {
			fmt.Fprintln(w, "No moves left. Start a new game.")
		}
	}
}
