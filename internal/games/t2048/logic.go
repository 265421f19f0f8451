package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts direction names, vi keys (h/j/k/l) and WASD.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "k", "w":
		return DirUp, nil
	case "down", "j", "s":
		return DirDown, nil
	case "left", "h", "a":
		return DirLeft, nil
	case "right", "l", "d":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// movingTile is a tile in flight during a single move.
type movingTile struct {
	value int
	from  Pos
}

// slot is a cell of the working board. Two tiles mean a pending merge;
// that state never outlives a single move.
type slot struct {
	tiles []movingTile
}

type board [][]slot

func newBoard(g Grid) board {
	b := make(board, g.size)
	for r := 0; r < g.size; r++ {
		b[r] = make([]slot, g.size)
		for c := 0; c < g.size; c++ {
			if t := g.cells[r][c]; !t.Empty() {
				b[r][c].tiles = []movingTile{{value: t.Value, from: Pos{Row: r, Col: c}}}
			}
		}
	}
	return b
}

// mirror reverses the column order of every row. It is its own inverse.
func mirror[T any](m [][]T) [][]T {
	n := len(m)
	out := make([][]T, n)
	for r := 0; r < n; r++ {
		out[r] = make([]T, n)
		for c := 0; c < n; c++ {
			out[r][n-1-c] = m[r][c]
		}
	}
	return out
}

// rotateLeft turns the matrix a quarter counterclockwise.
func rotateLeft[T any](m [][]T) [][]T {
	n := len(m)
	out := make([][]T, n)
	for r := 0; r < n; r++ {
		out[r] = make([]T, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[n-1-c][r] = m[r][c]
		}
	}
	return out
}

// rotateRight turns the matrix a quarter clockwise; it undoes rotateLeft.
func rotateRight[T any](m [][]T) [][]T {
	n := len(m)
	out := make([][]T, n)
	for r := 0; r < n; r++ {
		out[r] = make([]T, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c][n-1-r] = m[r][c]
		}
	}
	return out
}

// slideLeft slides every row of b toward column 0 in place.
// Returns whether any tile moved or became a pending merge.
func slideLeft(b board) bool {
	modified := false
	for _, row := range b {
		if slideRowLeft(row) {
			modified = true
		}
	}
	return modified
}

// slideRowLeft processes tiles left to right. Each tile probes toward
// column 0, nearest cell first: pending merges are skipped, empty cells
// are taken, an equal single tile becomes a pending merge and ends the
// probe, any other tile ends the probe.
func slideRowLeft(row []slot) bool {
	modified := false
	for c := range row {
		if len(row[c].tiles) != 1 {
			continue
		}
		src := c
		for p := c - 1; p >= 0; p-- {
			target := &row[p]
			if len(target.tiles) > 1 {
				continue
			}
			if len(target.tiles) == 0 {
				target.tiles = row[src].tiles
				row[src].tiles = nil
				src = p
				modified = true
				continue
			}
			if target.tiles[0].value == row[src].tiles[0].value {
				target.tiles = append(target.tiles, row[src].tiles[0])
				row[src].tiles = nil
				modified = true
			}
			break
		}
	}
	return modified
}

// slide runs the slide phase for dir on a working copy of g.
// The returned board is back in g's orientation.
func slide(g Grid, dir Direction) (board, bool) {
	b := newBoard(g)
	var modified bool

	switch dir {
	case DirLeft:
		modified = slideLeft(b)
	case DirRight:
		b = mirror(b)
		modified = slideLeft(b)
		b = mirror(b)
	case DirUp:
		b = rotateLeft(b)
		modified = slideLeft(b)
		b = rotateRight(b)
	case DirDown:
		b = rotateRight(b)
		modified = slideLeft(b)
		b = rotateLeft(b)
	}

	return b, modified
}

// collect coalesces pending merges into settled tiles.
// Returns the settled grid, the value of every merge in scan order and
// the moves of tiles that changed position.
func collect(b board) (Grid, []int, []TileMove) {
	g := NewGrid(len(b))
	var merges []int
	var moves []TileMove

	for r, row := range b {
		for c, s := range row {
			if len(s.tiles) == 0 {
				continue
			}
			to := Pos{Row: r, Col: c}
			merged := len(s.tiles) > 1
			sum := 0
			for _, t := range s.tiles {
				sum += t.value
				if t.from != to {
					moves = append(moves, TileMove{From: t.from, To: to, Value: t.value, Merged: merged})
				}
			}
			if merged {
				merges = append(merges, sum)
			}
			g.set(to, Tile{Value: sum})
		}
	}

	return g, merges, moves
}

// Slide performs a move in the given direction without spawning.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	b, modified := slide(g, dir)
	if !modified {
		return g.Clone(), 0, false
	}
	next, merges, _ := collect(b)
	score := 0
	for _, m := range merges {
		score += m
	}
	return next, score, true
}
