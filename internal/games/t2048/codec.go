package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Cells returns the row-major tile values of g, 0 for empty cells.
func Cells(g Grid) []int {
	out := make([]int, 0, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			out = append(out, g.cells[r][c].Value)
		}
	}
	return out
}

// Encode returns the persisted form of g: its row-major cell values.
// A grid holding exactly one tile encodes to an empty sequence, so a game
// that has only seen its opening spawn is not saved as progress.
func Encode(g Grid) []int {
	if g.TileCount() == 1 {
		return []int{}
	}
	return Cells(g)
}

// Decode rebuilds a size x size grid from a row-major sequence.
// On a length mismatch or a non-tile value it returns an empty grid
// together with ErrInvalidSaveData.
func Decode(seq []int, size int) (Grid, error) {
	if size < MinGridSize || size > MaxGridSize {
		return Grid{}, fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}
	g := NewGrid(size)
	if len(seq) != size*size {
		return g, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidSaveData, len(seq), size*size)
	}
	for i, v := range seq {
		if v != 0 && !isTileValue(v) {
			return NewGrid(size), fmt.Errorf("%w: cell %d holds %d", ErrInvalidSaveData, i, v)
		}
		g.cells[i/size][i%size] = Tile{Value: v}
	}
	return g, nil
}

// FormatCells renders a cell sequence as space-separated integers.
func FormatCells(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// ParseCells is the inverse of FormatCells. Blank input yields an empty
// sequence.
func ParseCells(s string) ([]int, error) {
	fields := strings.Fields(s)
	seq := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSaveData, err)
		}
		seq[i] = v
	}
	return seq, nil
}
