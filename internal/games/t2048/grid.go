package t2048

// Grid size limits accepted by the engine.
const (
	MinGridSize = 2
	MaxGridSize = 8
)

// DefaultGridSize is the classic board dimension.
const DefaultGridSize = 4

// Tile is a settled tile. The zero Tile marks an empty cell.
type Tile struct {
	Value int
}

// Empty reports whether t is the empty tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// Grid is a square board of settled tiles.
type Grid struct {
	size  int
	cells [][]Tile
}

// NewGrid returns an empty grid of the given dimension.
func NewGrid(size int) Grid {
	cells := make([][]Tile, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]Tile, size)
	}
	return Grid{size: size, cells: cells}
}

// GridFromValues builds a grid from a square matrix of tile values.
// It is mostly useful for tests and tools; values are not validated.
func GridFromValues(values [][]int) Grid {
	g := NewGrid(len(values))
	for r, row := range values {
		for c := 0; c < g.size; c++ {
			if c < len(row) {
				g.cells[r][c] = Tile{Value: row[c]}
			}
		}
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return g.size
}

// At returns the tile at (row, col).
func (g Grid) At(row, col int) Tile {
	return g.cells[row][col]
}

func (g Grid) set(p Pos, t Tile) {
	g.cells[p.Row][p.Col] = t
}

// Values returns the tile values as a fresh matrix.
func (g Grid) Values() [][]int {
	out := make([][]int, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]int, g.size)
		for c := 0; c < g.size; c++ {
			out[r][c] = g.cells[r][c].Value
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := NewGrid(g.size)
	for r := 0; r < g.size; r++ {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Equal reports whether both grids hold the same tiles.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Empty() {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	n := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if !g.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically
// adjacent tiles hold equal values.
func (g Grid) HasPossibleMerge() bool {
	for r := 0; r < g.size; r++ {
		for c := 1; c < g.size; c++ {
			if g.cells[r][c].Value == g.cells[r][c-1].Value {
				return true
			}
		}
	}
	for r := 1; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Value == g.cells[r-1][c].Value {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some direction would change the grid.
func (g Grid) CanMove() bool {
	return g.HasEmptyCell() || g.HasPossibleMerge()
}

// Contains reports whether any cell holds exactly value.
func (g Grid) Contains(value int) bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Value == value {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Value > maxVal {
				maxVal = g.cells[r][c].Value
			}
		}
	}
	return maxVal
}

// isTileValue reports whether v is a legal tile value (a power of two >= 2).
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
