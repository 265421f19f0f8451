package t2048

import (
	"slices"
	"testing"
)

// slideFirstRow slides a single row left on an otherwise empty grid.
func slideFirstRow(row []int) ([]int, int, bool) {
	values := make([][]int, len(row))
	values[0] = row
	for r := 1; r < len(row); r++ {
		values[r] = make([]int, len(row))
	}
	next, score, changed := Slide(GridFromValues(values), DirLeft)
	return next.Values()[0], score, changed
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge result stays beside equal neighbour",
			input:    []int{8, 4, 4, 0},
			expected: []int{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			// The probe passes over a pending merge and lands on the
			// equal tile beyond it.
			name:     "probe skips pending merge",
			input:    []int{4, 2, 2, 4},
			expected: []int{8, 4, 0, 0},
			score:    12,
		},
		{
			name:     "five wide run",
			input:    []int{2, 2, 2, 2, 2},
			expected: []int{4, 4, 2, 0, 0},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, _ := slideFirstRow(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("slide(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slide(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := GridFromValues([][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	})

	result, score, changed := Slide(board, DirLeft)

	if !result.Equal(expected) {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result.Values(), expected.Values())
	}

	if !changed {
		t.Error("Slide left should indicate board changed")
	}

	expectedScore := 4 + 8 + 8
	if score != expectedScore {
		t.Errorf("Slide left score = %d, want %d", score, expectedScore)
	}
}

func TestSlideRight(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := GridFromValues([][]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	})

	result, _, changed := Slide(board, DirRight)

	if !result.Equal(expected) {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result.Values(), expected.Values())
	}

	if !changed {
		t.Error("Slide right should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := GridFromValues([][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	result, _, changed := Slide(board, DirUp)

	if !result.Equal(expected) {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result.Values(), expected.Values())
	}

	if !changed {
		t.Error("Slide up should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	expected := GridFromValues([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	})

	result, _, changed := Slide(board, DirDown)

	if !result.Equal(expected) {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result.Values(), expected.Values())
	}

	if !changed {
		t.Error("Slide down should indicate board changed")
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	board := GridFromValues([][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Sliding left when tiles are already left-aligned
	_, _, changed := Slide(board, DirLeft)

	if changed {
		t.Error("Slide left should not change already left-aligned tiles")
	}
}

func TestGameOver(t *testing.T) {
	// Board with no empty cells and no possible merges
	board := GridFromValues([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	if board.CanMove() {
		t.Error("Board with no moves should be game over")
	}

	// Board with no empty cells but possible merges
	boardWithMerge := GridFromValues([][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	if !boardWithMerge.CanMove() {
		t.Error("Board with possible merge should not be game over")
	}

	// Vertical pair only
	boardWithVerticalMerge := GridFromValues([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 16},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	if !boardWithVerticalMerge.CanMove() {
		t.Error("Board with vertical merge should not be game over")
	}

	// Board with empty cells
	boardWithEmpty := GridFromValues([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	})

	if !boardWithEmpty.CanMove() {
		t.Error("Board with empty cell should not be game over")
	}
}

func TestMaxTile(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := GridFromValues([][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Pos{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want row 0 col 1", cells[0])
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	result, score, _ := slideFirstRow([]int{4, 4, 4, 4})

	expected := []int{8, 8, 0, 0}
	if !slices.Equal(result, expected) {
		t.Errorf("slide = %v, want %v (one merge per tile per move)", result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("slide score = %d, want 16", score)
	}
}

func TestTransformsAreInversePairs(t *testing.T) {
	for n := MinGridSize; n <= 5; n++ {
		m := make([][]int, n)
		for r := 0; r < n; r++ {
			m[r] = make([]int, n)
			for c := 0; c < n; c++ {
				m[r][c] = r*n + c
			}
		}

		if got := rotateRight(rotateLeft(m)); !matrixEqual(got, m) {
			t.Errorf("n=%d: rotateRight(rotateLeft(m)) = %v", n, got)
		}
		if got := rotateLeft(rotateRight(m)); !matrixEqual(got, m) {
			t.Errorf("n=%d: rotateLeft(rotateRight(m)) = %v", n, got)
		}
		if got := mirror(mirror(m)); !matrixEqual(got, m) {
			t.Errorf("n=%d: mirror(mirror(m)) = %v", n, got)
		}
		if got := rotateLeft(rotateLeft(rotateLeft(rotateLeft(m)))); !matrixEqual(got, m) {
			t.Errorf("n=%d: four left rotations = %v", n, got)
		}
	}
}

func TestRotateLeftTurnsColumnsIntoRows(t *testing.T) {
	m := [][]int{
		{1, 2},
		{3, 4},
	}
	want := [][]int{
		{2, 4},
		{1, 3},
	}
	if got := rotateLeft(m); !matrixEqual(got, want) {
		t.Errorf("rotateLeft = %v, want %v", got, want)
	}
}

func TestSlideReportsMoves(t *testing.T) {
	g := GridFromValues([][]int{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	})

	b, modified := slide(g, DirLeft)
	if !modified {
		t.Fatal("slide should report a modification")
	}
	_, merges, moves := collect(b)

	if !slices.Equal(merges, []int{4}) {
		t.Errorf("merges = %v, want [4]", merges)
	}

	want := []TileMove{
		{From: Pos{0, 2}, To: Pos{0, 0}, Value: 2, Merged: true},
		{From: Pos{0, 3}, To: Pos{0, 0}, Value: 2, Merged: true},
		{From: Pos{3, 3}, To: Pos{3, 0}, Value: 8},
	}
	if !slices.Equal(moves, want) {
		t.Errorf("moves = %+v, want %+v", moves, want)
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up": DirUp, "K": DirUp, "w": DirUp,
		"down": DirDown, "j": DirDown, "s": DirDown,
		"Left": DirLeft, "h": DirLeft, "a": DirLeft,
		"right": DirRight, "l": DirRight, "d": DirRight,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestVariants(t *testing.T) {
	v, err := VariantByID("classic")
	if err != nil {
		t.Fatalf("VariantByID(classic): %v", err)
	}
	if v.GridSize != 4 || v.WinTile != 2048 {
		t.Errorf("classic = %+v, want 4x4 to 2048", v)
	}

	if _, err := VariantByID("nope"); err == nil {
		t.Error("VariantByID should reject unknown ids")
	}

	ids := VariantIDs()
	if len(ids) != len(Variants) || ids[0] != DefaultVariant {
		t.Errorf("VariantIDs() = %v", ids)
	}
}

func matrixEqual(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
}
