package t2048

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := GridFromValues([][]int{
		{2, 0, 0, 4},
		{0, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 2048},
	})

	seq := Encode(g)
	want := []int{2, 0, 0, 4, 0, 0, 0, 0, 0, 128, 0, 0, 0, 0, 0, 2048}
	if !slices.Equal(seq, want) {
		t.Fatalf("Encode = %v, want %v", seq, want)
	}

	back, err := Decode(seq, 4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("Decode(Encode(g)) = %v, want %v", back.Values(), g.Values())
	}
}

func TestEncodeSingleTileIsEmpty(t *testing.T) {
	g := NewGrid(4)
	g.set(Pos{Row: 2, Col: 1}, Tile{Value: 2})

	seq := Encode(g)
	if len(seq) != 0 {
		t.Fatalf("Encode of single-tile grid = %v, want empty", seq)
	}

	back, err := Decode(seq, 4)
	if !errors.Is(err, ErrInvalidSaveData) {
		t.Errorf("Decode(empty) error = %v, want ErrInvalidSaveData", err)
	}
	if back.TileCount() != 0 || back.Size() != 4 {
		t.Errorf("Decode(empty) should give an empty 4x4 grid, got %v", back.Values())
	}

	// The raw cell view is unaffected.
	if got := Cells(g); len(got) != 16 || got[9] != 2 {
		t.Errorf("Cells = %v", got)
	}
}

func TestEncodeEmptyGrid(t *testing.T) {
	seq := Encode(NewGrid(3))
	if len(seq) != 9 {
		t.Fatalf("Encode of empty grid has %d cells, want 9", len(seq))
	}
	for _, v := range seq {
		if v != 0 {
			t.Fatalf("Encode of empty grid = %v", seq)
		}
	}
}

func TestDecodeRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
	}{
		{"too short", []int{2, 2, 2}},
		{"too long", make([]int, 17)},
		{"not a power of two", []int{2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"one is not a tile", []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"negative", []int{-2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(tt.seq, 4)
			if !errors.Is(err, ErrInvalidSaveData) {
				t.Fatalf("Decode error = %v, want ErrInvalidSaveData", err)
			}
			if g.Size() != 4 || g.TileCount() != 0 {
				t.Errorf("Decode should fall back to an empty grid, got %v", g.Values())
			}
		})
	}
}

func TestDecodeRejectsBadSize(t *testing.T) {
	if _, err := Decode(nil, 0); !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("Decode size 0 error = %v, want ErrInvalidGridSize", err)
	}
}

func TestFormatParseCells(t *testing.T) {
	seq := []int{0, 2, 4, 0, 1024, 0, 0, 8, 0}

	s := FormatCells(seq)
	if s != "0 2 4 0 1024 0 0 8 0" {
		t.Errorf("FormatCells = %q", s)
	}

	back, err := ParseCells(s)
	if err != nil {
		t.Fatalf("ParseCells: %v", err)
	}
	if !slices.Equal(back, seq) {
		t.Errorf("ParseCells = %v, want %v", back, seq)
	}

	empty, err := ParseCells("  ")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseCells(blank) = %v, %v", empty, err)
	}

	if _, err := ParseCells("2 x 4"); !errors.Is(err, ErrInvalidSaveData) {
		t.Errorf("ParseCells(garbage) error = %v, want ErrInvalidSaveData", err)
	}
}

func TestSpawnOnFullGrid(t *testing.T) {
	g := GridFromValues([][]int{
		{2, 4},
		{4, 2},
	})
	if _, err := spawnTile(g, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoEmptyCells) {
		t.Errorf("spawnTile on full grid error = %v, want ErrNoEmptyCells", err)
	}
}

func TestSpawnOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(31337))
	const draws = 20000

	fours := 0
	for i := 0; i < draws; i++ {
		g := NewGrid(4)
		spawned, err := spawnTile(g, rng)
		if err != nil {
			t.Fatalf("spawnTile: %v", err)
		}
		if g.At(spawned.Pos.Row, spawned.Pos.Col).Value != spawned.Value {
			t.Fatalf("spawned tile %+v not on the grid", spawned)
		}
		switch spawned.Value {
		case 2:
		case 4:
			fours++
		default:
			t.Fatalf("spawned value %d", spawned.Value)
		}
	}

	// Expected share is 9/99, about 9.1%.
	share := float64(fours) / draws
	if share < 0.07 || share > 0.11 {
		t.Errorf("share of 4s = %.3f, want about 0.091", share)
	}
}

func TestSpawnOnlyUsesEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		g := GridFromValues([][]int{
			{2, 4, 8},
			{16, 0, 32},
			{64, 128, 256},
		})
		spawned, err := spawnTile(g, rng)
		if err != nil {
			t.Fatalf("spawnTile: %v", err)
		}
		if spawned.Pos != (Pos{Row: 1, Col: 1}) {
			t.Fatalf("spawned at %+v, want the only empty cell", spawned.Pos)
		}
	}
}
