package t2048

import "math/rand"

// Spawn odds: a draw in [0, spawnRange) of at least spawnFourFrom yields a 4.
const (
	spawnRange    = 99
	spawnFourFrom = 90
)

// spawnTile places a 2 or a 4 on a uniformly chosen empty cell of g.
func spawnTile(g Grid, rng *rand.Rand) (SpawnedTile, error) {
	emptyCells := g.EmptyCells()
	if len(emptyCells) == 0 {
		return SpawnedTile{}, ErrNoEmptyCells
	}

	cell := emptyCells[rng.Intn(len(emptyCells))]

	value := 2
	if rng.Intn(spawnRange) >= spawnFourFrom {
		value = 4
	}

	g.set(cell, Tile{Value: value})
	return SpawnedTile{Pos: cell, Value: value}, nil
}
