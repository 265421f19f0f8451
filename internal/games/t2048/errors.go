package t2048

import "errors"

var (
	// ErrInvalidSaveData is returned when a persisted cell sequence has the
	// wrong length or holds a value that is not a tile. Callers fall back to
	// a fresh grid.
	ErrInvalidSaveData = errors.New("t2048: invalid save data")

	// ErrNoEmptyCells is returned when a spawn finds a full grid. Reaching
	// it from ApplyMove means the move bookkeeping is broken.
	ErrNoEmptyCells = errors.New("t2048: no empty cell for spawn")

	ErrInvalidGridSize  = errors.New("t2048: invalid grid size")
	ErrInvalidWinTile   = errors.New("t2048: invalid win tile")
	ErrUnknownDirection = errors.New("t2048: unknown direction")
	ErrUnknownVariant   = errors.New("t2048: unknown variant")
)
