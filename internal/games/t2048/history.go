package t2048

// history is the single undo slot: the grid and score as they were
// before the last successful move.
type history struct {
	grid  Grid
	score int
}

// UndoData is the persisted form of the undo slot.
type UndoData struct {
	Cells []int
	Score int
}
