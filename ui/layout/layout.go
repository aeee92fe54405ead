// Package layout maps grid cells to window pixels.
package layout

import "torus-snake/game/types"

type Rect struct {
	X, Y, W, H int32
}

type Layout struct {
	Grid     types.Grid
	CellSize int32
}

func New(grid types.Grid, cellSize int) Layout {
	return Layout{Grid: grid, CellSize: int32(cellSize)}
}

// CellRect returns the pixel square for c. Cells outside the grid, including
// the wrap lane at row Height and column Width, report false and must not
// be drawn.
func (l Layout) CellRect(c types.Cell) (Rect, bool) {
	if !l.Grid.Contains(c) {
		return Rect{}, false
	}
	return Rect{
		X: int32(c.Col) * l.CellSize,
		Y: int32(c.Row) * l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}, true
}

// Size is the pixel size of the whole grid.
func (l Layout) Size() (int32, int32) {
	return int32(l.Grid.Width) * l.CellSize, int32(l.Grid.Height) * l.CellSize
}

// Center returns the top-left corner that centers a w x h box on the grid.
func (l Layout) Center(w, h int32) (int32, int32) {
	gw, gh := l.Size()
	return (gw - w) / 2, (gh - h) / 2
}
