package types

// Cell is a grid position. Rows grow downwards, columns to the right.
type Cell struct {
	Row uint
	Col uint
}

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  uint
	Height uint
}

// Game constants
const (
	CellSize = 20 // Pixels per cell edge
)

// GridFromPixels derives the cell grid for a window of the given pixel size.
// Partial cells at the right and bottom edges are dropped.
func GridFromPixels(pixelWidth, pixelHeight, cellSize int) Grid {
	if cellSize <= 0 || pixelWidth <= 0 || pixelHeight <= 0 {
		return Grid{}
	}
	return Grid{
		Width:  uint(pixelWidth / cellSize),
		Height: uint(pixelHeight / cellSize),
	}
}

// Contains reports whether c lies inside [0, Height) x [0, Width).
func (g Grid) Contains(c Cell) bool {
	return c.Row < g.Height && c.Col < g.Width
}

// Step returns the cell next to c in direction d.
//
// Moving below zero lands on the extent itself (Height or Width) and moving
// past the extent lands on zero, so the rows 0..Height and columns 0..Width
// form a torus.
func (g Grid) Step(c Cell, d Direction) Cell {
	switch d {
	case Up:
		if c.Row == 0 {
			c.Row = g.Height
		} else {
			c.Row--
		}
	case Down:
		if c.Row+1 > g.Height {
			c.Row = 0
		} else {
			c.Row++
		}
	case Left:
		if c.Col == 0 {
			c.Col = g.Width
		} else {
			c.Col--
		}
	case Right:
		if c.Col+1 > g.Width {
			c.Col = 0
		} else {
			c.Col++
		}
	}
	return c
}
