package layout

import (
	"testing"

	"torus-snake/game/types"
)

func TestCellRect(t *testing.T) {
	l := New(types.Grid{Width: 40, Height: 30}, 20)

	tests := []struct {
		cell types.Cell
		want Rect
		ok   bool
	}{
		{types.Cell{Row: 0, Col: 0}, Rect{X: 0, Y: 0, W: 20, H: 20}, true},
		{types.Cell{Row: 20, Col: 7}, Rect{X: 140, Y: 400, W: 20, H: 20}, true},
		{types.Cell{Row: 29, Col: 39}, Rect{X: 780, Y: 580, W: 20, H: 20}, true},
		{types.Cell{Row: 30, Col: 3}, Rect{}, false},
		{types.Cell{Row: 3, Col: 40}, Rect{}, false},
	}

	for _, tt := range tests {
		got, ok := l.CellRect(tt.cell)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CellRect(%v) = %v, %v; want %v, %v", tt.cell, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSizeAndCenter(t *testing.T) {
	l := New(types.Grid{Width: 40, Height: 30}, 20)

	if w, h := l.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %d, %d; want 800, 600", w, h)
	}
	if x, y := l.Center(200, 100); x != 300 || y != 250 {
		t.Errorf("Center(200, 100) = %d, %d; want 300, 250", x, y)
	}
}
