package entity

import (
	"reflect"
	"testing"

	"torus-snake/game/types"
)

var grid = types.Grid{Width: 40, Height: 30}

func TestNewSnake(t *testing.T) {
	s := NewSnake()
	if !reflect.DeepEqual(s.Body, StartBody) {
		t.Errorf("Body = %v, want %v", s.Body, StartBody)
	}
	if s.Direction != types.Right {
		t.Errorf("Direction = %v, want right", s.Direction)
	}

	s.Body[0] = types.Cell{}
	if StartBody[0] == (types.Cell{}) {
		t.Fatal("NewSnake shares its body with StartBody")
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	old := Snake{
		Body:      []types.Cell{{Row: 20, Col: 7}, {Row: 20, Col: 5}, {Row: 20, Col: 6}},
		Direction: types.Right,
	}

	got := old.Advance(grid, false)

	want := []types.Cell{{Row: 20, Col: 8}, {Row: 20, Col: 7}, {Row: 20, Col: 5}}
	if !reflect.DeepEqual(got.Body, want) {
		t.Fatalf("Body = %v, want %v", got.Body, want)
	}
	if got.Len() != old.Len() {
		t.Errorf("Len = %d, want %d", got.Len(), old.Len())
	}
	for i := 1; i < got.Len(); i++ {
		if got.Body[i] != old.Body[i-1] {
			t.Errorf("Body[%d] = %v, want old Body[%d] = %v", i, got.Body[i], i-1, old.Body[i-1])
		}
	}
}

func TestAdvanceGrows(t *testing.T) {
	old := Snake{
		Body:      []types.Cell{{Row: 20, Col: 7}, {Row: 20, Col: 5}, {Row: 20, Col: 6}},
		Direction: types.Right,
	}

	got := old.Advance(grid, true)

	want := []types.Cell{{Row: 20, Col: 8}, {Row: 20, Col: 7}, {Row: 20, Col: 5}, {Row: 20, Col: 6}}
	if !reflect.DeepEqual(got.Body, want) {
		t.Fatalf("Body = %v, want %v", got.Body, want)
	}
	if got.Len() != old.Len()+1 {
		t.Errorf("Len = %d, want %d", got.Len(), old.Len()+1)
	}
	if got.GetTail() != old.GetTail() {
		t.Errorf("tail = %v, want old tail %v", got.GetTail(), old.GetTail())
	}
}

func TestAdvanceSingleCell(t *testing.T) {
	old := Snake{Body: []types.Cell{{Row: 3, Col: 3}}, Direction: types.Up}

	got := old.Advance(grid, false)
	if !reflect.DeepEqual(got.Body, []types.Cell{{Row: 2, Col: 3}}) {
		t.Errorf("Body = %v", got.Body)
	}

	grown := old.Advance(grid, true)
	if !reflect.DeepEqual(grown.Body, []types.Cell{{Row: 2, Col: 3}, {Row: 3, Col: 3}}) {
		t.Errorf("grown Body = %v", grown.Body)
	}
}

func TestAdvanceWraps(t *testing.T) {
	old := Snake{Body: []types.Cell{{Row: 0, Col: 4}, {Row: 1, Col: 4}}, Direction: types.Up}

	got := old.Advance(grid, false)
	if got.GetHead() != (types.Cell{Row: grid.Height, Col: 4}) {
		t.Errorf("head = %v, want row %d", got.GetHead(), grid.Height)
	}
}

func TestAdvanceDoesNotAlias(t *testing.T) {
	old := NewSnake()
	before := append([]types.Cell(nil), old.Body...)

	next := old.Advance(grid, false)
	next.Body[1] = types.Cell{Row: 99, Col: 99}

	if !reflect.DeepEqual(old.Body, before) {
		t.Errorf("old body changed to %v", old.Body)
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name string
		body []types.Cell
		from types.Direction
		to   types.Direction
		want types.Direction
	}{
		{"turn", StartBody, types.Right, types.Up, types.Up},
		{"same", StartBody, types.Right, types.Right, types.Right},
		{"reverse refused", StartBody, types.Right, types.Left, types.Right},
		{"reverse single cell", []types.Cell{{Row: 1, Col: 1}}, types.Right, types.Left, types.Left},
		{"invalid ignored", StartBody, types.Down, types.Direction(0), types.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snake{Body: tt.body, Direction: tt.from}
			if got := s.SetDirection(tt.to).Direction; got != tt.want {
				t.Errorf("SetDirection(%v) from %v = %v, want %v", tt.to, tt.from, got, tt.want)
			}
			if got := s.CanTurn(tt.to); got != (tt.to == tt.want && tt.to.Valid()) {
				t.Errorf("CanTurn(%v) from %v = %v", tt.to, tt.from, got)
			}
		})
	}
}
