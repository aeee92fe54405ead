package entity

import "torus-snake/game/types"

// StartBody is the body every new round begins with, head first.
var StartBody = []types.Cell{
	{Row: 20, Col: 7},
	{Row: 20, Col: 6},
	{Row: 20, Col: 5},
}

// StartDirection is the heading every new round begins with.
const StartDirection = types.Right

type Snake struct {
	Body      []types.Cell
	Direction types.Direction
}

func NewSnake() Snake {
	body := make([]types.Cell, len(StartBody))
	copy(body, StartBody)
	return Snake{
		Body:      body,
		Direction: StartDirection, // Start moving right
	}
}

func (s Snake) GetHead() types.Cell {
	return s.Body[0]
}

func (s Snake) GetTail() types.Cell {
	return s.Body[len(s.Body)-1]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// CanTurn reports whether the snake may head in dir. A 180-degree turn is
// refused once the snake has a neck to run into.
func (s Snake) CanTurn(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	return len(s.Body) <= 1 || dir != s.Direction.Opposite()
}

// SetDirection returns the snake heading in dir, or s unchanged when
// CanTurn refuses it.
func (s Snake) SetDirection(dir types.Direction) Snake {
	if !s.CanTurn(dir) {
		return s
	}
	s.Direction = dir
	return s
}

// Advance returns the snake one cell further along its heading. Every
// segment after the head takes its predecessor's old cell; with grow set the
// old tail cell is kept as a new last segment. The result never shares its
// body with s.
func (s Snake) Advance(grid types.Grid, grow bool) Snake {
	n := len(s.Body)
	if grow {
		n++
	}
	body := make([]types.Cell, n)
	body[0] = grid.Step(s.Body[0], s.Direction)
	copy(body[1:], s.Body[:len(s.Body)-1])
	if grow {
		body[n-1] = s.GetTail()
	}
	return Snake{Body: body, Direction: s.Direction}
}
