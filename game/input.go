package game

import "torus-snake/game/types"

// Input is the set of keys held (or pressed) since the previous tick.
type Input struct {
	Up, Down, Left, Right bool
	Restart               bool
}

// Directions lists the headings of the held movement keys, most preferred
// first. Keys are checked in the order Up, Left, Right, Down and a later
// key beats an earlier one, so Down comes first when held.
func (in Input) Directions() []types.Direction {
	var dirs []types.Direction
	if in.Down {
		dirs = append(dirs, types.Down)
	}
	if in.Right {
		dirs = append(dirs, types.Right)
	}
	if in.Left {
		dirs = append(dirs, types.Left)
	}
	if in.Up {
		dirs = append(dirs, types.Up)
	}
	return dirs
}

// Merge ORs other into in, for latching key presses between ticks.
func (in Input) Merge(other Input) Input {
	return Input{
		Up:      in.Up || other.Up,
		Down:    in.Down || other.Down,
		Left:    in.Left || other.Left,
		Right:   in.Right || other.Right,
		Restart: in.Restart || other.Restart,
	}
}
