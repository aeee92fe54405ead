package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
)

// KeyMap lists the raylib keys bound to each action.
type KeyMap struct {
	Up, Down, Left, Right []int32
	Restart               []int32
}

var DefaultKeys = KeyMap{
	Up:      []int32{rl.KeyUp, rl.KeyW},
	Down:    []int32{rl.KeyDown, rl.KeyS},
	Left:    []int32{rl.KeyLeft, rl.KeyA},
	Right:   []int32{rl.KeyRight, rl.KeyD},
	Restart: []int32{rl.KeyR},
}

// Input latches key state between simulation ticks so a tap shorter than a
// tick is not lost.
type Input struct {
	keys    KeyMap
	pending game.Input
}

func NewInput(keys KeyMap) *Input {
	return &Input{keys: keys}
}

// Poll samples the keyboard once per frame.
func (in *Input) Poll() {
	in.pending = in.pending.Merge(game.Input{
		Up:      anyDown(in.keys.Up),
		Down:    anyDown(in.keys.Down),
		Left:    anyDown(in.keys.Left),
		Right:   anyDown(in.keys.Right),
		Restart: anyDown(in.keys.Restart),
	})
}

// Drain returns everything latched since the last Drain and clears it.
func (in *Input) Drain() game.Input {
	out := in.pending
	in.pending = game.Input{}
	return out
}

func anyDown(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) || rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
