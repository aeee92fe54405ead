package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/ui/layout"
)

var (
	SnakeColor = rl.Color{R: 70, G: 200, B: 120, A: 255}
	HeadColor  = rl.Color{R: 100, G: 255, B: 150, A: 255}
	FoodColor  = rl.Red

	HUDBackColor = rl.Color{R: 40, G: 40, B: 40, A: 255}
)

const (
	hudFontSize  = 20
	lossFontSize = 60
	textPadding  = 10
)

type Renderer struct {
	layout layout.Layout
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	return &Renderer{layout: layout.New(grid, cellSize)}
}

func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// HUD goes under the cells so it never hides the snake or food in row 0
	r.drawHUD(v)

	// Draw snake body, tail first so the head ends up on top
	for i := len(v.Body) - 1; i >= 0; i-- {
		rect, ok := r.layout.CellRect(v.Body[i])
		if !ok {
			continue
		}
		color := SnakeColor
		if i == 0 {
			color = HeadColor
		}
		rl.DrawRectangle(rect.X, rect.Y, rect.W, rect.H, color)
		if i == 0 {
			r.drawHeading(rect, v.Direction)
		}
	}

	if rect, ok := r.layout.CellRect(v.Food); ok {
		rl.DrawRectangle(rect.X, rect.Y, rect.W, rect.H, FoodColor)
	}

	if v.Ended {
		r.drawLoss(v)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawHUD(v game.View) {
	text := fmt.Sprintf("Length: %d  Best: %d", v.Length, v.BestLength)
	w := rl.MeasureText(text, hudFontSize)
	rl.DrawRectangle(textPadding/2, textPadding/2, w+textPadding, hudFontSize+textPadding, HUDBackColor)
	rl.DrawText(text, textPadding, textPadding, hudFontSize, rl.White)
}

// drawHeading draws a small triangle pointing the way the head moves.
func (r *Renderer) drawHeading(rect layout.Rect, dir types.Direction) {
	x, y := float32(rect.X), float32(rect.Y)
	size := float32(rect.W)
	half := size / 2

	// raylib wants counter-clockwise vertices
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawLoss(v game.View) {
	gw, gh := r.layout.Size()
	rl.DrawRectangle(0, 0, gw, gh, rl.Color{R: 0, G: 0, B: 0, A: 180})

	lines := []struct {
		text string
		size int32
	}{
		{"loss", lossFontSize},
		{fmt.Sprintf("Length: %d", v.Length), hudFontSize},
		{fmt.Sprintf("Rounds: %d  Best: %d  Avg: %.1f  Median: %.0f", v.Rounds, v.BestLength, v.AvgLength, v.MedLength), hudFontSize},
		{fmt.Sprintf("Avg round time: %.1fs", v.AvgDuration.Seconds()), hudFontSize},
		{"Press R to restart", hudFontSize},
	}

	total := int32(0)
	for _, l := range lines {
		total += l.size + textPadding
	}
	y := (gh - total) / 2
	for _, l := range lines {
		w := rl.MeasureText(l.text, l.size)
		x, _ := r.layout.Center(w, l.size)
		rl.DrawText(l.text, x, y, l.size, rl.White)
		y += l.size + textPadding
	}
}
