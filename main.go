package main

import (
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/config"
	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		config.Default().NewLogger(os.Stderr).Fatal("bad configuration", "err", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	if !rl.IsWindowReady() {
		logger.Fatal("could not create window", "width", cfg.WindowWidth, "height", cfg.WindowHeight)
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	// Grid size is fixed from the window size at startup
	grid := types.GridFromPixels(rl.GetScreenWidth(), rl.GetScreenHeight(), cfg.CellSize)
	g, err := game.New(grid, game.Options{
		Seed:   cfg.Seed,
		Logger: logger,
	})
	if err != nil {
		rl.CloseWindow()
		logger.Fatal("could not start game", "err", err)
	}
	logger.Info("window ready", "grid", grid, "tick", cfg.TickInterval)

	renderer := ui.NewRenderer(grid, cfg.CellSize)
	input := ui.NewInput(ui.DefaultKeys)
	clock := game.NewClock(cfg.TickInterval)

	for !rl.WindowShouldClose() {
		input.Poll()

		frame := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for n := clock.Advance(frame); n > 0; n-- {
			g.Tick(input.Drain())
		}

		renderer.Draw(g.View())
	}
}
