package game

import (
	"time"

	"torus-snake/game/types"
)

// View is what the renderer needs for one frame.
type View struct {
	Grid      types.Grid
	Body      []types.Cell
	Direction types.Direction
	Food      types.Cell
	Ended     bool
	Length    int

	Rounds     int
	BestLength int
	AvgLength  float64
	MedLength  float64

	AvgDuration time.Duration
}

// View snapshots the current state for drawing. Body is a copy.
func (g *Game) View() View {
	s := g.state
	body := make([]types.Cell, len(s.Snake.Body))
	copy(body, s.Snake.Body)

	stats := g.rounds.GetStats()
	return View{
		Grid:       s.Grid,
		Body:       body,
		Direction:  s.Snake.Direction,
		Food:       s.Food,
		Ended:      s.Phase == Ended,
		Length:     s.Snake.Len(),
		Rounds:      stats.GetRoundsPlayed(),
		BestLength:  g.rounds.GetHighScore(),
		AvgLength:   stats.GetAverageLength(),
		MedLength:   stats.GetMedianLength(),
		AvgDuration: stats.GetAverageDuration(),
	}
}
