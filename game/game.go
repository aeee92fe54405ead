package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// ErrGridTooSmall is returned when the grid cannot hold the starting snake.
var ErrGridTooSmall = errors.New("grid too small for starting snake")

// Phase is the round's place in the Running/Ended state machine.
type Phase int

const (
	Running Phase = iota
	Ended
)

func (p Phase) String() string {
	if p == Ended {
		return "ended"
	}
	return "running"
}

// State is the whole game at one tick. Each tick builds a new State from the
// previous one; the old value is not mutated.
type State struct {
	Snake entity.Snake
	Grid  types.Grid
	Food  types.Cell
	Phase Phase
}

// FoodPlacer picks a new food cell inside the grid.
type FoodPlacer interface {
	GenerateFood() types.Cell
}

// Options configures a Game. Zero values are usable.
type Options struct {
	Seed   uint64     // 0 seeds food placement from the clock
	Food   FoodPlacer // overrides Seed when set
	Rounds *manager.StateManager
	Logger *log.Logger
}

type Game struct {
	state      State
	food       FoodPlacer
	collisions *manager.CollisionManager
	rounds     *manager.StateManager
	logger     *log.Logger
}

// New creates a game on grid with the starting snake and a random food cell.
func New(grid types.Grid, opts Options) (*Game, error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}

	food := opts.Food
	if food == nil {
		if opts.Seed != 0 {
			food = manager.NewSeededFoodManager(grid, opts.Seed)
		} else {
			food = manager.NewFoodManager(grid, nil)
		}
	}
	rounds := opts.Rounds
	if rounds == nil {
		rounds = manager.NewStateManager(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		food:       food,
		collisions: manager.NewCollisionManager(),
		rounds:     rounds,
		logger:     logger,
	}
	g.state = State{
		Snake: entity.NewSnake(),
		Grid:  grid,
		Food:  food.GenerateFood(),
		Phase: Running,
	}
	g.startRound(g.state)
	return g, nil
}

func checkGrid(grid types.Grid) error {
	if grid.Width == 0 || grid.Height == 0 {
		return errors.Wrapf(ErrGridTooSmall, "grid %dx%d", grid.Width, grid.Height)
	}
	for _, c := range entity.StartBody {
		if !grid.Contains(c) {
			return errors.Wrapf(ErrGridTooSmall, "grid %dx%d does not contain %v", grid.Width, grid.Height, c)
		}
	}
	return nil
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Tick advances the game by one simulation step.
func (g *Game) Tick(in Input) {
	g.state = g.step(g.state, in)
}

// step returns the state following s for one tick with input in. s.Grid
// must be the grid the game was created with; round bookkeeping is updated
// as a side effect.
//
// A running round first checks for the head biting the body and ends there
// if it does. Otherwise the heading is updated from input, and the snake
// moves, growing when its head was on the food before the move.
func (g *Game) step(s State, in Input) State {
	if s.Phase == Ended {
		if in.Restart {
			return g.restart(s)
		}
		return s
	}

	if g.collisions.IsSelfCollision(s.Snake) {
		s.Phase = Ended
		rec := g.rounds.EndRound(s.Snake.Len())
		g.logger.Info("round lost", "round", rec.ID, "length", rec.Length, "ticks", rec.Ticks, "duration", rec.Duration())
		return s
	}

	// The most preferred key wins; a refused reversal falls back to the next
	// held key so a quick second tap does not cancel the first.
	for _, dir := range in.Directions() {
		if s.Snake.CanTurn(dir) {
			s.Snake = s.Snake.SetDirection(dir)
			break
		}
	}

	g.rounds.Tick()
	if g.collisions.IsFoodCollision(s.Snake.GetHead(), s.Food) {
		s.Snake = s.Snake.Advance(s.Grid, true)
		eaten := s.Food
		s.Food = g.food.GenerateFood()
		g.logger.Debug("food eaten", "at", eaten, "length", s.Snake.Len(), "next", s.Food)
		return s
	}
	s.Snake = s.Snake.Advance(s.Grid, false)
	return s
}

func (g *Game) restart(s State) State {
	s.Snake = entity.NewSnake()
	s.Phase = Running
	s.Food = g.food.GenerateFood()
	g.startRound(s)
	return s
}

func (g *Game) startRound(s State) {
	id := g.rounds.StartRound()
	g.logger.Info("round started", "round", id, "grid", s.Grid, "food", s.Food)
}
