package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"torus-snake/game/types"
)

// FoodManager places food uniformly inside the grid. Row and column are
// drawn independently and the snake's body is not excluded.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager uses src for every draw. A nil src seeds a PCG source from
// the wall clock.
func NewFoodManager(grid types.Grid, src rand.Source) *FoodManager {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &FoodManager{
		grid: grid,
		rng:  rand.New(src),
	}
}

// NewSeededFoodManager is NewFoodManager with a PCG source seeded by seed.
func NewSeededFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return NewFoodManager(grid, rand.NewSource(seed))
}

func (fm *FoodManager) GenerateFood() types.Cell {
	return types.Cell{
		Row: uint(fm.rng.Intn(int(fm.grid.Height))),
		Col: uint(fm.rng.Intn(int(fm.grid.Width))),
	}
}
