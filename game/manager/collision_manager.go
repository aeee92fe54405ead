package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsSelfCollision reports whether any segment after the head shares the
// head's cell.
func (cm *CollisionManager) IsSelfCollision(snake entity.Snake) bool {
	head := snake.GetHead()
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i] == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}
