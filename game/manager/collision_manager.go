package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports what the head would hit at pos. Walls take
// precedence over the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, pos types.Point) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if cm.IsSelfCollision(snake, pos) {
		return SelfCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position is off the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision uses the snake's own overlap rule, so the tail cell that is
// about to move away does not count.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake, pos types.Point) bool {
	return snake.OverlapTail(pos.X, pos.Y)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// CheckFoodCollisions checks if a position is on any of the listed food cells
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []types.Point) (bool, types.Point) {
	for _, food := range foodList {
		if cm.IsFoodCollision(pos, food) {
			return true, food
		}
	}
	return false, types.Point{}
}

// ValidateSpawnPosition reports whether a snake tailed at pos fits on the
// board heading right.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point) bool {
	for i := 0; i < types.InitialLength; i++ {
		if cm.IsWallCollision(types.Point{X: pos.X + i, Y: pos.Y}) {
			return false
		}
	}
	return true
}
