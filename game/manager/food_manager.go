package manager

import (
	"snake-game/game/types"
)

// FoodManager tracks the food cells placed by the caller. It never chooses
// positions itself.
type FoodManager struct {
	foodList     []types.Point
	collisionMgr *CollisionManager
}

func NewFoodManager(collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		foodList:     make([]types.Point, 0),
		collisionMgr: collisionMgr,
	}
}

// AddFood places food at p. Off-board cells and duplicates are ignored.
func (fm *FoodManager) AddFood(food types.Point) bool {
	if fm.collisionMgr.IsWallCollision(food) {
		return false
	}
	if ok, _ := fm.collisionMgr.CheckFoodCollisions(food, fm.foodList); ok {
		return false
	}
	fm.foodList = append(fm.foodList, food)
	return true
}

// Eat removes the food at pos, if any, and reports whether there was one.
func (fm *FoodManager) Eat(pos types.Point) bool {
	ok, food := fm.collisionMgr.CheckFoodCollisions(pos, fm.foodList)
	if !ok {
		return false
	}
	fm.RemoveFood(food)
	return true
}

func (fm *FoodManager) GetFoodList() []types.Point {
	list := make([]types.Point, len(fm.foodList))
	copy(list, fm.foodList)
	return list
}

func (fm *FoodManager) RemoveFood(food types.Point) {
	for i, f := range fm.foodList {
		if f == food {
			// Remove food from list by swapping with last element and truncating
			fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
			fm.foodList = fm.foodList[:len(fm.foodList)-1]
			return
		}
	}
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}
