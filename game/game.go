package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// StepResult describes what happened during one tick.
type StepResult struct {
	Collision manager.CollisionType
	Ate       bool
	Head      types.Point
}

// Game owns one snake on a bounded board and advances it tick by tick.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	Ticks     int
	GameOver  bool
	Cause     manager.CollisionType

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame places the snake with its tail at start. Food cells are supplied
// by the caller.
func NewGame(grid types.Grid, start types.Point, food []types.Point) (*Game, error) {
	collisionMgr := manager.NewCollisionManager(grid)
	if !collisionMgr.ValidateSpawnPosition(start) {
		return nil, errors.Errorf("snake at %s does not fit on %dx%d grid", start, grid.Width, grid.Height)
	}

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(start.X, start.Y),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(collisionMgr),
	}
	for _, f := range food {
		g.AddFood(f)
	}
	return g, nil
}

// SteerFilter drops a requested heading that would reverse the snake onto
// its own neck.
func SteerFilter(current entity.Direction, dir *entity.Direction) *entity.Direction {
	if dir == nil || dir.IsOpposite(current) {
		return nil
	}
	return dir
}

// Step runs one tick: preview the head, check walls and body, commit the
// move, then grow if the new head is on food. A nil dir keeps the heading.
func (g *Game) Step(dir *entity.Direction) StepResult {
	if g.GameOver {
		return StepResult{Collision: g.Cause, Head: g.Head()}
	}

	dir = SteerFilter(g.snake.HeadDirection(), dir)
	x, y := g.snake.NextHead(dir)
	next := types.Point{X: x, Y: y}

	if c := g.collisionMgr.CheckCollision(g.snake, next); c != manager.NoCollision {
		g.GameOver = true
		g.Cause = c
		return StepResult{Collision: c, Head: g.Head()}
	}

	g.snake.MoveForward(dir)
	g.Ticks++

	ate := g.foodMgr.Eat(next)
	if ate {
		// MoveForward above guarantees a pending tail
		g.snake.MustRestoreTail()
	}
	return StepResult{Collision: manager.NoCollision, Ate: ate, Head: next}
}

// AddFood places food unless the cell is off the board, already has food, or
// is under the snake.
func (g *Game) AddFood(p types.Point) bool {
	for _, cell := range g.snake.Body() {
		if cell == p {
			return false
		}
	}
	return g.foodMgr.AddFood(p)
}

func (g *Game) Head() types.Point {
	x, y := g.snake.HeadPosition()
	return types.Point{X: x, Y: y}
}

func (g *Game) Direction() entity.Direction {
	return g.snake.HeadDirection()
}

// Cells returns the snake's cells head first, for rendering.
func (g *Game) Cells() []types.Point {
	return g.snake.Body()
}

// Draw hands every snake cell, head first, to a cell renderer.
func (g *Game) Draw(drawCell func(p types.Point, c types.Color)) {
	g.snake.Each(func(p types.Point) {
		drawCell(p, types.SnakeColor)
	})
}

func (g *Game) Length() int {
	return g.snake.Len()
}

func (g *Game) GetFoodList() []types.Point {
	return g.foodMgr.GetFoodList()
}
