package entity

import (
	"github.com/pkg/errors"

	"snake-game/game/types"
)

// ErrNoPendingTail is returned by RestoreTail when the snake has not moved yet.
var ErrNoPendingTail = errors.New("no evicted tail to restore")

// Snake is a chain of cells stored head first, plus the cell most recently
// dropped off the tail so that a meal can put it back.
//
// The heading is replaced by whatever MoveForward is given. Callers must
// filter out reversals themselves; see game.SteerFilter.
type Snake struct {
	direction Direction
	body      []types.Point
	tail      types.Point
	hasTail   bool
}

// NewSnake builds a horizontal snake of length three with its tail at (x, y),
// heading right.
func NewSnake(x, y int) *Snake {
	body := make([]types.Point, 0, types.InitialLength)
	for i := types.InitialLength - 1; i >= 0; i-- {
		body = append(body, types.Point{X: x + i, Y: y})
	}
	return &Snake{
		direction: Right,
		body:      body,
	}
}

func (s *Snake) head() types.Point {
	if len(s.body) == 0 {
		panic("entity: snake body is empty")
	}
	return s.body[0]
}

// HeadPosition returns the coordinates of the first cell.
func (s *Snake) HeadPosition() (int, int) {
	h := s.head()
	return h.X, h.Y
}

// HeadDirection returns the heading used by the next MoveForward(nil).
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// NextHead previews the head cell after one step in dir, or in the current
// heading when dir is nil. The snake is not changed.
func (s *Snake) NextHead(dir *Direction) (int, int) {
	moving := s.direction
	if dir != nil {
		moving = *dir
	}
	next := Advance(s.head(), moving)
	return next.X, next.Y
}

// MoveForward advances the snake one cell. A non-nil dir becomes the new
// heading before the step. The length is unchanged; the evicted tail cell is
// kept for RestoreTail.
func (s *Snake) MoveForward(dir *Direction) {
	if dir != nil {
		s.direction = *dir
	}
	next := Advance(s.head(), s.direction)

	last := len(s.body) - 1
	s.tail = s.body[last]
	s.hasTail = true
	copy(s.body[1:], s.body[:last])
	s.body[0] = next
}

// RestoreTail appends the cell evicted by the last MoveForward, growing the
// snake by one.
func (s *Snake) RestoreTail() error {
	if !s.hasTail {
		return ErrNoPendingTail
	}
	s.body = append(s.body, s.tail)
	return nil
}

// MustRestoreTail is like RestoreTail but panics if the snake never moved.
func (s *Snake) MustRestoreTail() {
	if err := s.RestoreTail(); err != nil {
		panic(err)
	}
}

// OverlapTail reports whether (x, y) is occupied by any cell but the last.
// The last cell is vacated on the next move, so landing on it is safe. A
// one-cell snake is still checked against that cell.
func (s *Snake) OverlapTail(x, y int) bool {
	p := types.Point{X: x, Y: y}
	n := len(s.body) - 1
	if n == 0 {
		n = 1
	}
	for _, cell := range s.body[:n] {
		if cell == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Each calls fn for every cell from head to tail.
func (s *Snake) Each(fn func(types.Point)) {
	for _, cell := range s.body {
		fn(cell)
	}
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int {
	return len(s.body)
}

// PendingTail returns the last evicted cell and whether there is one.
func (s *Snake) PendingTail() (types.Point, bool) {
	return s.tail, s.hasTail
}
