package entity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"snake-game/game/types"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is the cardinal heading of the snake's head.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic("entity: invalid direction " + d.String())
}

// IsOpposite reports whether other points straight back along d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Delta returns the one-cell offset for the heading. Up decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic("entity: invalid direction " + d.String())
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Ptr is a convenience for passing a heading to MoveForward and NextHead.
func (d Direction) Ptr() *Direction {
	return &d
}

// ParseDirection accepts the names printed by String, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDirection, "%q", s)
}

// Advance returns the cell one step from p in direction d.
func Advance(p types.Point, d Direction) types.Point {
	dx, dy := d.Delta()
	return types.Point{X: p.X + dx, Y: p.Y + dy}
}
