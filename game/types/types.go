package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Point is a single grid cell. Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Color is an RGBA color handed to renderers.
type Color struct {
	R, G, B, A uint8
}

// SnakeColor is the fill used for every snake cell: green, fully opaque.
var SnakeColor = Color{R: 0, G: 255, B: 0, A: 255}

// Game constants
const (
	InitialLength   = 3
	DefaultWidth    = 30
	DefaultHeight   = 30
	DefaultEpisodes = 10
	DefaultMaxTicks = 1000
)

// Config holds the driver settings parsed from flags.
type Config struct {
	Grid         Grid
	Episodes     int
	MaxTicks     int
	TickInterval time.Duration
	Seed         uint64
	Food         []Point
}

func DefaultConfig() Config {
	return Config{
		Grid:     Grid{Width: DefaultWidth, Height: DefaultHeight},
		Episodes: DefaultEpisodes,
		MaxTicks: DefaultMaxTicks,
	}
}

// Validate rejects configs the driver cannot run.
func (c Config) Validate() error {
	// the snake spawns three cells wide
	if c.Grid.Width < InitialLength+1 || c.Grid.Height < 1 {
		return errors.Errorf("grid %dx%d too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Episodes <= 0 {
		return errors.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.MaxTicks <= 0 {
		return errors.Errorf("max ticks must be positive, got %d", c.MaxTicks)
	}
	if c.TickInterval < 0 {
		return errors.Errorf("negative tick interval %s", c.TickInterval)
	}
	for _, f := range c.Food {
		if !c.Grid.Contains(f) {
			return errors.Errorf("food %s outside %dx%d grid", f, c.Grid.Width, c.Grid.Height)
		}
	}
	return nil
}

// ParsePoints reads a list like "3,4;10,2". Empty input yields nil.
func ParsePoints(s string) ([]Point, error) {
	if s == "" {
		return nil, nil
	}
	var points []Point
	for _, part := range strings.Split(s, ";") {
		var p Point
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d,%d", &p.X, &p.Y); err != nil {
			return nil, errors.Wrapf(err, "parse point %q", part)
		}
		points = append(points, p)
	}
	return points, nil
}
