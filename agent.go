package main

import (
	"golang.org/x/exp/rand"

	"snake-game/game"
	"snake-game/game/entity"
)

// Steerer picks the heading for the next tick. Returning nil keeps the
// current heading.
type Steerer interface {
	Steer(g *game.Game) *entity.Direction
	Reset()
}

// RandomSteerer turns at random with probability TurnChance, never straight
// back onto its neck. It does no lookahead. Episode n draws from a stream
// seeded with seed+n, so any single episode can be replayed on its own.
type RandomSteerer struct {
	TurnChance float64
	seed       uint64
	episode    uint64
	rng        *rand.Rand
}

func NewRandomSteerer(seed uint64, turnChance float64) *RandomSteerer {
	return &RandomSteerer{
		TurnChance: turnChance,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (rs *RandomSteerer) Steer(g *game.Game) *entity.Direction {
	if rs.rng.Float64() >= rs.TurnChance {
		return nil
	}
	current := g.Direction()
	// the two perpendicular headings
	var turns []entity.Direction
	for _, d := range entity.Directions {
		if d != current && !d.IsOpposite(current) {
			turns = append(turns, d)
		}
	}
	return turns[rs.rng.Intn(len(turns))].Ptr()
}

// Reset starts the next episode's stream. The first call selects episode 0.
func (rs *RandomSteerer) Reset() {
	rs.rng.Seed(rs.seed + rs.episode)
	rs.episode++
}

// ScriptSteerer replays a fixed list of headings, then keeps going straight.
type ScriptSteerer struct {
	moves []entity.Direction
	pos   int
}

// NewScriptSteerer parses names such as "up,up,left".
func NewScriptSteerer(names []string) (*ScriptSteerer, error) {
	moves := make([]entity.Direction, 0, len(names))
	for _, name := range names {
		d, err := entity.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return &ScriptSteerer{moves: moves}, nil
}

func (ss *ScriptSteerer) Steer(*game.Game) *entity.Direction {
	if ss.pos >= len(ss.moves) {
		return nil
	}
	d := ss.moves[ss.pos]
	ss.pos++
	return &d
}

func (ss *ScriptSteerer) Reset() {
	ss.pos = 0
}
