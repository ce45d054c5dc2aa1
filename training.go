package main

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"snake-game/game"
	"snake-game/game/types"
)

// StartPosition is where the tail of a fresh snake goes.
func StartPosition(grid types.Grid) types.Point {
	return types.Point{X: grid.Width / 4, Y: grid.Height / 2}
}

// Simulate plays cfg.Episodes games with the steerer and records each one.
// An episode ends on a collision or after cfg.MaxTicks ticks.
func Simulate(cfg types.Config, steerer Steerer, logger *log.Logger) (*RunStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	stats := NewRunStats()
	for episode := 0; episode < cfg.Episodes; episode++ {
		steerer.Reset()
		g, err := game.NewGame(cfg.Grid, StartPosition(cfg.Grid), cfg.Food)
		if err != nil {
			return nil, errors.Wrapf(err, "episode %d", episode)
		}

		meals := 0
		for g.Ticks < cfg.MaxTicks && !g.GameOver {
			res := g.Step(steerer.Steer(g))
			if res.Ate {
				meals++
			}
			if cfg.TickInterval > 0 {
				time.Sleep(cfg.TickInterval)
			}
		}

		record := EpisodeRecord{
			Game:     g.UUID,
			Ticks:    g.Ticks,
			Length:   g.Length(),
			Meals:    meals,
			Cause:    g.Cause,
			Duration: time.Since(g.StartTime),
		}
		stats.Add(record)
		if logger != nil {
			logger.Printf("episode %d (%s): %d ticks, length %d, ended by %s",
				episode, g.UUID[:8], record.Ticks, record.Length, record.Cause)
		}
	}
	return stats, nil
}
