package main

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"snake-game/game/manager"
)

// EpisodeRecord is the outcome of one simulated game.
type EpisodeRecord struct {
	Game     string
	Ticks    int
	Length   int
	Meals    int
	Cause    manager.CollisionType
	Duration time.Duration
}

// RunStats keeps every episode of a run in memory.
type RunStats struct {
	Games []EpisodeRecord
}

func NewRunStats() *RunStats {
	return &RunStats{
		Games: make([]EpisodeRecord, 0),
	}
}

func (s *RunStats) Add(r EpisodeRecord) {
	s.Games = append(s.Games, r)
}

// Summary aggregates a run.
type Summary struct {
	Episodes    int
	MeanTicks   float64
	StdDevTicks float64
	MedianTicks float64
	MeanLength  float64
	MaxLength   int
	Causes      map[manager.CollisionType]int
}

func (s *RunStats) Summary() Summary {
	sum := Summary{
		Episodes: len(s.Games),
		Causes:   make(map[manager.CollisionType]int),
	}
	if len(s.Games) == 0 {
		return sum
	}

	ticks := make([]float64, len(s.Games))
	lengths := make([]float64, len(s.Games))
	for i, g := range s.Games {
		ticks[i] = float64(g.Ticks)
		lengths[i] = float64(g.Length)
		if g.Length > sum.MaxLength {
			sum.MaxLength = g.Length
		}
		sum.Causes[g.Cause]++
	}

	sum.MeanTicks = stat.Mean(ticks, nil)
	if len(ticks) > 1 {
		sum.StdDevTicks = stat.StdDev(ticks, nil)
	}
	sum.MeanLength = stat.Mean(lengths, nil)

	sort.Float64s(ticks)
	if n := len(ticks); n%2 == 0 {
		sum.MedianTicks = (ticks[n/2-1] + ticks[n/2]) / 2
	} else {
		sum.MedianTicks = stat.Quantile(0.5, stat.Empirical, ticks, nil)
	}
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("%d episodes: ticks mean %.1f (sd %.1f, median %.1f), length mean %.1f max %d, wall %d self %d survived %d",
		s.Episodes, s.MeanTicks, s.StdDevTicks, s.MedianTicks, s.MeanLength, s.MaxLength,
		s.Causes[manager.WallCollision], s.Causes[manager.SelfCollision], s.Causes[manager.NoCollision])
}
