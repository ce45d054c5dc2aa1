package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
)

func testConfig() types.Config {
	cfg := types.DefaultConfig()
	cfg.Grid = types.Grid{Width: 12, Height: 12}
	cfg.Episodes = 3
	cfg.MaxTicks = 200
	return cfg
}

func TestSimulateStraightLineHitsWall(t *testing.T) {
	cfg := testConfig()
	steerer, err := NewScriptSteerer(nil)
	require.NoError(t, err)

	stats, err := Simulate(cfg, steerer, nil)
	require.NoError(t, err)
	require.Len(t, stats.Games, 3)

	// tail at (3,6), head at (5,6): six free cells to the right wall
	for _, r := range stats.Games {
		assert.Equal(t, 6, r.Ticks)
		assert.Equal(t, 3, r.Length)
		assert.Equal(t, manager.WallCollision, r.Cause)
	}

	sum := stats.Summary()
	assert.Equal(t, 3, sum.Episodes)
	assert.InDelta(t, 6.0, sum.MeanTicks, 1e-9)
	assert.InDelta(t, 0.0, sum.StdDevTicks, 1e-9)
	assert.Equal(t, 3, sum.Causes[manager.WallCollision])
}

func TestSimulateEatsScriptedFood(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 1
	cfg.Food = []types.Point{{X: 6, Y: 6}, {X: 7, Y: 6}}
	steerer, err := NewScriptSteerer(nil)
	require.NoError(t, err)

	stats, err := Simulate(cfg, steerer, nil)
	require.NoError(t, err)
	require.Len(t, stats.Games, 1)
	assert.Equal(t, 2, stats.Games[0].Meals)
	assert.Equal(t, 5, stats.Games[0].Length)
}

func TestSimulateTickLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 1
	cfg.MaxTicks = 4
	// circle a 2x2 square forever
	steerer, err := NewScriptSteerer([]string{"down", "left", "up", "right"})
	require.NoError(t, err)

	stats, err := Simulate(cfg, steerer, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Games[0].Ticks)
	assert.Equal(t, manager.NoCollision, stats.Games[0].Cause)
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 0
	_, err := Simulate(cfg, NewRandomSteerer(1, 0.5), nil)
	assert.Error(t, err)
}

func TestRandomSteererNeverReverses(t *testing.T) {
	g, err := game.NewGame(types.Grid{Width: 50, Height: 50}, types.Point{X: 20, Y: 20}, nil)
	require.NoError(t, err)
	rs := NewRandomSteerer(3, 1)

	for i := 0; i < 100; i++ {
		d := rs.Steer(g)
		require.NotNil(t, d, "turn chance 1 always turns")
		assert.False(t, d.IsOpposite(g.Direction()))
		assert.NotEqual(t, g.Direction(), *d)
	}
}

func TestRandomSteererDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Episodes = 5

	a, err := Simulate(cfg, NewRandomSteerer(99, 0.3), nil)
	require.NoError(t, err)
	b, err := Simulate(cfg, NewRandomSteerer(99, 0.3), nil)
	require.NoError(t, err)

	for i := range a.Games {
		assert.Equal(t, a.Games[i].Ticks, b.Games[i].Ticks)
		assert.Equal(t, a.Games[i].Cause, b.Games[i].Cause)
	}
}

func TestRandomSteererReplaysSingleEpisode(t *testing.T) {
	g, err := game.NewGame(types.Grid{Width: 50, Height: 50}, types.Point{X: 20, Y: 20}, nil)
	require.NoError(t, err)

	draws := func(rs *RandomSteerer) []*entity.Direction {
		out := make([]*entity.Direction, 20)
		for i := range out {
			out[i] = rs.Steer(g)
		}
		return out
	}

	// run through episodes 0..2 on one steerer
	full := NewRandomSteerer(11, 0.5)
	var episodes [][]*entity.Direction
	for i := 0; i < 3; i++ {
		full.Reset()
		episodes = append(episodes, draws(full))
	}

	// episode 2 on its own, seeded at seed+2
	alone := NewRandomSteerer(13, 0.5)
	alone.Reset()
	assert.Equal(t, episodes[2], draws(alone))

	assert.NotEqual(t, episodes[0], episodes[1])
}

func TestScriptSteerer(t *testing.T) {
	_, err := NewScriptSteerer([]string{"up", "sideways"})
	assert.ErrorIs(t, err, entity.ErrUnknownDirection)

	ss, err := NewScriptSteerer([]string{"up", "left"})
	require.NoError(t, err)
	assert.Equal(t, entity.Up, *ss.Steer(nil))
	assert.Equal(t, entity.Left, *ss.Steer(nil))
	assert.Nil(t, ss.Steer(nil))

	ss.Reset()
	assert.Equal(t, entity.Up, *ss.Steer(nil))
}

func TestSummaryMedian(t *testing.T) {
	stats := NewRunStats()
	for _, ticks := range []int{9, 1, 5} {
		stats.Add(EpisodeRecord{Ticks: ticks, Length: 3, Cause: manager.SelfCollision})
	}

	sum := stats.Summary()
	assert.InDelta(t, 5.0, sum.MeanTicks, 1e-9)
	assert.InDelta(t, 5.0, sum.MedianTicks, 1e-9)
	assert.InDelta(t, 4.0, sum.StdDevTicks, 1e-9)
	assert.Equal(t, 3, sum.MaxLength)
	assert.Contains(t, sum.String(), "self 3")

	stats.Add(EpisodeRecord{Ticks: 2, Length: 3, Cause: manager.WallCollision})
	// sorted: 1 2 5 9
	assert.InDelta(t, 3.5, stats.Summary().MedianTicks, 1e-9)
}

func TestSummaryMedianEvenCount(t *testing.T) {
	stats := NewRunStats()
	for _, ticks := range []int{4, 2, 1, 3} {
		stats.Add(EpisodeRecord{Ticks: ticks, Length: 3})
	}
	assert.InDelta(t, 2.5, stats.Summary().MedianTicks, 1e-9)
}

func TestSummaryEmpty(t *testing.T) {
	sum := NewRunStats().Summary()
	assert.Zero(t, sum.Episodes)
	assert.Zero(t, sum.MeanTicks)
}
