package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"snake-game/game/types"
)

func main() {
	def := types.DefaultConfig()
	width := flag.Int("width", def.Grid.Width, "Grid width in cells")
	height := flag.Int("height", def.Grid.Height, "Grid height in cells")
	episodes := flag.Int("episodes", def.Episodes, "Number of games to simulate")
	maxTicks := flag.Int("max-ticks", def.MaxTicks, "Tick limit per game")
	speed := flag.Int("speed", 0, "Delay between ticks in milliseconds (0 = as fast as possible)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = current time)")
	turn := flag.Float64("turn", 0.2, "Chance of turning on each tick")
	food := flag.String("food", "", "Food cells, e.g. \"5,5;12,3\"")
	moves := flag.String("moves", "", "Scripted headings, e.g. \"up,up,left\"; overrides random steering")
	flag.Parse()

	runID := uuid.New().String()
	logger := log.New(os.Stderr, "["+runID[:8]+"] ", log.LstdFlags)

	cfg := def
	cfg.Grid = types.Grid{Width: *width, Height: *height}
	cfg.Episodes = *episodes
	cfg.MaxTicks = *maxTicks
	cfg.TickInterval = time.Duration(*speed) * time.Millisecond
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	points, err := types.ParsePoints(*food)
	if err != nil {
		logger.Fatalf("bad -food: %v", err)
	}
	cfg.Food = points

	var steerer Steerer
	if *moves != "" {
		steerer, err = NewScriptSteerer(strings.Split(*moves, ","))
		if err != nil {
			logger.Fatalf("bad -moves: %v", err)
		}
	} else {
		steerer = NewRandomSteerer(cfg.Seed, *turn)
	}

	logger.Printf("simulating %d games on %dx%d grid (seed %d)", cfg.Episodes, cfg.Grid.Width, cfg.Grid.Height, cfg.Seed)
	stats, err := Simulate(cfg, steerer, logger)
	if err != nil {
		logger.Fatalf("simulation failed: %v", err)
	}
	logger.Println(stats.Summary())
}
