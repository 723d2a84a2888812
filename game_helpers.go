package main

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/engine"
	"github.com/sheikhrachel/life-engine/model"
	"github.com/sheikhrachel/life-engine/utils"
)

// initializeGame builds the engine and gives it its first generation, either a
// named pattern stamped in the middle of the grid or a seeded random state
func initializeGame(config utils.Config) (*engine.Engine, error) {
	engineConfig := engine.Config{
		Width:   config.Width,
		Height:  config.Height,
		Rules:   config.Rules,
		Workers: config.Workers,
	}
	if config.UseMemoryPool {
		engineConfig.Pool = model.NewGridPool()
	}

	if config.Pattern == "" {
		e, err := engine.NewWithConfig(engineConfig)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
		}
		e.Seed(engine.NewRandSource(config.Seed))
		return e, nil
	}

	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to find pattern")
	}
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	startX := (config.Width - pattern.Width()) / 2
	startY := (config.Height - pattern.Height()) / 2
	if err = grid.Stamp(pattern, startX, startY); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to place pattern %q", config.Pattern)
	}
	e, err := engine.NewFromGrid(grid, engineConfig)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}
	return e, nil
}

// gameStatus summarizes one generation for logging and restart decisions
type gameStatus struct {
	generation  int
	livingCells int
	density     float64
	stagnant    bool
}

// updateGameState records the current generation in stats and the stagnation tracker
func updateGameState(
	e *engine.Engine,
	frame int,
	frameDuration time.Duration,
	stats *utils.Stats,
	tracker *utils.StagnationTracker,
) gameStatus {
	grid := e.CurrentGrid()
	livingCells := grid.CountLivingCells()

	stats.Update(frame, livingCells, frameDuration)

	return gameStatus{
		generation:  e.Generation(),
		livingCells: livingCells,
		density:     float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100,
		stagnant:    tracker.Observe(grid.GetGridHash()),
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(status gameStatus, stagnantCount int, config utils.Config) (bool, string) {
	if status.livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runGame drives the engine: one generation per frame until the context is
// cancelled or the generation limit is reached
func runGame(ctx context.Context, e *engine.Engine, config utils.Config, stats *utils.Stats) error {
	var (
		tracker       utils.StagnationTracker
		seed          = config.Seed
		lastFrameTime = time.Now()
		ticker        *time.Ticker
		tick          <-chan time.Time
	)
	if config.FrameRate > 0 {
		ticker = time.NewTicker(config.FrameRate.Std())
		defer ticker.Stop()
		tick = ticker.C
	}

	for generations := 0; config.MaxGenerations == 0 || generations < config.MaxGenerations; generations++ {
		frameStart := time.Now()
		status := updateGameState(e, generations, frameStart.Sub(lastFrameTime), stats, &tracker)
		lastFrameTime = frameStart

		if config.StatusInterval > 0 && status.generation%config.StatusInterval == 0 {
			log.Printf("gen=%d living=%d density=%.1f%% stagnant=%v gen/sec=%.1f",
				status.generation, status.livingCells, status.density, status.stagnant, stats.GenerationsPerSecond)
		}

		if restart, reason := checkRestartConditions(status, tracker.Count(), config); restart {
			if !config.AutoRestart {
				log.Printf("stopping at gen=%d: %s", status.generation, reason)
				return nil
			}
			seed++
			log.Printf("restarting at gen=%d: %s (seed=%d)", status.generation, reason, seed)
			e.Seed(engine.NewRandSource(seed))
			tracker.Reset()
			stats.Restarts++
		} else {
			e.AdvanceGeneration()
		}

		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}

	log.Printf("reached maximum generations limit (%d)", config.MaxGenerations)
	return nil
}
