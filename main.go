package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON config file")
		seed        = flag.Int64("seed", 0, "random seed, 0 derives one from the clock")
		generations = flag.Int("generations", -1, "generation limit, overrides the config file when >= 0")
		pattern     = flag.String("pattern", "", "start from a named pattern instead of a random state")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}
	if *pattern != "" {
		config.Pattern = *pattern
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	e, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}
	log.Printf("grid=%dx%d seed=%d workers=%d living=%d",
		e.GetWidth(), e.GetHeight(), config.Seed, config.Workers, e.CurrentGrid().CountLivingCells())

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if err = runGame(ctx, e, config, stats); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("game stopped: %v", err)
	}

	log.Printf("final stats: %d generations in %.1fs, %.1f avg population, %d restarts",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation, stats.Restarts)
}
