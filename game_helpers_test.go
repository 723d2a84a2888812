package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/model"
	"github.com/sheikhrachel/life-engine/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 12
	config.Height = 10
	config.Seed = 99
	config.FrameRate = 0
	config.StatusInterval = 0
	return config
}

func TestInitializeGameRandom(t *testing.T) {
	a, err := initializeGame(testConfig())
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	b, err := initializeGame(testConfig())
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if !a.Seeded() || a.GetWidth() != 12 || a.GetHeight() != 10 {
		t.Fatal("engine not seeded with the configured dimensions")
	}
	if !a.CurrentGrid().Equal(b.CurrentGrid()) {
		t.Fatal("equal seeds produced different games")
	}
}

func TestInitializeGamePattern(t *testing.T) {
	config := testConfig()
	config.Pattern = "blinker"
	e, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if n := e.CurrentGrid().CountLivingCells(); n != 3 {
		t.Fatalf("blinker has %d cells, want 3", n)
	}
	if alive, _ := e.CurrentGrid().Get(5, 4); !alive {
		t.Fatal("blinker not centred")
	}

	config.Pattern = "nope"
	if _, err = initializeGame(config); !errors.Is(err, model.ErrUnknownPattern) {
		t.Fatalf("unknown pattern err = %v", err)
	}

	config.Pattern = "glider"
	config.Width, config.Height = 2, 2
	if _, err = initializeGame(config); !errors.Is(err, model.ErrOutOfBounds) {
		t.Fatalf("oversized pattern err = %v", err)
	}
}

func TestInitializeGameInvalidDimension(t *testing.T) {
	config := testConfig()
	config.Width = 0
	if _, err := initializeGame(config); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()
	if restart, reason := checkRestartConditions(gameStatus{livingCells: 0}, 0, config); !restart || reason != "extinction" {
		t.Fatalf("extinction: restart=%v reason=%q", restart, reason)
	}
	if restart, _ := checkRestartConditions(gameStatus{livingCells: 5}, config.StagnationThreshold, config); !restart {
		t.Fatal("stagnation threshold should trigger a restart")
	}
	if restart, _ := checkRestartConditions(gameStatus{livingCells: 5}, config.StagnationThreshold-1, config); restart {
		t.Fatal("below the stagnation threshold should not restart")
	}
}

func TestRunGameStopsAtGenerationLimit(t *testing.T) {
	config := testConfig()
	config.Pattern = "glider"
	config.MaxGenerations = 7
	e, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	stats := utils.NewStats()
	if err = runGame(context.Background(), e, config, stats); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if e.Generation() != 7 {
		t.Fatalf("Generation() = %d, want 7", e.Generation())
	}
	if e.CurrentGrid().GetWidth() != 12 || e.CurrentGrid().GetHeight() != 10 {
		t.Fatal("grid dimensions changed")
	}
}

func TestRunGameStopsOnStillLife(t *testing.T) {
	config := testConfig()
	config.Pattern = "block"
	config.MaxGenerations = 100
	e, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if err = runGame(context.Background(), e, config, utils.NewStats()); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if e.Generation() >= 100 {
		t.Fatal("still life should stop the run before the generation limit")
	}
}

func TestRunGameRestartsWhenEnabled(t *testing.T) {
	config := testConfig()
	config.Pattern = "blinker"
	config.AutoRestart = true
	config.StagnationThreshold = 1
	config.MaxGenerations = 20
	e, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	stats := utils.NewStats()
	if err = runGame(context.Background(), e, config, stats); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if stats.Restarts == 0 {
		t.Fatal("oscillating blinker should have triggered a restart")
	}
}

func TestRunGameCancelled(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	e, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = runGame(ctx, e, config, utils.NewStats()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
