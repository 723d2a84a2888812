package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 40 || c.Height != 40 {
		t.Fatalf("default size %dx%d, want 40x40", c.Width, c.Height)
	}
	if c.FrameRate.Std() != 200*time.Millisecond {
		t.Fatalf("default frame rate %v, want 200ms", c.FrameRate)
	}
	if c.MaxGenerations != 10000 {
		t.Fatalf("default max generations %d, want 10000", c.MaxGenerations)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"width": 12,
		"frame_rate": "50ms",
		"seed": 42,
		"rules": {"underpopulation_max": 1, "survive_set": [2], "overpopulation_min": 4, "reproduction_count": 3}
	}`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 12 || c.Height != 40 {
		t.Fatalf("size %dx%d, want 12x40", c.Width, c.Height)
	}
	if c.FrameRate.Std() != 50*time.Millisecond || c.Seed != 42 {
		t.Fatalf("frame rate %v seed %d", c.FrameRate, c.Seed)
	}
	if len(c.Rules.SurviveSet) != 1 || c.Rules.SurviveSet[0] != 2 {
		t.Fatalf("survive set %v, want [2]", c.Rules.SurviveSet)
	}
}

func TestLoadConfigNumericDuration(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `{"frame_rate": 1000000}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.FrameRate.Std() != time.Millisecond {
		t.Fatalf("frame rate %v, want 1ms", c.FrameRate)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if _, err := LoadConfig(writeConfig(t, `{"frame_rate": "soon"}`)); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
	if _, err := LoadConfig(writeConfig(t, `{"frame_rate": true}`)); err == nil {
		t.Fatal("expected error for boolean duration")
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Duration(1500 * time.Millisecond))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"1.5s"` {
		t.Fatalf("Marshal = %s, want \"1.5s\"", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"negative frame rate", func(c *Config) { c.FrameRate = -1 }, ErrInvalidConfig},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }, ErrInvalidConfig},
		{"negative workers", func(c *Config) { c.Workers = -2 }, ErrInvalidConfig},
		{"zero stagnation threshold", func(c *Config) { c.StagnationThreshold = 0 }, ErrInvalidConfig},
		{"bad rules", func(c *Config) { c.Rules.ReproductionCount = -1 }, rules.ErrInvalidRules},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.target) {
				t.Fatalf("Validate() = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 10 {
		t.Fatalf("avg %v gps %v", s.AveragePopulation, s.GenerationsPerSecond)
	}
	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 || s.TotalGenerations != 2 {
		t.Fatalf("avg %v total %d", s.AveragePopulation, s.TotalGenerations)
	}
}

func TestStagnationTracker(t *testing.T) {
	var s StagnationTracker
	for _, h := range []string{"a", "b", "c"} {
		if s.Observe(h) {
			t.Fatalf("%q flagged as stagnant with short history", h)
		}
	}
	if s.Observe("d") {
		t.Fatal("new hash flagged as stagnant")
	}
	// period-2 oscillation
	if !s.Observe("c") {
		t.Fatal("repeat of two generations ago not detected")
	}
	if !s.Observe("d") || s.Count() != 2 {
		t.Fatalf("oscillation not tracked, count = %d", s.Count())
	}
	if s.Observe("e") || s.Count() != 0 {
		t.Fatal("fresh hash should reset the count")
	}

	s.Reset()
	if s.Observe("e") || s.Count() != 0 {
		t.Fatal("Reset should clear history")
	}
}
