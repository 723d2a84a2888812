package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/rules"
)

// ErrInvalidConfig is returned by Validate for settings the runner cannot use
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the runner
type Config struct {
	Width               int         `json:"width"`
	Height              int         `json:"height"`
	FrameRate           Duration    `json:"frame_rate"`
	MaxGenerations      int         `json:"max_generations"`
	Seed                int64       `json:"seed"`
	Workers             int         `json:"workers"`
	UseMemoryPool       bool        `json:"use_memory_pool"`
	AutoRestart         bool        `json:"auto_restart"`
	StagnationThreshold int         `json:"stagnation_threshold"`
	StatusInterval      int         `json:"status_interval"`
	Pattern             string      `json:"pattern"`
	Rules               rules.Rules `json:"rules"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               40,
		Height:              40,
		FrameRate:           Duration(200 * time.Millisecond),
		MaxGenerations:      10000,
		Workers:             1,
		UseMemoryPool:       true,
		AutoRestart:         false,
		StagnationThreshold: 5,
		StatusInterval:      50,
		Rules:               rules.DefaultRules(),
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings that the engine does not check itself
func (c Config) Validate() error {
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must be >= 0, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must be >= 0, got %d", c.MaxGenerations)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be >= 0, got %d", c.Workers)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be >= 1, got %d", c.StagnationThreshold)
	}
	if err := c.Rules.Validate(); err != nil {
		return errors.Wrap(err, "[Validate] failed to validate rules")
	}
	return nil
}

// Duration is a time.Duration that reads either a Go duration string ("150ms")
// or a number of nanoseconds from JSON
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "[UnmarshalJSON] failed to unmarshal duration")
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "[UnmarshalJSON] failed to parse duration: %+v", value)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[UnmarshalJSON] invalid duration: %s", data)
	}
	return nil
}
