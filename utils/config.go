package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Config holds the configuration for a run
type Config struct {
	Generations   int    `json:"generations"`
	Torus         bool   `json:"torus"`
	PrintStats    bool   `json:"print_stats"`
	InputPath     string `json:"input_path"`  // empty reads stdin
	OutputPath    string `json:"output_path"` // empty writes stdout
	MaxWidth      int    `json:"max_width"`
	MaxHeight     int    `json:"max_height"`
	MaxHistory    int    `json:"max_history"` // 0 is unlimited
	UseMemoryPool bool   `json:"use_memory_pool"`
	Verbose       bool   `json:"verbose"`
	NoColor       bool   `json:"no_color"`
}

const (
	DefaultGenerations = 5
	DefaultMaxWidth    = 512
	DefaultMaxHeight   = 1 << 16
	DefaultMaxHistory  = 1 << 24
)

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:   DefaultGenerations,
		MaxWidth:      DefaultMaxWidth,
		MaxHeight:     DefaultMaxHeight,
		MaxHistory:    DefaultMaxHistory,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(ErrInvalidArgs, "[LoadConfig] failed to unmarshal data from file %+v: %v", filename, err)
	}

	return config, nil
}

// Validate checks the values a run cannot start with
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidArgs, "[Validate] number of generations must be non-negative, got %d", c.Generations)
	}
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return errors.Wrapf(ErrInvalidArgs, "[Validate] grid limits must be positive, got %dx%d", c.MaxWidth, c.MaxHeight)
	}
	if c.MaxHistory < 0 {
		return errors.Wrapf(ErrInvalidArgs, "[Validate] max_history must not be negative (0 is unlimited), got %d", c.MaxHistory)
	}
	return nil
}

// Topology returns the neighbourhood rule selected by the torus setting
func (c Config) Topology() rules.Topology {
	if c.Torus {
		return rules.TopologyToroidal
	}
	return rules.TopologyBounded
}
