// Package config provides YAML-based configuration for Snake Ultra.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

// Config is the full game configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Food      FoodConfig      `yaml:"food"`
	Flavor    FlavorConfig    `yaml:"flavor"`
	Audio     AudioConfig     `yaml:"audio"`
	Display   DisplayConfig   `yaml:"display"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpeedConfig defines the tick interval curve in milliseconds.
type SpeedConfig struct {
	BaseMs  int `yaml:"base_ms"`  // Interval at score 0
	DecayMs int `yaml:"decay_ms"` // Reduction per point
	CapMs   int `yaml:"cap_ms"`   // Maximum total reduction
}

// ExplosionConfig defines the milestone pause.
type ExplosionConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"` // Never spawn on the body
}

// FlavorConfig defines the milestone text service.
type FlavorConfig struct {
	Fixed     bool   `yaml:"fixed"`      // Levels 10 and 20 use fixed texts
	URL       string `yaml:"url"`        // Empty disables remote lookups
	TimeoutMs int    `yaml:"timeout_ms"` // Per lookup
	Cache     bool   `yaml:"cache"`      // Remember remote texts in the database
}

// AudioConfig defines the synthesized sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Master volume in [0, 1]
	SampleRate int     `yaml:"sample_rate"`
}

// DisplayConfig defines front end refresh.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// Engine converts the grid and food sections.
func (c Config) Engine() engine.Config {
	return engine.Config{GridSize: c.Grid.Size, AvoidSnake: c.Food.AvoidSnake}
}

// SpeedCurve converts the speed section.
func (c Config) SpeedCurve() engine.SpeedConfig {
	return engine.SpeedConfig{
		Base:  ms(c.Speed.BaseMs),
		Decay: ms(c.Speed.DecayMs),
		Cap:   ms(c.Speed.CapMs),
	}
}

// ExplosionDuration returns the milestone pause length.
func (c Config) ExplosionDuration() time.Duration {
	return ms(c.Explosion.DurationMs)
}

// FlavorTimeout returns the per lookup timeout.
func (c Config) FlavorTimeout() time.Duration {
	return ms(c.Flavor.TimeoutMs)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Size < engine.MinGridSize {
		errs = append(errs, fmt.Errorf("grid.size must be at least %d, got %d", engine.MinGridSize, c.Grid.Size))
	}
	if c.Speed.BaseMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.base_ms must be positive, got %d", c.Speed.BaseMs))
	}
	if c.Speed.DecayMs < 0 {
		errs = append(errs, fmt.Errorf("speed.decay_ms must not be negative, got %d", c.Speed.DecayMs))
	}
	if c.Speed.CapMs < 0 || c.Speed.CapMs >= c.Speed.BaseMs {
		errs = append(errs, fmt.Errorf("speed.cap_ms must be in [0, base_ms), got %d", c.Speed.CapMs))
	}
	if c.Explosion.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("explosion.duration_ms must be positive, got %d", c.Explosion.DurationMs))
	}
	if c.Flavor.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("flavor.timeout_ms must be positive, got %d", c.Flavor.TimeoutMs))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in [1, 240], got %d", c.Display.FPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
