package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		Speed: SpeedConfig{
			BaseMs:  150,
			DecayMs: 3,
			CapMs:   100,
		},
		Explosion: ExplosionConfig{
			DurationMs: 3000,
		},
		Food: FoodConfig{
			AvoidSnake: false,
		},
		Flavor: FlavorConfig{
			Fixed:     true,
			URL:       "",
			TimeoutMs: 5000,
			Cache:     true,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
	}
}
