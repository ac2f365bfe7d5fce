package registry

import "github.com/vovakirdan/snake-ultra/internal/config"

func init() {
	Register(Variant{
		ID:          DefaultVariant,
		Title:       "Snake Ultra",
		Description: "Kichta at 10, PUCCI at 20. Speeds up 3ms per point down to 50ms.",
	})
	Register(Variant{
		ID:          "steady",
		Title:       "Snake Ultra (steady)",
		Description: "Gentler curve: 2ms per point, never below 70ms.",
		Apply: func(cfg *config.Config) {
			cfg.Speed.DecayMs = 2
			cfg.Speed.CapMs = 80
		},
	})
	Register(Variant{
		ID:          "fair",
		Title:       "Snake Ultra (fair food)",
		Description: "Food never spawns on the snake.",
		Apply: func(cfg *config.Config) {
			cfg.Food.AvoidSnake = true
		},
	})
}
