// Package registry provides a global registry of game variants.
// A variant is a named preset layered over the loaded configuration,
// registered from init() so the CLI can list and select them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

// DefaultVariant is played when no variant is named.
const DefaultVariant = "ultra"

// Variant is a named configuration preset.
type Variant struct {
	ID          string
	Title       string
	Description string
	// Apply adjusts the loaded configuration. Nil leaves it unchanged.
	Apply func(cfg *config.Config)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant with the given ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Configure applies the variant to a copy of base and validates the result.
func Configure(id string, base config.Config) (config.Config, error) {
	v, err := Get(id)
	if err != nil {
		return base, err
	}
	cfg := base
	if v.Apply != nil {
		v.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return cfg, nil
}
