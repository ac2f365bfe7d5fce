package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/flavor"
	"github.com/vovakirdan/snake-ultra/internal/platform/tui"
	"github.com/vovakirdan/snake-ultra/internal/registry"
	"github.com/vovakirdan/snake-ultra/internal/session"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

// app holds what every command shares: the loaded configuration, the
// logger and the optional text cache.
type app struct {
	base   config.Config
	logger *log.Logger
	store  *storage.Store
}

// newApp loads the configuration named by --config.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return &app{base: cfg, logger: logger}, nil
}

// openStore opens the text cache. The game runs without it.
func (a *app) openStore() {
	if !a.base.Flavor.Cache || a.store != nil {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open message cache", "path", flagDBPath, "err", err)
		return
	}
	a.store = store
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// configure applies a variant over the loaded configuration.
func (a *app) configure(variantID string) (config.Config, error) {
	return registry.Configure(variantIDOrDefault(variantID), a.base)
}

// flavorSource builds the milestone text chain for cfg. Nil means only the
// built-in texts are shown.
func (a *app) flavorSource(cfg config.Config) flavor.Source {
	var src flavor.Source
	if cfg.Flavor.URL != "" {
		src = flavor.NewRemote(cfg.Flavor.URL, cfg.FlavorTimeout())
		if cfg.Flavor.Cache && a.store != nil {
			src = &flavor.Cached{Source: src, Cache: a.store, Name: "remote", Logger: a.logger}
		}
	}
	if cfg.Flavor.Fixed {
		return flavor.Fixed(src)
	}
	return src
}

// sessionOptions converts cfg for a new session.
func (a *app) sessionOptions(cfg config.Config) session.Options {
	return session.Options{
		Engine:            cfg.Engine(),
		Speed:             cfg.SpeedCurve(),
		ExplosionDuration: cfg.ExplosionDuration(),
		Flavor:            a.flavorSource(cfg),
		FlavorTimeout:     cfg.FlavorTimeout(),
		Seed:              flagSeed,
		Logger:            a.logger,
	}
}

// tuiOptions is the terminal front end's options builder.
func (a *app) tuiOptions(variantID string) (tui.Options, error) {
	v, err := registry.Get(variantIDOrDefault(variantID))
	if err != nil {
		return tui.Options{}, err
	}
	cfg, err := a.configure(v.ID)
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Session:   a.sessionOptions(cfg),
		FPS:       cfg.Display.FPS,
		Clipboard: clipboard.WriteAll,
		Logger:    a.logger,
		Variant:   v.ID,
	}, nil
}

func variantIDOrDefault(id string) string {
	if id == "" {
		return registry.DefaultVariant
	}
	return id
}

// logToFile redirects the logger while a full-screen UI owns the terminal.
func (a *app) logToFile() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	a.logger.SetOutput(f)
	return func() {
		a.logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
