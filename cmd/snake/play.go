package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-ultra/internal/audio"
	"github.com/vovakirdan/snake-ultra/internal/platform/tui"
	"github.com/vovakirdan/snake-ultra/internal/platform/window"
	"github.com/vovakirdan/snake-ultra/internal/registry"
)

var (
	flagWindow bool
	flagSound  bool
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Snake Ultra",
	Long: `Start playing. Without a variant the terminal version opens a menu.

Controls:
  Arrows/WASD/hjkl - Steer (reversed in PUCCI mode)
  Enter/Space      - Start or retry
  I                - Guide
  C                - Copy your score to share
  Esc/B            - Back
  Ctrl+S           - Screenshot (terminal)
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play steady
  snake play --window --scale 2
  snake play ultra --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal UI")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides audio.enabled)")
	playCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
		if !registry.Exists(variantID) {
			return fmt.Errorf("unknown variant %q, run 'snake list' to see them", variantID)
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	a.openStore()

	audioCfg := a.base.Audio
	if cmd.Flags().Changed("sound") {
		audioCfg.Enabled = flagSound
	}
	player, err := audio.NewPlayer(audioCfg, a.logger)
	if err != nil {
		a.logger.Warn("sound disabled", "err", err)
		player = nil
	}
	defer player.Close()

	if flagWindow {
		cfg, err := a.configure(variantID)
		if err != nil {
			return err
		}
		return window.Run(window.Options{
			Session: a.sessionOptions(cfg),
			Audio:   player,
			Logger:  a.logger,
			Scale:   flagScale,
		})
	}

	restore, err := a.logToFile()
	if err != nil {
		a.logger.Warn("logging to stderr", "err", err)
	} else {
		defer restore()
	}

	build := func(id string) (tui.Options, error) {
		opts, err := a.tuiOptions(id)
		opts.Audio = player
		return opts, err
	}

	if variantID != "" {
		opts, err := build(variantID)
		if err != nil {
			return err
		}
		return tui.Run(opts)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	var store tui.MessageStore
	if a.store != nil {
		store = a.store
	}
	return tui.RunApp(build, store, width, height, a.logger)
}
