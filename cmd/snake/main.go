// snake is Snake Ultra: a grid snake game whose milestones at score 10
// and 20 turn the trail grey and then invert the controls.
//
// Usage:
//
//	snake play [variant]     - Play in the terminal (menu when no variant)
//	snake play --window      - Play in a desktop window
//	snake list               - List game variants
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run headless autopilot games
//	snake config [variant]   - Print the effective configuration
//	snake messages           - Browse cached milestone texts
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: from config)
//	--seed <value>      - RNG seed for reproducible food placement
//	--config <path>     - Custom config YAML
//	--db <path>         - Milestone text cache (default: ~/.snake/snake.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Ultra - the snake that melts at 10 and flips at 20",
	Long: `Snake Ultra is a grid snake game for the terminal, the desktop and SSH.

Reach score 10 for KICHTA: the game freezes, then the trail turns grey.
Reach score 20 for PUCCI: the game freezes again, then every control is
reversed until the run ends.

Examples:
  snake play
  snake play fair
  snake play --window --sound
  snake serve --ssh :2222
  snake sim --runs 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "snake",
			Level:           level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to the milestone text cache")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(messagesCmd)
}
