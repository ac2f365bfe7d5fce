package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/sim"
)

var (
	flagRuns     int
	flagTicks    int
	flagSeedStep int64
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run headless autopilot games and print a report",
	Long: `Plays games with a greedy autopilot on a simulated clock and reports
scores, milestones and how each run ended. Runs are reproducible: run i
uses seed --seed + i*--seed-step.

Examples:
  snake sim
  snake sim fair --runs 50 --ticks 20000
  snake sim --seed 42 --runs 1 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of games")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Tick cap per game")
	simCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "Seed increment between runs")
}

func runSim(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
	}
	cfg, err := a.configure(variantID)
	if err != nil {
		return err
	}

	seedBase := flagSeed
	if seedBase == 0 {
		seedBase = time.Now().UnixNano() % 1_000_000
	}

	start := time.Now()
	report, err := sim.Run(cmd.Context(), sim.Options{
		Session:  a.sessionOptions(cfg),
		Runs:     flagRuns,
		SeedBase: seedBase,
		SeedStep: flagSeedStep,
		MaxTicks: flagTicks,
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}

	fmt.Print(report.Render())
	a.logger.Info("simulation done", "runs", len(report.Runs), "took", time.Since(start).Round(time.Millisecond))
	return nil
}
