// Package sim plays Snake Ultra headlessly with a greedy autopilot. It
// drives real sessions on a manual clock, so a run of thousands of ticks
// finishes in milliseconds and is reproducible from its seed.
package sim

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// Cause is why a run ended.
type Cause string

const (
	CauseWall  Cause = "wall"
	CauseSelf  Cause = "self"
	CauseLimit Cause = "limit"
)

// Options configures a batch of runs.
type Options struct {
	// Session is the template for each run. Clock, Seed and Flavor are
	// replaced per run.
	Session  session.Options
	Runs     int
	SeedBase int64
	SeedStep int64
	// MaxTicks caps a run that never dies.
	MaxTicks int
	Logger   *log.Logger
}

// RunStats summarises one game.
type RunStats struct {
	Run    int
	Seed   int64
	Score  int
	Length int
	Ticks  uint64
	Cause  Cause
	// Tick at which each milestone was reached, zero if never.
	Milestone10 uint64
	Milestone20 uint64
	// Elapsed is the simulated wall time, pauses included.
	Elapsed time.Duration
}

// Run plays opts.Runs games in parallel and returns them in run order.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Runs <= 0 {
		return Report{}, fmt.Errorf("sim: runs must be > 0, got %d", opts.Runs)
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 10000
	}
	if opts.SeedStep == 0 {
		opts.SeedStep = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	runs := make([]RunStats, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range opts.Runs {
		seed := opts.SeedBase + int64(i)*opts.SeedStep
		g.Go(func() error {
			st, err := Play(ctx, opts.Session, seed, opts.MaxTicks)
			if err != nil {
				return fmt.Errorf("sim: run %d: %w", i+1, err)
			}
			st.Run = i + 1
			runs[i] = st
			opts.Logger.Debug("run finished", "run", st.Run, "seed", seed, "score", st.Score, "cause", st.Cause)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Runs: runs}, nil
}

// Play runs one game to its end or to maxTicks.
func Play(ctx context.Context, tmpl session.Options, seed int64, maxTicks int) (RunStats, error) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := session.NewManualClock(start)

	opts := tmpl
	opts.Clock = clk
	opts.Seed = seed
	opts.Flavor = nil
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := session.New(opts)
	defer s.Close()

	st := RunStats{Seed: seed, Cause: CauseLimit}
	if !s.Start() {
		return st, fmt.Errorf("session refused to start")
	}
	s.Frame(clk.Now())

	var want engine.Direction
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		snap := s.Snapshot()
		st.Score, st.Length, st.Ticks = snap.Score, snap.Length(), snap.Ticks
		st.Elapsed = clk.Now().Sub(start)

		switch {
		case snap.Status == engine.StatusGameOver:
			if next := snap.Head().Add(want); next.In(snap.GridSize) {
				st.Cause = CauseSelf
			} else {
				st.Cause = CauseWall
			}
			return st, nil
		case snap.Status.Exploding():
			clk.Advance(s.ExplosionDuration())
		case int(snap.Ticks) >= maxTicks:
			return st, nil
		default:
			want, _ = Choose(snap.State, snap.GridSize)
			s.SubmitDirection(Request(want, snap.Pucci))
			clk.Advance(snap.Interval + time.Millisecond)
		}

		for _, ev := range s.Frame(clk.Now()) {
			if ev.Kind != session.EventMilestone {
				continue
			}
			switch ev.Level {
			case 10:
				st.Milestone10 = s.Snapshot().Ticks
			case 20:
				st.Milestone20 = s.Snapshot().Ticks
			}
		}
	}
}
