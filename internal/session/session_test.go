package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/flavor"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, opts Options) (*Session, *ManualClock) {
	t.Helper()
	clk := NewManualClock(epoch)
	opts.Clock = clk
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	s := New(opts)
	t.Cleanup(s.Close)
	return s, clk
}

// edit mutates the live state; only tests reach into it.
func edit(s *Session, f func(st *engine.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(&s.state)
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewSessionShowsStart(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	snap := s.Snapshot()

	assert.Equal(t, engine.StatusStart, snap.Status)
	assert.Equal(t, engine.DefaultGridSize, snap.GridSize)
	assert.Len(t, snap.Snake, engine.StartLength)
	assert.Empty(t, snap.Message)
}

func TestStartOnlyFromStartOrGameOver(t *testing.T) {
	s, clk := newTestSession(t, Options{})

	require.True(t, s.Start())
	assert.Equal(t, engine.StatusPlaying, s.Status())
	assert.False(t, s.Start(), "already playing")
	assert.Equal(t, []EventKind{EventStarted}, kinds(s.Frame(clk.Now())))

	edit(s, func(st *engine.State) { st.Status = engine.StatusGameOver; st.Score = 12 })
	require.True(t, s.Start())
	snap := s.Snapshot()
	assert.Equal(t, engine.StatusPlaying, snap.Status)
	assert.Zero(t, snap.Score)
	assert.Equal(t, engine.Up, snap.Pending)
}

func TestToggleInfo(t *testing.T) {
	s, _ := newTestSession(t, Options{})

	assert.True(t, s.ToggleInfo())
	assert.Equal(t, engine.StatusInfo, s.Status())
	assert.False(t, s.Start(), "start is hidden behind the overlay")
	assert.True(t, s.ToggleInfo())
	assert.Equal(t, engine.StatusStart, s.Status())

	require.True(t, s.Start())
	assert.False(t, s.ToggleInfo())
	assert.Equal(t, engine.StatusPlaying, s.Status())
}

func TestSubmitDirectionIgnoredUnlessPlaying(t *testing.T) {
	s, _ := newTestSession(t, Options{})

	assert.False(t, s.SubmitDirection(engine.Left))
	assert.Equal(t, engine.Up, s.Snapshot().Pending)

	require.True(t, s.Start())
	assert.True(t, s.SubmitDirection(engine.Left))
	assert.False(t, s.SubmitDirection(engine.Down), "reverse of committed Up")
	assert.Equal(t, engine.Left, s.Snapshot().Pending)
}

func TestSubmitDirectionInvertedInPucci(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	require.True(t, s.Start())
	edit(s, func(st *engine.State) { st.Pucci = true })

	assert.True(t, s.SubmitDirection(engine.Left))
	assert.Equal(t, engine.Right, s.Snapshot().Pending)
}

func TestSubmitDirectionNeverQueuesReversalWhileTicking(t *testing.T) {
	s, clk := newTestSession(t, Options{})
	require.True(t, s.Start())

	done := make(chan struct{})
	var wg sync.WaitGroup
	for _, d := range []engine.Direction{engine.Up, engine.Down, engine.Left, engine.Right} {
		wg.Add(1)
		go func(d engine.Direction) {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					s.SubmitDirection(d)
				}
			}
		}(d)
	}

	for range 500 {
		clk.Advance(151 * time.Millisecond)
		s.Frame(clk.Now())
		snap := s.Snapshot()
		require.NotEqual(t, snap.Direction.Opposite(), snap.Pending,
			"pending %v reverses committed %v", snap.Pending, snap.Direction)
		if snap.Status == engine.StatusGameOver {
			s.Start()
		}
	}
	close(done)
	wg.Wait()
}

func TestFrameRunsOneTickPerElapsedInterval(t *testing.T) {
	s, clk := newTestSession(t, Options{})
	require.True(t, s.Start())
	edit(s, func(st *engine.State) { st.Food = engine.Cell{X: 0, Y: 0} })

	clk.Advance(150 * time.Millisecond)
	s.Frame(clk.Now())
	assert.Zero(t, s.Snapshot().Ticks, "interval must be strictly exceeded")

	clk.Advance(time.Millisecond)
	s.Frame(clk.Now())
	assert.Equal(t, uint64(1), s.Snapshot().Ticks)
	assert.Equal(t, engine.Cell{X: 10, Y: 9}, s.Snapshot().Head())

	// A long stall still produces a single step.
	clk.Advance(time.Second)
	s.Frame(clk.Now())
	assert.Equal(t, uint64(2), s.Snapshot().Ticks)
}

func TestFrameReportsGameOver(t *testing.T) {
	s, clk := newTestSession(t, Options{})
	require.True(t, s.Start())
	edit(s, func(st *engine.State) {
		st.Snake = []engine.Cell{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 7}}
		st.Direction = engine.Left
	})
	s.input.Reset(engine.Left)
	s.Frame(clk.Now())

	clk.Advance(200 * time.Millisecond)
	events := s.Frame(clk.Now())

	assert.Equal(t, []EventKind{EventGameOver}, kinds(events))
	snap := s.Snapshot()
	assert.Equal(t, engine.StatusGameOver, snap.Status)
	assert.Equal(t, []engine.Cell{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 7}}, snap.Snake)
}

// reachScore places the snake one step from food with the given score.
func reachScore(s *Session, score int) {
	edit(s, func(st *engine.State) {
		st.Score = score
		st.Food = st.Head().Add(st.Direction)
	})
}

func TestMilestoneTenPausesAndResumesGrayscale(t *testing.T) {
	s, clk := newTestSession(t, Options{ExplosionDuration: 3 * time.Second})
	require.True(t, s.Start())
	s.Frame(clk.Now())
	reachScore(s, 9)

	clk.Advance(200 * time.Millisecond)
	events := s.Frame(clk.Now())
	require.Equal(t, []EventKind{EventFoodEaten, EventMilestone}, kinds(events))
	assert.Equal(t, 10, events[1].Level)
	assert.Equal(t, flavor.KichtaText, events[1].Text)

	snap := s.Snapshot()
	assert.Equal(t, engine.StatusExploding10, snap.Status)
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, flavor.KichtaText, snap.Message)
	assert.Equal(t, 3*time.Second, snap.PauseLeft)

	// Frozen for the whole pause.
	frozen := snap.State
	clk.Advance(2 * time.Second)
	assert.Empty(t, s.Frame(clk.Now()))
	assert.Equal(t, frozen, s.Snapshot().State)
	assert.InDelta(t, 2.0/3.0, s.Snapshot().PauseProgress(), 0.001)

	clk.Advance(time.Second)
	events = s.Frame(clk.Now())
	require.Equal(t, []EventKind{EventResumed}, kinds(events))
	assert.Equal(t, 10, events[0].Level)

	snap = s.Snapshot()
	assert.Equal(t, engine.StatusPlaying, snap.Status)
	assert.False(t, snap.Pucci)
	assert.Equal(t, engine.GrayscaleTrail(len(snap.Snake)), snap.Colors)
}

func TestMilestoneTwentyEnablesPucci(t *testing.T) {
	s, clk := newTestSession(t, Options{ExplosionDuration: time.Second})
	require.True(t, s.Start())
	s.Frame(clk.Now())
	reachScore(s, 19)

	clk.Advance(time.Second)
	s.Frame(clk.Now())
	require.Equal(t, engine.StatusExploding20, s.Status())
	assert.Equal(t, flavor.PucciText, s.Message())

	clk.Advance(time.Second)
	s.Frame(clk.Now())
	snap := s.Snapshot()
	assert.Equal(t, engine.StatusPlaying, snap.Status)
	assert.True(t, snap.Pucci)

	// Controls are now inverted.
	assert.True(t, s.SubmitDirection(engine.Right))
	assert.Equal(t, engine.Left, s.Snapshot().Pending)
}

func TestFlavorLookupDoesNotBlockResume(t *testing.T) {
	release := make(chan struct{})
	src := flavor.SourceFunc(func(ctx context.Context, level int) (string, error) {
		select {
		case <-release:
			return "KICHTA MEGA", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	s, clk := newTestSession(t, Options{Flavor: src, ExplosionDuration: time.Second})
	require.True(t, s.Start())
	s.Frame(clk.Now())
	reachScore(s, 9)

	clk.Advance(time.Second)
	s.Frame(clk.Now())
	assert.Equal(t, flavor.KichtaText, s.Message())

	clk.Advance(time.Second)
	s.Frame(clk.Now())
	assert.Equal(t, engine.StatusPlaying, s.Status(), "resume must not wait for the lookup")

	close(release)
	assert.Eventually(t, func() bool { return s.Message() == "KICHTA MEGA" }, time.Second, 5*time.Millisecond)
}

func TestFlavorLookupFailureKeepsDefault(t *testing.T) {
	calls := make(chan int, 1)
	src := flavor.SourceFunc(func(ctx context.Context, level int) (string, error) {
		calls <- level
		return "", flavor.ErrNoText
	})
	s, clk := newTestSession(t, Options{Flavor: src})
	require.True(t, s.Start())
	s.Frame(clk.Now())
	reachScore(s, 9)

	clk.Advance(time.Second)
	s.Frame(clk.Now())

	assert.Equal(t, 10, <-calls)
	s.Close()
	assert.Equal(t, flavor.KichtaText, s.Message())
}

func TestFlavorLookupTrimsAndIgnoresBlank(t *testing.T) {
	for _, tt := range []struct {
		name, answer, want string
	}{
		{"trimmed", "  KICHTA MEGA \n", "KICHTA MEGA"},
		{"blank", "   ", flavor.KichtaText},
	} {
		t.Run(tt.name, func(t *testing.T) {
			src := flavor.SourceFunc(func(context.Context, int) (string, error) {
				return tt.answer, nil
			})
			s, clk := newTestSession(t, Options{Flavor: src})
			require.True(t, s.Start())
			s.Frame(clk.Now())
			reachScore(s, 9)

			clk.Advance(time.Second)
			s.Frame(clk.Now())
			s.Close()
			assert.Equal(t, tt.want, s.Message())
		})
	}
}

func TestCloseCancelsLookup(t *testing.T) {
	src := flavor.SourceFunc(func(ctx context.Context, level int) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	s, clk := newTestSession(t, Options{Flavor: src, FlavorTimeout: time.Hour})
	require.True(t, s.Start())
	s.Frame(clk.Now())
	reachScore(s, 9)
	clk.Advance(time.Second)
	s.Frame(clk.Now())

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return")
	}
	assert.False(t, s.Start())
}

func TestShareText(t *testing.T) {
	assert.Equal(t, "Mon score: 12 sur Snake Ultra ! Essaye de débloquer le mode PUCCI !", ShareText(12))
}

func TestInterval(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	assert.Equal(t, 150*time.Millisecond, s.Interval())
	edit(s, func(st *engine.State) { st.Score = 10 })
	assert.Equal(t, 120*time.Millisecond, s.Interval())
}
