package engine

import "time"

// SpeedConfig describes the linear speed-up of the tick interval.
type SpeedConfig struct {
	Base  time.Duration // interval at score 0
	Decay time.Duration // reduction per point
	Cap   time.Duration // maximum total reduction
}

// DefaultSpeed is 150ms shrinking by 3ms a point down to 50ms.
var DefaultSpeed = SpeedConfig{
	Base:  150 * time.Millisecond,
	Decay: 3 * time.Millisecond,
	Cap:   100 * time.Millisecond,
}

// Interval returns max(Base - score*Decay, Base - Cap).
func (c SpeedConfig) Interval(score int) time.Duration {
	score = max(score, 0)
	return max(c.Base-time.Duration(score)*c.Decay, c.Base-c.Cap)
}
