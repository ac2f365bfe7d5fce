package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockFiresInOrder(t *testing.T) {
	clk := NewManualClock(epoch)
	var fired []string

	clk.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	clk.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	stopped := clk.AfterFunc(time.Second, func() { fired = append(fired, "x") })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	clk.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 2, clk.Pending())

	clk.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Zero(t, clk.Pending())
	assert.Equal(t, epoch.Add(2500*time.Millisecond), clk.Now())
}
