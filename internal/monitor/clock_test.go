package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestSystemClockSleep(t *testing.T) {
	c := NewSystemClock(nil)

	start := c.Now()
	assert.NoError(t, c.Sleep(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, c.Now().Sub(start), 10*time.Millisecond)

	assert.NoError(t, c.Sleep(context.Background(), 0))
}

func TestSystemClockSleepCancelled(t *testing.T) {
	mock := clock.NewMock()
	c := NewSystemClock(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Sleep(ctx, time.Hour), context.Canceled)
}

func TestSystemClockSleepInterrupted(t *testing.T) {
	mock := clock.NewMock()
	c := NewSystemClock(mock)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// the mock never advances, so only the context can end the sleep
	assert.ErrorIs(t, c.Sleep(ctx, time.Hour), context.DeadlineExceeded)
}

func TestSystemClockNowFollowsSource(t *testing.T) {
	mock := clock.NewMock()
	c := NewSystemClock(mock)

	before := c.Now()
	mock.Add(time.Minute)
	assert.Equal(t, time.Minute, c.Now().Sub(before))
}
