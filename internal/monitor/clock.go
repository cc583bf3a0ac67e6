package monitor

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is the time source of the loop. Sleep returns early with ctx.Err() when ctx is done.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock adapts a clock.Clock to Clock.
type SystemClock struct {
	clock clock.Clock
}

// NewSystemClock returns a Clock backed by c, or by the wall clock when c is nil.
func NewSystemClock(c clock.Clock) *SystemClock {
	if c == nil {
		c = clock.New()
	}
	return &SystemClock{clock: c}
}

func (s *SystemClock) Now() time.Time {
	return s.clock.Now()
}

func (s *SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := s.clock.Timer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
