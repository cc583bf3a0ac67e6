package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

// Sink persists a successful reading.
type Sink interface {
	Append(ctx context.Context, temperature int, at time.Time) (models.TemperatureReading, error)
}

// Summary describes a finished monitoring run.
type Summary struct {
	RunID    string
	Attempts int
	Stored   int
	Failed   int
}

// Loop captures a reading every Interval until Duration has elapsed since the start.
// Ticks never overlap: one running late delays the next instead of stacking up.
type Loop struct {
	interval time.Duration
	duration time.Duration
	reader   sensor.Reader
	sink     Sink
	clock    Clock
}

type Option func(*Loop)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// NewLoop validates the timing parameters before any tick can run.
func NewLoop(interval, duration time.Duration, reader sensor.Reader, sink Sink, opts ...Option) (*Loop, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %s", models.ErrInvalidArgument, interval)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %s", models.ErrInvalidArgument, duration)
	}
	if reader == nil || sink == nil {
		return nil, fmt.Errorf("%w: monitor needs a sensor reader and a sink", models.ErrInvalidArgument)
	}

	l := &Loop{
		interval: interval,
		duration: duration,
		reader:   reader,
		sink:     sink,
		clock:    NewSystemClock(nil),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Run blocks until the duration elapsed, ctx is cancelled or a reading could not be stored.
// Sensor failures are logged and the loop moves on to the next tick.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	log := zlog.With(zap.String("run_id", summary.RunID))

	start := l.clock.Now()
	deadline := start.Add(l.duration)
	log.Sugar().Infof("Starting temperature monitoring for %s with %s intervals", l.duration, l.interval)

	for slot := int64(0); ; {
		if l.clock.Now().Sub(start) >= l.duration {
			break
		}

		if err := l.tick(ctx, log, &summary); err != nil {
			return summary, err
		}

		slot++
		now := l.clock.Now()
		due := start.Add(time.Duration(slot) * l.interval)
		if !due.After(now) {
			// running late: fire right away and realign to the grid
			slot = int64(now.Sub(start) / l.interval)
			log.Debug("tick overran its interval", zap.Duration("late_by", now.Sub(due)))
			continue
		}

		if due.After(deadline) {
			due = deadline
		}
		if err := l.clock.Sleep(ctx, due.Sub(now)); err != nil {
			log.Sugar().Infof("Temperature monitoring stopped after %d readings", summary.Stored)
			return summary, err
		}
	}

	log.Info("Temperature monitoring completed",
		zap.Int("attempts", summary.Attempts),
		zap.Int("stored", summary.Stored),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (l *Loop) tick(ctx context.Context, log *zap.Logger, summary *Summary) error {
	summary.Attempts++

	temp, err := l.reader.Read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		summary.Failed++
		log.Error("Error getting GPU temperature", zap.Error(err))
		return nil
	}

	reading, err := l.sink.Append(ctx, temp, l.clock.Now())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		summary.Failed++
		return fmt.Errorf("monitoring aborted after %d stored readings: %w", summary.Stored, err)
	}

	summary.Stored++
	log.Info(fmt.Sprintf("GPU Temperature: %d°C", reading.Temperature), zap.Uint("id", reading.ID))
	return nil
}
