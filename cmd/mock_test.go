package cmd

import (
	"context"
	"time"

	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/sensor"
)

type MockReader struct {
	temp  int
	err   error
	calls int
}

func (m *MockReader) Read(ctx context.Context) (int, error) {
	m.calls++
	return m.temp, m.err
}

type MockSensors struct {
	reader *MockReader
	cfg    config.Sensor
	built  int
}

func (m *MockSensors) NewReader(cfg config.Sensor) (sensor.Reader, error) {
	m.cfg = cfg
	m.built++
	return m.reader, nil
}

type MockClock struct {
	now time.Time
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	return nil
}
