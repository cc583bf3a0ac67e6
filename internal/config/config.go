package config

import (
	"fmt"
	"math"
	"time"

	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

type Config struct {
	General `mapstructure:"general"`
	Store   `mapstructure:"store"`
	Query   `mapstructure:"query"`
	Monitor `mapstructure:"monitor"`
	Sensor  `mapstructure:"sensor"`
}

type General struct {
	Debug bool `mapstructure:"debug"`
}

type Store struct {
	DBFile string `mapstructure:"db_file"`
}

type Query struct {
	Limit int `mapstructure:"limit"`
}

type Monitor struct {
	Interval int `mapstructure:"interval"` // in milliseconds
	Duration int `mapstructure:"duration"` // in seconds
}

type Sensor struct {
	Source  string        `mapstructure:"source"`  // nvidia-smi or nvml
	Command string        `mapstructure:"command"` // path of the nvidia-smi binary
	Timeout time.Duration `mapstructure:"timeout"`
}

// Largest interval and duration that still fit in a time.Duration.
const (
	maxIntervalMillis  = math.MaxInt64 / int64(time.Millisecond)
	maxDurationSeconds = math.MaxInt64 / int64(time.Second)
)

func (m Monitor) IntervalDuration() time.Duration {
	return time.Duration(m.Interval) * time.Millisecond
}

func (m Monitor) TotalDuration() time.Duration {
	return time.Duration(m.Duration) * time.Second
}

// Validate checks every option up front so that no work starts with a bad configuration.
func (c *Config) Validate() error {
	if c.Store.DBFile == "" {
		return fmt.Errorf("%w: db-file must not be empty", models.ErrInvalidArgument)
	}
	if c.Query.Limit <= 0 {
		return fmt.Errorf("%w: limit must be a positive integer, got %d", models.ErrInvalidArgument, c.Query.Limit)
	}
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("%w: interval must be a positive number of milliseconds, got %d", models.ErrInvalidArgument, c.Monitor.Interval)
	}
	if c.Monitor.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of seconds, got %d", models.ErrInvalidArgument, c.Monitor.Duration)
	}
	if int64(c.Monitor.Interval) > maxIntervalMillis {
		return fmt.Errorf("%w: interval must be at most %d milliseconds, got %d", models.ErrInvalidArgument, maxIntervalMillis, c.Monitor.Interval)
	}
	if int64(c.Monitor.Duration) > maxDurationSeconds {
		return fmt.Errorf("%w: duration must be at most %d seconds, got %d", models.ErrInvalidArgument, maxDurationSeconds, c.Monitor.Duration)
	}

	switch c.Sensor.Source {
	case sensor.SourceNvidiaSMI:
		if c.Sensor.Command == "" {
			return fmt.Errorf("%w: sensor-command must not be empty", models.ErrInvalidArgument)
		}
	case sensor.SourceNVML:
	default:
		return fmt.Errorf("%w: unknown sensor %q (expected %s or %s)",
			models.ErrInvalidArgument, c.Sensor.Source, sensor.SourceNvidiaSMI, sensor.SourceNVML)
	}

	if c.Sensor.Timeout <= 0 {
		return fmt.Errorf("%w: sensor-timeout must be positive, got %s", models.ErrInvalidArgument, c.Sensor.Timeout)
	}

	return nil
}
