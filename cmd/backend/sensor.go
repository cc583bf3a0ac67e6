package backend

import (
	"fmt"

	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

type Sensors struct {
	Executer sensor.Executer
}

func (s *Sensors) NewReader(cfg config.Sensor) (sensor.Reader, error) {
	switch cfg.Source {
	case sensor.SourceNvidiaSMI:
		return sensor.NewNvidiaSMI(cfg.Command, cfg.Timeout, s.Executer), nil
	case sensor.SourceNVML:
		return sensor.NewNVML(), nil
	default:
		return nil, fmt.Errorf("%w: unknown sensor %q", models.ErrInvalidArgument, cfg.Source)
	}
}
