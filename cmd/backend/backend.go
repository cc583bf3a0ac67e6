package backend

import (
	"github.com/spf13/afero"

	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/internal/monitor"
	"gitlab.com/nunet/gputemp/sensor"
)

// SensorProvider builds the temperature reader selected by the configuration
type SensorProvider interface {
	NewReader(cfg config.Sensor) (sensor.Reader, error)
}

// Backend groups everything the CLI touches outside of its own process
type Backend struct {
	// FS is used for config lookup and database directory creation
	FS afero.Fs

	Sensors SensorProvider

	// Clock drives the monitor loop; nil means the wall clock
	Clock monitor.Clock

	// GPUs lists the NVIDIA cards present on the machine. It is only consulted to explain
	// an unavailable sensor; nil disables the hint.
	GPUs func() ([]string, error)
}

// NewBackend returns the production backend
func NewBackend() *Backend {
	return &Backend{
		FS:      afero.NewOsFs(),
		Sensors: &Sensors{Executer: &sensor.CmdExecutor{}},
		GPUs:    sensor.NVIDIACards,
	}
}
