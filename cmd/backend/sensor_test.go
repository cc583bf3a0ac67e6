package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

func TestSensorsNewReader(t *testing.T) {
	sensors := NewBackend().Sensors

	reader, err := sensors.NewReader(config.Sensor{Source: sensor.SourceNvidiaSMI, Command: "nvidia-smi", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &sensor.NvidiaSMI{}, reader)

	reader, err = sensors.NewReader(config.Sensor{Source: sensor.SourceNVML})
	require.NoError(t, err)
	assert.IsType(t, &sensor.NVML{}, reader)

	_, err = sensors.NewReader(config.Sensor{Source: "rocm-smi"})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}
