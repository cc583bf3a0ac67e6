//go:build linux

package sensor

import (
	"context"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gitlab.com/nunet/gputemp/models"
)

const (
	sensorNVML nvml.TemperatureSensors = iota
)

// NVML reads the temperature of the first GPU through the NVIDIA Management Library.
type NVML struct{}

func NewNVML() *NVML {
	return &NVML{}
}

func (n *NVML) Read(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ret := nvml.Init()
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("%w: failed to initialize nvml: %s", models.ErrSensorUnavailable, nvml.ErrorString(ret))
	}
	defer func() {
		ret := nvml.Shutdown()
		if ret != nvml.SUCCESS {
			zlog.Sugar().Warnf("failed to shutdown nvml: %s", nvml.ErrorString(ret))
		}
	}()

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("%w: failed to get device handle for device 0: %s", models.ErrSensorQueryFailed, nvml.ErrorString(ret))
	}

	temp, ret := device.GetTemperature(sensorNVML)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("%w: failed to get temperature for device 0: %s", models.ErrSensorQueryFailed, nvml.ErrorString(ret))
	}

	zlog.Sugar().Debugf("nvml reported %d°C", temp)
	return int(temp), nil
}
