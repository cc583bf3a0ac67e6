//go:build !linux

package sensor

import (
	"context"
	"fmt"

	"gitlab.com/nunet/gputemp/models"
)

// NVML is only available on linux builds.
type NVML struct{}

func NewNVML() *NVML {
	return &NVML{}
}

func (n *NVML) Read(ctx context.Context) (int, error) {
	return 0, fmt.Errorf("%w: nvml is not supported on this platform", models.ErrSensorUnavailable)
}
