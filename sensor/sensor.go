package sensor

import "context"

const (
	SourceNvidiaSMI = "nvidia-smi"
	SourceNVML      = "nvml"
)

// Reader returns the current GPU temperature in degrees Celsius.
//
// Implementations classify failures with models.ErrSensorUnavailable,
// models.ErrSensorQueryFailed and models.ErrParse. They never retry.
type Reader interface {
	Read(ctx context.Context) (int, error)
}
