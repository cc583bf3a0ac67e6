package repositories

import (
	"context"
	"time"

	"gitlab.com/nunet/gputemp/models"
)

// TemperatureReadingRepository is the append-only store of GPU temperature readings.
type TemperatureReadingRepository interface {
	GenericRepository[models.TemperatureReading]

	// Append stores a reading taken at the given time. A zero time means now.
	// Failures wrap models.ErrStoreWrite.
	Append(ctx context.Context, temperature int, at time.Time) (models.TemperatureReading, error)

	// Recent returns at most limit readings, most recent first.
	// A non-positive limit wraps models.ErrInvalidArgument.
	Recent(ctx context.Context, limit int) ([]models.TemperatureReading, error)
}
