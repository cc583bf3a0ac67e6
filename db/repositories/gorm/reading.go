package repositories_gorm

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gitlab.com/nunet/gputemp/db/repositories"
	"gitlab.com/nunet/gputemp/models"
)

// TemperatureReadingRepositoryGORM is a GORM implementation of the TemperatureReadingRepository interface.
type TemperatureReadingRepositoryGORM struct {
	repositories.GenericRepository[models.TemperatureReading]
}

// NewTemperatureReadingRepository creates a new instance of TemperatureReadingRepositoryGORM.
func NewTemperatureReadingRepository(db *gorm.DB) repositories.TemperatureReadingRepository {
	return &TemperatureReadingRepositoryGORM{
		NewGenericRepository[models.TemperatureReading](db),
	}
}

func (repo *TemperatureReadingRepositoryGORM) Append(
	ctx context.Context,
	temperature int,
	at time.Time,
) (models.TemperatureReading, error) {
	if at.IsZero() {
		at = time.Now()
	}

	reading, err := repo.Create(ctx, models.TemperatureReading{
		Timestamp:   at.UTC(),
		Temperature: temperature,
	})
	if err != nil {
		return reading, fmt.Errorf("%w: %w", models.ErrStoreWrite, err)
	}

	return reading, nil
}

func (repo *TemperatureReadingRepositoryGORM) Recent(
	ctx context.Context,
	limit int,
) ([]models.TemperatureReading, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer, got %d", models.ErrInvalidArgument, limit)
	}

	// Rows written by the original script hold naive local timestamps while new rows are UTC,
	// and sqlite compares them as text. Insertion order is the only reliable recency.
	query := repo.GetQuery()
	query.SortBy = []string{"-ID"}
	query.Limit = limit

	return repo.FindAll(ctx, query)
}
