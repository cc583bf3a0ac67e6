package db

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gitlab.com/nunet/gputemp/models"
)

// Open opens (creating if absent) the SQLite database at path and makes sure the
// readings table exists. It is safe to call against a file created by an earlier run.
func Open(path string, fs afero.Fs) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: unable to create database directory %s: %v", models.ErrStoreWrite, dir, err)
		}
	}

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database %s: %v", models.ErrStoreWrite, path, err)
	}

	if err := database.AutoMigrate(&models.TemperatureReading{}); err != nil {
		return nil, fmt.Errorf("%w: unable to auto migrate %s: %v", models.ErrStoreWrite, path, multierr.Append(err, Close(database)))
	}

	zlog.Sugar().Debugf("opened database %s", path)
	return database, nil
}

// Close releases the connection pool behind database.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("unable to get database handle: %w", err)
	}
	return sqlDB.Close()
}
