package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nunet/gputemp/models"
)

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "gpu_temperatures.db")

	database, err := Open(path, afero.NewOsFs())
	require.NoError(t, err)
	defer Close(database)

	assert.True(t, database.Migrator().HasTable("gpu_temperatures"))
	for _, column := range []string{"id", "timestamp", "temperature"} {
		assert.True(t, database.Migrator().HasColumn(&models.TemperatureReading{}, column), column)
	}

	_, err = afero.NewOsFs().Stat(path)
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpu_temperatures.db")

	database, err := Open(path, afero.NewOsFs())
	require.NoError(t, err)
	require.NoError(t, database.Create(&models.TemperatureReading{Timestamp: time.Now().UTC(), Temperature: 48}).Error)
	require.NoError(t, Close(database))

	database, err = Open(path, afero.NewOsFs())
	require.NoError(t, err)
	defer Close(database)

	var count int64
	require.NoError(t, database.Model(&models.TemperatureReading{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpenLegacySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	database, err := Open(path, afero.NewOsFs())
	require.NoError(t, err)
	require.NoError(t, database.Migrator().DropTable("gpu_temperatures"))
	require.NoError(t, database.Exec(`CREATE TABLE IF NOT EXISTS gpu_temperatures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME,
		temperature INTEGER
	)`).Error)
	require.NoError(t, database.Exec(
		`INSERT INTO gpu_temperatures (timestamp, temperature) VALUES (?, ?)`,
		"2024-03-01 10:15:30.123456", 57,
	).Error)
	require.NoError(t, Close(database))

	database, err = Open(path, afero.NewOsFs())
	require.NoError(t, err)
	defer Close(database)

	var reading models.TemperatureReading
	require.NoError(t, database.First(&reading).Error)
	assert.Equal(t, 57, reading.Temperature)
	assert.Equal(t, 2024, reading.Timestamp.Year())
}

func TestOpenUnwritableDirectory(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := Open(filepath.Join("/readonly", "gpu_temperatures.db"), fs)
	assert.ErrorIs(t, err, models.ErrStoreWrite)
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
