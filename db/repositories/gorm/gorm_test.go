package repositories_gorm

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gitlab.com/nunet/gputemp/db"
)

// setup opens a fresh SQLite database in a temporary directory with the readings table migrated.
// A file is used instead of ":memory:" so every pooled connection sees the same data.
func setup(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "gpu_temperatures.db"), afero.NewOsFs())
	require.NoError(t, err, "failed to connect to database")

	t.Cleanup(func() {
		db.Close(database)
	})

	return database
}
