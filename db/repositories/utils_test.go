package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/nunet/gputemp/models"
)

// TestEmptyValue tests the IsEmptyValue function for checking if a struct has non zero value.
func TestEmptyValue(t *testing.T) {
	assert.True(t, IsEmptyValue(nil))

	var nilReading *models.TemperatureReading
	assert.True(t, IsEmptyValue(nilReading))

	assert.True(t, IsEmptyValue(models.TemperatureReading{}))
	assert.True(t, IsEmptyValue(&models.TemperatureReading{}))

	assert.False(t, IsEmptyValue(models.TemperatureReading{Temperature: 40}))
	assert.False(t, IsEmptyValue(&models.TemperatureReading{Timestamp: time.Now()}))
}
