package models

import "time"

// TemperatureReading is a single GPU temperature sample. Rows are append-only.
type TemperatureReading struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp   time.Time `json:"timestamp" gorm:"type:datetime"`
	Temperature int       `json:"temperature"`
}

// TableName keeps the table layout compatible with databases created by earlier gputemp releases.
func (TemperatureReading) TableName() string {
	return "gpu_temperatures"
}
