package models

import "errors"

var (
	// ErrSensorUnavailable is returned when the temperature source is not installed or cannot be executed.
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrSensorQueryFailed is returned when the temperature source ran but reported a failure.
	ErrSensorQueryFailed = errors.New("sensor query failed")

	// ErrParse is returned when the sensor output is not an integer temperature.
	ErrParse = errors.New("unable to parse sensor output")

	// ErrStoreWrite is returned when a reading could not be persisted.
	ErrStoreWrite = errors.New("unable to write reading to store")

	// ErrInvalidArgument marks caller supplied values outside their contract.
	ErrInvalidArgument = errors.New("invalid argument")
)
