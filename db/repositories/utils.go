package repositories

import (
	"reflect"
)

// IsEmptyValue checks if value represents a zero-value struct (or pointer to a zero-value struct) using reflection.
// The function is useful for determining if a struct or its pointer is empty, i.e., all fields have their zero-values.
func IsEmptyValue(value interface{}) bool {
	// Check if the value is nil
	if value == nil {
		return true
	}

	val := reflect.ValueOf(value)

	// If the value is a pointer, dereference it to get the underlying element
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return true
		}
		val = val.Elem()
	}

	return val.IsZero()
}
