package helper

import (
	"fmt"
)

// GetTypedValueOf runs the getter and asserts its result to T.
// Getter errors are wrapped; a type mismatch is reported with the actual type.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}
