// Package guard contains the pure input predicates applied by every mutating
// operation before any I/O is attempted. Each guard either returns nil or a
// validation error carrying a fixed message naming the offending field.
package guard

import (
	"fmt"
	"math"
	"strings"
	"time"

	domainerrors "dogber/internal/domain/errors"
)

// NonEmptyString fails when the value trims to the empty string.
func NonEmptyString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}

	return nil
}

// NonEmptyStrings fails when the sequence is empty or any element fails the
// non-empty-string check.
func NonEmptyStrings(values []string, field string) error {
	if len(values) == 0 {
		return domainerrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return domainerrors.NewValidationError(fmt.Sprintf("%s cannot contain empty entries", field))
		}
	}

	return nil
}

// OptionalNonEmptyString allows a nil value but rejects a present empty one.
func OptionalNonEmptyString(value *string, field string) error {
	if value == nil {
		return nil
	}

	return NonEmptyString(*value, field)
}

// FiniteNumber fails on NaN and infinities, the values a numeric field can
// still smuggle in past static typing.
func FiniteNumber(value float64, field string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domainerrors.NewValidationError(fmt.Sprintf("%s must be a finite number", field))
	}

	return nil
}

// PositiveNumber fails unless the value is finite and strictly greater than zero.
func PositiveNumber(value float64, field string) error {
	if err := FiniteNumber(value, field); err != nil {
		return err
	}
	if value <= 0 {
		return domainerrors.NewValidationError(fmt.Sprintf("%s must be positive", field))
	}

	return nil
}

// NonNegativeNumber fails unless the value is finite and at least zero.
func NonNegativeNumber(value float64, field string) error {
	if err := FiniteNumber(value, field); err != nil {
		return err
	}
	if value < 0 {
		return domainerrors.NewValidationError(fmt.Sprintf("%s cannot be negative", field))
	}

	return nil
}

// InRange performs an inclusive range check.
func InRange(value, min, max float64, field string) error {
	if err := FiniteNumber(value, field); err != nil {
		return err
	}
	if value < min || value > max {
		return domainerrors.NewValidationError(
			fmt.Sprintf("%s must be between %v and %v", field, min, max))
	}

	return nil
}

// HalfStep fails unless the value is a multiple of 0.5.
func HalfStep(value float64, field string) error {
	if err := FiniteNumber(value, field); err != nil {
		return err
	}
	if math.Mod(value*2, 1) != 0 {
		return domainerrors.NewValidationError(
			fmt.Sprintf("%s must be a whole or .5 number", field))
	}

	return nil
}

// ValidTime fails on the zero time, the Go analog of an invalid date instance.
func ValidTime(value time.Time, field string) error {
	if value.IsZero() {
		return domainerrors.NewValidationError(fmt.Sprintf("%s must be a valid time", field))
	}

	return nil
}
