package guard

import (
	"math"
	"testing"
	"time"

	domainerrors "dogber/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmptyString(t *testing.T) {
	require.NoError(t, NonEmptyString("walker", "walkerId"))

	err := NonEmptyString("   ", "walkerId")
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.EqualError(t, err, "walkerId cannot be empty")

	assert.EqualError(t, NonEmptyString("", "ownerId"), "ownerId cannot be empty")
}

func TestNonEmptyStrings(t *testing.T) {
	require.NoError(t, NonEmptyStrings([]string{"dog-1", "dog-2"}, "dogIds"))

	assert.EqualError(t, NonEmptyStrings(nil, "dogIds"), "dogIds cannot be empty")
	assert.EqualError(t, NonEmptyStrings([]string{}, "dogIds"), "dogIds cannot be empty")
	assert.EqualError(t, NonEmptyStrings([]string{"dog-1", " "}, "dogIds"),
		"dogIds cannot contain empty entries")
}

func TestOptionalNonEmptyString(t *testing.T) {
	require.NoError(t, OptionalNonEmptyString(nil, "notes"))

	note := "bring treats"
	require.NoError(t, OptionalNonEmptyString(&note, "notes"))

	empty := " "
	assert.EqualError(t, OptionalNonEmptyString(&empty, "notes"), "notes cannot be empty")
}

func TestFiniteNumber(t *testing.T) {
	require.NoError(t, FiniteNumber(3.5, "amount"))
	assert.EqualError(t, FiniteNumber(math.NaN(), "amount"), "amount must be a finite number")
	assert.EqualError(t, FiniteNumber(math.Inf(1), "amount"), "amount must be a finite number")
}

func TestPositiveNumber(t *testing.T) {
	require.NoError(t, PositiveNumber(0.1, "amount"))
	assert.EqualError(t, PositiveNumber(0, "amount"), "amount must be positive")
	assert.EqualError(t, PositiveNumber(-5, "amount"), "amount must be positive")
}

func TestNonNegativeNumber(t *testing.T) {
	require.NoError(t, NonNegativeNumber(0, "cost"))
	require.NoError(t, NonNegativeNumber(7.5, "cost"))
	assert.EqualError(t, NonNegativeNumber(-0.5, "cost"), "cost cannot be negative")
	assert.EqualError(t, NonNegativeNumber(math.NaN(), "cost"), "cost must be a finite number")
}

func TestInRange(t *testing.T) {
	require.NoError(t, InRange(0, 0, 5, "rating"))
	require.NoError(t, InRange(5, 0, 5, "rating"))
	assert.EqualError(t, InRange(-1, 0, 5, "rating"), "rating must be between 0 and 5")
	assert.EqualError(t, InRange(10, 0, 5, "rating"), "rating must be between 0 and 5")
}

func TestHalfStep(t *testing.T) {
	require.NoError(t, HalfStep(2.5, "rating"))
	require.NoError(t, HalfStep(3, "rating"))
	assert.EqualError(t, HalfStep(3.2, "rating"), "rating must be a whole or .5 number")
}

func TestValidTime(t *testing.T) {
	require.NoError(t, ValidTime(time.Now(), "startTime"))
	assert.EqualError(t, ValidTime(time.Time{}, "startTime"), "startTime must be a valid time")
}
