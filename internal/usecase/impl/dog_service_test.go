package impl

import (
	"context"
	"testing"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDogService_AddDog_RoundTrip(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	key, err := stack.dogUC.AddDog(ctx, "u1", &entity.Dog{
		Name:         "Rex",
		Age:          3,
		Race:         "labrador",
		FavoriteToy:  "rope",
		FavoriteFood: "chicken",
	})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := stack.dogUC.GetSingleDog(ctx, "u1", key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, 3.0, got.Age)
	assert.Positive(t, got.Timestamp)

	all, err := stack.dogUC.GetAllDogs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, stack.dogUC.RemoveDog(ctx, "u1", key))
	got, err = stack.dogUC.GetSingleDog(ctx, "u1", key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDogService_AddDog_Validation(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.dogUC.AddDog(ctx, "u1", nil)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))

	_, err = stack.dogUC.AddDog(ctx, "u1", &entity.Dog{Age: 2})
	require.Error(t, err)
	assert.EqualError(t, err, "dog name cannot be empty")

	_, err = stack.dogUC.AddDog(ctx, "u1", &entity.Dog{Name: "Rex", Age: -1})
	require.Error(t, err)
	assert.EqualError(t, err, "dog age cannot be negative")
}

func TestDogService_GetAllDogs_Empty(t *testing.T) {
	stack := newTestStack(t)

	all, err := stack.dogUC.GetAllDogs(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, all)
}
