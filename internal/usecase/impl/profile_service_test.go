package impl

import (
	"context"
	"testing"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProfile(t *testing.T, stack *testStack, userID string) {
	t.Helper()

	err := stack.profileRepo.Create(context.Background(), userID, &entity.Profile{
		Email:      userID + "@example.com",
		Name:       "Test User",
		LoginCount: 1,
		New:        true,
		Walk: entity.WalkStats{
			Balance: 5,
			Price:   entity.WalkPrice{Min: 5, Max: 10},
		},
	})
	require.NoError(t, err)
}

func TestProfileService_GetProfile_EmptyID(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.profileUC.GetProfile(context.Background(), " ")

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.EqualError(t, err, "user id cannot be empty")
}

func TestProfileService_GetProfile_MissingReturnsNil(t *testing.T) {
	stack := newTestStack(t)

	profile, err := stack.profileUC.GetProfile(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_UpdateProfile_DropsUnknownFields(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	err := stack.profileUC.UpdateProfile(ctx, "u1", map[string]any{
		"name":    "Ana",
		"age":     31.0,
		"balance": 999.0, // not whitelisted, must be ignored
		"walk":    map[string]any{"balance": 999.0},
	})
	require.NoError(t, err)

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, 31.0, profile.Age)
	assert.Equal(t, 5.0, profile.Walk.Balance)
}

func TestProfileService_IncrementRating_Accumulates(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.IncrementRating(ctx, "u1", 2.5))
	require.NoError(t, stack.profileUC.IncrementRating(ctx, "u1", 3.0))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	// The stored total is cumulative and intentionally unclamped.
	assert.Equal(t, 5.5, profile.Walk.Rating)
}

func TestProfileService_IncrementRating_RejectsBadDeltas(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	err := stack.profileUC.IncrementRating(ctx, "u1", 0.3)
	require.Error(t, err)
	assert.EqualError(t, err, "rating increase must be a whole or .5 number")

	err = stack.profileUC.IncrementRating(ctx, "u1", 5.5)
	require.Error(t, err)
	assert.EqualError(t, err, "rating increase must be between 0 and 5")

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, profile.Walk.Rating)
}

func TestProfileService_IncrementCompletedWalks(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.IncrementCompletedWalks(ctx, "u1"))
	require.NoError(t, stack.profileUC.IncrementCompletedWalks(ctx, "u1"))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Walk.Completed)
}

func TestProfileService_Balance_IncreaseAndDecrease(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.IncreaseBalance(ctx, "u1", 10))
	require.NoError(t, stack.profileUC.DecreaseBalance(ctx, "u1", 4))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 11.0, profile.Walk.Balance)
}

func TestProfileService_DecreaseBalance_InsufficientLeavesBalanceUntouched(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	err := stack.profileUC.DecreaseBalance(ctx, "u1", 100)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeInsufficientBalance, appErr.ErrorCode())

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, profile.Walk.Balance)
}

func TestProfileService_Balance_RejectsNonPositiveAmounts(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	for _, amount := range []float64{0, -1} {
		err := stack.profileUC.IncreaseBalance(ctx, "u1", amount)
		require.Error(t, err)
		assert.EqualError(t, err, "amount must be positive")

		err = stack.profileUC.DecreaseBalance(ctx, "u1", amount)
		require.Error(t, err)
		assert.EqualError(t, err, "amount must be positive")
	}
}

func TestProfileService_UpdateWalkCost(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.UpdateWalkCost(ctx, "u1", floatPtr(7), floatPtr(12)))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 7.0, profile.Walk.Price.Min)
	assert.Equal(t, 12.0, profile.Walk.Price.Max)

	// An absent bound is left untouched.
	require.NoError(t, stack.profileUC.UpdateWalkCost(ctx, "u1", floatPtr(8), nil))
	profile, err = stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 8.0, profile.Walk.Price.Min)
	assert.Equal(t, 12.0, profile.Walk.Price.Max)
}

func TestProfileService_UpdateWalkCost_Validation(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	err := stack.profileUC.UpdateWalkCost(ctx, "u1", nil, nil)
	require.Error(t, err)
	assert.EqualError(t, err, "walk cost requires at least one bound")

	err = stack.profileUC.UpdateWalkCost(ctx, "u1", floatPtr(20), floatPtr(10))
	require.Error(t, err)
	assert.EqualError(t, err, "min cost cannot exceed max cost")

	err = stack.profileUC.UpdateWalkCost(ctx, "u1", floatPtr(-1), nil)
	require.Error(t, err)
	assert.EqualError(t, err, "min cost cannot be negative")
}

func TestProfileService_AdjustWalkActiveState(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.AdjustWalkActiveState(ctx, "u1", true))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, profile.Walk.Active)
}

func TestProfileService_IncrementLoginCount(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	require.NoError(t, stack.profileUC.IncrementLoginCount(ctx, "u1"))

	profile, err := stack.profileUC.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.LoginCount)
	assert.Positive(t, profile.LastLogin)
}

func TestProfileService_IncrementLoginCount_MissingProfile(t *testing.T) {
	stack := newTestStack(t)

	err := stack.profileUC.IncrementLoginCount(context.Background(), "ghost")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeProfileNotFound, appErr.ErrorCode())
}

func TestProfileService_AddAddress_RoundTrip(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	addr := &entity.Address{
		LineOne: "1 Bark Street",
		City:    "Dogtown",
		State:   "CA",
		Zip:     "90210",
		Country: "US",
	}
	key, err := stack.profileUC.AddAddress(ctx, "u1", addr)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := stack.profileUC.GetAddressByKey(ctx, "u1", key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *addr, *got)

	all, err := stack.profileUC.GetAddresses(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, stack.profileUC.RemoveAddress(ctx, "u1", key))
	got, err = stack.profileUC.GetAddressByKey(ctx, "u1", key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileService_AddAddress_NamesFirstMissingField(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	seedProfile(t, stack, "u1")

	_, err := stack.profileUC.AddAddress(ctx, "u1", &entity.Address{
		LineOne: "1 Bark Street",
		State:   "CA",
		Zip:     "90210",
		Country: "US",
	})

	require.Error(t, err)
	assert.EqualError(t, err, "address city cannot be empty")

	_, err = stack.profileUC.AddAddress(ctx, "u1", &entity.Address{})
	require.Error(t, err)
	assert.EqualError(t, err, "address lineOne cannot be empty")
}
