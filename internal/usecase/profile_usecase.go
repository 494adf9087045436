// Package usecase declares the application's use-case interfaces. The actor is
// always an explicit parameter, resolved once at the call boundary rather than
// defaulted inside every method.
package usecase

import (
	"context"

	"dogber/internal/domain/entity"
)

// ProfileUsecase covers profile bookkeeping: contact details, balance, rating,
// walk pricing and addresses.
type ProfileUsecase interface {
	// GetProfile returns the user's profile, or (nil, nil) when none exists.
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// UpdateProfile applies the whitelisted subset of fields. Keys outside the
	// whitelist are silently dropped, never rejected.
	UpdateProfile(ctx context.Context, userID string, fields map[string]any) error

	// IncrementLoginCount bumps login_count and refreshes last_login.
	IncrementLoginCount(ctx context.Context, userID string) error

	// IncrementRating adds delta to the cumulative rating. The delta must be
	// in [0,5] in 0.5 steps; the stored total is never clamped.
	IncrementRating(ctx context.Context, userID string, delta float64) error

	// IncrementCompletedWalks bumps the completed-walk counter by one.
	IncrementCompletedWalks(ctx context.Context, userID string) error

	// IncreaseBalance adds a positive amount to the walk balance.
	IncreaseBalance(ctx context.Context, userID string, amount float64) error

	// DecreaseBalance subtracts a positive amount, failing with the
	// insufficient-balance precondition when it would drop below zero.
	DecreaseBalance(ctx context.Context, userID string, amount float64) error

	// UpdateWalkCost sets the advertised price range. Each bound is optional;
	// absent bounds are left untouched.
	UpdateWalkCost(ctx context.Context, userID string, min, max *float64) error

	// AdjustWalkActiveState toggles whether the user is available for walks.
	AdjustWalkActiveState(ctx context.Context, userID string, active bool) error

	// Addresses
	AddAddress(ctx context.Context, userID string, addr *entity.Address) (string, error)
	GetAddressByKey(ctx context.Context, userID, key string) (*entity.Address, error)
	GetAddresses(ctx context.Context, userID string) (map[string]entity.Address, error)
	RemoveAddress(ctx context.Context, userID, key string) error
}
