package repository

import (
	"context"

	"dogber/internal/domain/entity"
)

// ProfileRepository hides the users/{uid}/profile path composition behind
// named methods.
type ProfileRepository interface {
	// Find retrieves a user's profile. Returns (nil, nil) when no profile
	// document exists for the id.
	Find(ctx context.Context, userID string) (*entity.Profile, error)

	// Create writes a full profile document.
	Create(ctx context.Context, userID string, profile *entity.Profile) error

	// SetField writes a single top-level profile field, one write per field.
	SetField(ctx context.Context, userID, field string, value any) error

	// SetWalkField writes a single field of the profile's walk section.
	SetWalkField(ctx context.Context, userID, field string, value any) error

	// SwapWalkNumber atomically replaces a numeric walk field. fn receives the
	// current value (zero when unset) and returns the replacement or an error
	// to abort without writing.
	SwapWalkNumber(ctx context.Context, userID, field string, fn func(current float64) (float64, error)) error

	// Addresses
	AddAddress(ctx context.Context, userID string, addr *entity.Address) (string, error)
	FindAddress(ctx context.Context, userID, key string) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID string) (map[string]entity.Address, error)
	RemoveAddress(ctx context.Context, userID, key string) error

	// RemoveUser deletes the whole users/{uid} subtree.
	RemoveUser(ctx context.Context, userID string) error
}
