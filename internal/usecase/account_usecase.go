package usecase

import (
	"context"

	"dogber/internal/domain/entity"
)

// AccountUsecase seeds and tears down the per-user document tree around the
// auth collaborator's account lifecycle.
type AccountUsecase interface {
	// EnsureAccount creates the profile document from the auth provider's
	// hints on first sight of a uid, including the one-time welcome
	// notification. It reports whether a new profile was created.
	EnsureAccount(ctx context.Context, userID string) (*entity.Profile, bool, error)

	// RemoveAccountData deletes the user's document subtree. Deleting the
	// provider-side account remains the collaborator's job.
	RemoveAccountData(ctx context.Context, userID string) error
}
