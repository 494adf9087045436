package repository

import (
	"context"

	"dogber/internal/domain/entity"
)

// DogRepository is the per-user dog collection.
type DogRepository interface {
	// Append stores a dog for the owner and returns the generated key.
	Append(ctx context.Context, ownerID string, dog *entity.Dog) (string, error)

	// Find retrieves one dog by key. Returns (nil, nil) when absent.
	Find(ctx context.Context, ownerID, key string) (*entity.Dog, error)

	// List returns all the owner's dogs, keyed by generated key.
	List(ctx context.Context, ownerID string) (map[string]entity.Dog, error)

	// Remove deletes a single dog.
	Remove(ctx context.Context, ownerID, key string) error
}
