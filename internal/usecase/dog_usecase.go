package usecase

import (
	"context"

	"dogber/internal/domain/entity"
)

// DogUsecase manages a user's dog records.
type DogUsecase interface {
	// AddDog stores a dog for the owner and returns the generated key.
	AddDog(ctx context.Context, ownerID string, dog *entity.Dog) (string, error)

	// GetAllDogs returns the owner's dogs by key.
	GetAllDogs(ctx context.Context, ownerID string) (map[string]entity.Dog, error)

	// GetSingleDog returns one dog, or (nil, nil) when absent.
	GetSingleDog(ctx context.Context, ownerID, dogID string) (*entity.Dog, error)

	// RemoveDog deletes one dog.
	RemoveDog(ctx context.Context, ownerID, dogID string) error
}
