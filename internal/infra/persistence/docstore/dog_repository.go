package docstore

import (
	"context"

	"dogber/internal/domain/entity"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
)

type dogRepository struct {
	store repository.DocumentStore
}

// NewDogRepository creates a dog repository over the document store.
func NewDogRepository(store repository.DocumentStore) repository.DogRepository {
	return &dogRepository{store: store}
}

func (r *dogRepository) Append(ctx context.Context, ownerID string, dog *entity.Dog) (string, error) {
	key, err := r.store.Append(ctx, dogsPath(ownerID), dog)

	return key, errors.Wrap(err, "append dog")
}

func (r *dogRepository) Find(ctx context.Context, ownerID, key string) (*entity.Dog, error) {
	var dog entity.Dog
	found, err := r.store.Read(ctx, dogPath(ownerID, key), &dog)
	if err != nil {
		return nil, errors.Wrap(err, "read dog")
	}
	if !found {
		return nil, nil
	}

	return &dog, nil
}

func (r *dogRepository) List(ctx context.Context, ownerID string) (map[string]entity.Dog, error) {
	dogs := make(map[string]entity.Dog)
	if _, err := r.store.Read(ctx, dogsPath(ownerID), &dogs); err != nil {
		return nil, errors.Wrap(err, "read dogs")
	}

	return dogs, nil
}

func (r *dogRepository) Remove(ctx context.Context, ownerID, key string) error {
	return errors.Wrap(r.store.Delete(ctx, dogPath(ownerID, key)), "delete dog")
}
