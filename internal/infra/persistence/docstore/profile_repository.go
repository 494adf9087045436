package docstore

import (
	"context"

	"dogber/internal/domain/entity"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
)

type profileRepository struct {
	store repository.DocumentStore
}

// NewProfileRepository creates a profile repository over the document store.
func NewProfileRepository(store repository.DocumentStore) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Find(ctx context.Context, userID string) (*entity.Profile, error) {
	var profile entity.Profile
	found, err := r.store.Read(ctx, profilePath(userID), &profile)
	if err != nil {
		return nil, errors.Wrap(err, "read profile")
	}
	if !found {
		return nil, nil
	}

	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, userID string, profile *entity.Profile) error {
	return errors.Wrap(r.store.Write(ctx, profilePath(userID), profile), "write profile")
}

func (r *profileRepository) SetField(ctx context.Context, userID, field string, value any) error {
	return errors.Wrapf(r.store.Write(ctx, profileFieldPath(userID, field), value),
		"write profile field %s", field)
}

func (r *profileRepository) SetWalkField(ctx context.Context, userID, field string, value any) error {
	return errors.Wrapf(r.store.Write(ctx, profileWalkFieldPath(userID, field), value),
		"write profile walk field %s", field)
}

func (r *profileRepository) SwapWalkNumber(ctx context.Context, userID, field string, fn func(current float64) (float64, error)) error {
	err := r.store.Swap(ctx, profileWalkFieldPath(userID, field), func(current repository.DecodeFunc) (any, error) {
		var value float64
		if _, err := current(&value); err != nil {
			return nil, errors.Wrapf(err, "decode profile walk field %s", field)
		}

		return fn(value)
	})

	return errors.Wrapf(err, "swap profile walk field %s", field)
}

func (r *profileRepository) AddAddress(ctx context.Context, userID string, addr *entity.Address) (string, error) {
	key, err := r.store.Append(ctx, addressesPath(userID), addr)

	return key, errors.Wrap(err, "append address")
}

func (r *profileRepository) FindAddress(ctx context.Context, userID, key string) (*entity.Address, error) {
	var addr entity.Address
	found, err := r.store.Read(ctx, addressPath(userID, key), &addr)
	if err != nil {
		return nil, errors.Wrap(err, "read address")
	}
	if !found {
		return nil, nil
	}

	return &addr, nil
}

func (r *profileRepository) ListAddresses(ctx context.Context, userID string) (map[string]entity.Address, error) {
	addresses := make(map[string]entity.Address)
	if _, err := r.store.Read(ctx, addressesPath(userID), &addresses); err != nil {
		return nil, errors.Wrap(err, "read addresses")
	}

	return addresses, nil
}

func (r *profileRepository) RemoveAddress(ctx context.Context, userID, key string) error {
	return errors.Wrap(r.store.Delete(ctx, addressPath(userID, key)), "delete address")
}

func (r *profileRepository) RemoveUser(ctx context.Context, userID string) error {
	return errors.Wrap(r.store.Delete(ctx, userPath(userID)), "delete user subtree")
}
