// Package impl provides the use-case implementations. Every mutating method
// validates its inputs before touching the store, so a rejected call leaves
// no partial write behind.
package impl

import (
	"context"
	"fmt"
	"time"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
	"dogber/internal/usecase"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return nil, err
	}

	return s.profileRepo.Find(ctx, userID)
}

// UpdateProfile writes each whitelisted field individually. Keys outside the
// whitelist are dropped without an error so callers can post whole forms.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, fields map[string]any) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}

	for _, field := range entity.ProfileUpdateWhitelist {
		value, ok := fields[field]
		if !ok {
			continue
		}
		if err := s.profileRepo.SetField(ctx, userID, field, value); err != nil {
			return errors.Wrapf(err, "update profile field %s", field)
		}
	}

	return nil
}

func (s *profileService) IncrementLoginCount(ctx context.Context, userID string) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}

	profile, err := s.profileRepo.Find(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "find profile")
	}
	if profile == nil {
		return domainerrors.ErrProfileNotFound
	}

	if err := s.profileRepo.SetField(ctx, userID, "login_count", profile.LoginCount+1); err != nil {
		return errors.Wrap(err, "set login count")
	}

	return errors.Wrap(
		s.profileRepo.SetField(ctx, userID, "last_login", time.Now().UnixMilli()),
		"set last login")
}

// IncrementRating adds delta to the cumulative rating. The stored total is a
// running sum and is deliberately never clamped to the [0,5] scale.
func (s *profileService) IncrementRating(ctx context.Context, userID string, delta float64) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}
	if err := guard.InRange(delta, 0, 5, "rating increase"); err != nil {
		return err
	}
	if err := guard.HalfStep(delta, "rating increase"); err != nil {
		return err
	}

	return s.profileRepo.SwapWalkNumber(ctx, userID, "rating",
		func(current float64) (float64, error) {
			return current + delta, nil
		})
}

func (s *profileService) IncrementCompletedWalks(ctx context.Context, userID string) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}

	return s.profileRepo.SwapWalkNumber(ctx, userID, "completed",
		func(current float64) (float64, error) {
			return current + 1, nil
		})
}

func (s *profileService) IncreaseBalance(ctx context.Context, userID string, amount float64) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}
	if err := guard.PositiveNumber(amount, "amount"); err != nil {
		return err
	}

	return s.profileRepo.SwapWalkNumber(ctx, userID, "balance",
		func(current float64) (float64, error) {
			return current + amount, nil
		})
}

// DecreaseBalance subtracts inside the swap so the insufficient-balance check
// always runs against the value actually stored.
func (s *profileService) DecreaseBalance(ctx context.Context, userID string, amount float64) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}
	if err := guard.PositiveNumber(amount, "amount"); err != nil {
		return err
	}

	return s.profileRepo.SwapWalkNumber(ctx, userID, "balance",
		func(current float64) (float64, error) {
			if current-amount < 0 {
				return 0, domainerrors.ErrInsufficientBalance
			}

			return current - amount, nil
		})
}

// UpdateWalkCost sets the advertised price bounds. Each bound is optional and
// an absent one is left untouched; the min/max ordering is only enforceable
// when both arrive together.
func (s *profileService) UpdateWalkCost(ctx context.Context, userID string, min, max *float64) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}
	if min == nil && max == nil {
		return domainerrors.NewValidationError("walk cost requires at least one bound")
	}
	if min != nil {
		if err := guard.NonNegativeNumber(*min, "min cost"); err != nil {
			return err
		}
	}
	if max != nil {
		if err := guard.NonNegativeNumber(*max, "max cost"); err != nil {
			return err
		}
	}
	if min != nil && max != nil && *min > *max {
		return domainerrors.NewValidationError("min cost cannot exceed max cost")
	}

	if min != nil {
		if err := s.profileRepo.SetWalkField(ctx, userID, "price/min", *min); err != nil {
			return errors.Wrap(err, "set min cost")
		}
	}
	if max != nil {
		if err := s.profileRepo.SetWalkField(ctx, userID, "price/max", *max); err != nil {
			return errors.Wrap(err, "set max cost")
		}
	}

	return nil
}

func (s *profileService) AdjustWalkActiveState(ctx context.Context, userID string, active bool) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}

	return errors.Wrap(
		s.profileRepo.SetWalkField(ctx, userID, "active", active),
		"set walk active state")
}

func (s *profileService) AddAddress(ctx context.Context, userID string, addr *entity.Address) (string, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return "", err
	}
	if addr == nil {
		return "", domainerrors.NewValidationError("address cannot be empty")
	}
	if err := validateAddress(addr); err != nil {
		return "", err
	}

	return s.profileRepo.AddAddress(ctx, userID, addr)
}

func (s *profileService) GetAddressByKey(ctx context.Context, userID, key string) (*entity.Address, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return nil, err
	}
	if err := guard.NonEmptyString(key, "address id"); err != nil {
		return nil, err
	}

	return s.profileRepo.FindAddress(ctx, userID, key)
}

func (s *profileService) GetAddresses(ctx context.Context, userID string) (map[string]entity.Address, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return nil, err
	}

	return s.profileRepo.ListAddresses(ctx, userID)
}

func (s *profileService) RemoveAddress(ctx context.Context, userID, key string) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}
	if err := guard.NonEmptyString(key, "address id"); err != nil {
		return err
	}

	return s.profileRepo.RemoveAddress(ctx, userID, key)
}

// validateAddress checks the fixed required-field list in order and names the
// first missing field in the error.
func validateAddress(addr *entity.Address) error {
	values := map[string]string{
		"lineOne": addr.LineOne,
		"city":    addr.City,
		"state":   addr.State,
		"zip":     addr.Zip,
		"country": addr.Country,
	}
	for _, field := range entity.AddressRequiredFields {
		if err := guard.NonEmptyString(values[field], fmt.Sprintf("address %s", field)); err != nil {
			return err
		}
	}

	return nil
}
