package impl

import (
	"context"
	"time"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/usecase"
)

type dogService struct {
	dogRepo repository.DogRepository
}

// NewDogService creates a new dog service instance
func NewDogService(dogRepo repository.DogRepository) usecase.DogUsecase {
	return &dogService{dogRepo: dogRepo}
}

func (s *dogService) AddDog(ctx context.Context, ownerID string, dog *entity.Dog) (string, error) {
	if err := guard.NonEmptyString(ownerID, "user id"); err != nil {
		return "", err
	}
	if dog == nil {
		return "", domainerrors.NewValidationError("dog cannot be empty")
	}
	if err := guard.NonEmptyString(dog.Name, "dog name"); err != nil {
		return "", err
	}
	if err := guard.FiniteNumber(dog.Age, "dog age"); err != nil {
		return "", err
	}
	if dog.Age < 0 {
		return "", domainerrors.NewValidationError("dog age cannot be negative")
	}

	if dog.Timestamp == 0 {
		dog.Timestamp = time.Now().UnixMilli()
	}

	return s.dogRepo.Append(ctx, ownerID, dog)
}

func (s *dogService) GetAllDogs(ctx context.Context, ownerID string) (map[string]entity.Dog, error) {
	if err := guard.NonEmptyString(ownerID, "user id"); err != nil {
		return nil, err
	}

	return s.dogRepo.List(ctx, ownerID)
}

func (s *dogService) GetSingleDog(ctx context.Context, ownerID, dogID string) (*entity.Dog, error) {
	if err := guard.NonEmptyString(ownerID, "user id"); err != nil {
		return nil, err
	}
	if err := guard.NonEmptyString(dogID, "dog id"); err != nil {
		return nil, err
	}

	return s.dogRepo.Find(ctx, ownerID, dogID)
}

func (s *dogService) RemoveDog(ctx context.Context, ownerID, dogID string) error {
	if err := guard.NonEmptyString(ownerID, "user id"); err != nil {
		return err
	}
	if err := guard.NonEmptyString(dogID, "dog id"); err != nil {
		return err
	}

	return s.dogRepo.Remove(ctx, ownerID, dogID)
}
