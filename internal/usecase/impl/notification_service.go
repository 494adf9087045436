package impl

import (
	"context"
	"fmt"
	"time"

	"dogber/config"
	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
	"dogber/internal/usecase"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
	cfg              *config.Config
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	profileRepo repository.ProfileRepository,
	cfg *config.Config,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		cfg:              cfg,
	}
}

func (s *notificationService) Create(
	ctx context.Context,
	targetID, title, message string,
	actionType, actionLink *string,
) (string, error) {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(title, "title"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(message, "message"); err != nil {
		return "", err
	}
	if err := guard.OptionalNonEmptyString(actionType, "action type"); err != nil {
		return "", err
	}
	if err := guard.OptionalNonEmptyString(actionLink, "action link"); err != nil {
		return "", err
	}

	notification := &entity.Notification{
		Title:      title,
		Message:    message,
		Timestamp:  time.Now().UnixMilli(),
		ActionType: actionType,
		ActionLink: actionLink,
	}

	key, err := s.notificationRepo.Append(ctx, targetID, notification)

	return key, errors.Wrap(err, "append notification")
}

// CreateWelcome appends the one-time onboarding notification. Profiles that
// have already cleared their new flag never get a second one.
func (s *notificationService) CreateWelcome(ctx context.Context, targetID string) (string, error) {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return "", err
	}

	profile, err := s.profileRepo.Find(ctx, targetID)
	if err != nil {
		return "", errors.Wrap(err, "find profile")
	}
	if profile == nil {
		return "", domainerrors.ErrProfileNotFound
	}
	if !profile.New {
		return "", domainerrors.ErrWelcomeRequiresNewAccount
	}

	return s.Create(ctx, targetID,
		"Welcome",
		fmt.Sprintf("Welcome to Dogber %s", s.cfg.Env.Version),
		nil, nil)
}

func (s *notificationService) GetNotifications(ctx context.Context, targetID string) (map[string]entity.Notification, error) {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return nil, err
	}

	return s.notificationRepo.List(ctx, targetID)
}

func (s *notificationService) GetNotificationByKey(ctx context.Context, targetID, key string) (*entity.Notification, error) {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return nil, err
	}
	if err := guard.NonEmptyString(key, "notification id"); err != nil {
		return nil, err
	}

	return s.notificationRepo.Find(ctx, targetID, key)
}

func (s *notificationService) RemoveNotification(ctx context.Context, targetID, key string) error {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return err
	}
	if err := guard.NonEmptyString(key, "notification id"); err != nil {
		return err
	}

	return s.notificationRepo.Remove(ctx, targetID, key)
}
