package impl

import (
	"context"
	"log/slog"
	"time"

	"dogber/config"
	"dogber/internal/domain/entity"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/domain/service"
	"dogber/internal/errors"
	"dogber/internal/usecase"
)

type accountService struct {
	profileRepo    repository.ProfileRepository
	authService    service.AuthService
	notificationUC usecase.NotificationUsecase
	cfg            *config.Config
	logger         *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(
	profileRepo repository.ProfileRepository,
	authService service.AuthService,
	notificationUC usecase.NotificationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		profileRepo:    profileRepo,
		authService:    authService,
		notificationUC: notificationUC,
		cfg:            cfg,
		logger:         logger,
	}
}

// EnsureAccount seeds the profile document the first time a uid shows up. The
// auth provider owns the account itself; this only mirrors its identity hints
// into the store and applies the configured welcome defaults.
func (s *accountService) EnsureAccount(ctx context.Context, userID string) (*entity.Profile, bool, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return nil, false, err
	}

	existing, err := s.profileRepo.Find(ctx, userID)
	if err != nil {
		return nil, false, errors.Wrap(err, "find profile")
	}
	if existing != nil {
		return existing, false, nil
	}

	hints, err := s.authService.ProfileHints(ctx, userID)
	if err != nil {
		return nil, false, errors.Wrap(err, "resolve profile hints")
	}

	profile := &entity.Profile{
		Email:      hints.Email,
		Name:       hints.DisplayName,
		Photo:      hints.PhotoURL,
		LastLogin:  time.Now().UnixMilli(),
		LoginCount: 1,
		New:        true,
		Walk: entity.WalkStats{
			Balance: s.cfg.Welcome.Balance,
			Price: entity.WalkPrice{
				Min: s.cfg.Welcome.PriceMin,
				Max: s.cfg.Welcome.PriceMax,
			},
		},
	}

	if err := s.profileRepo.Create(ctx, userID, profile); err != nil {
		return nil, false, errors.Wrap(err, "create profile")
	}

	// The profile exists either way; a failed welcome is only logged.
	if _, err := s.notificationUC.CreateWelcome(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "welcome notification failed",
			slog.String("user", userID),
			slog.Any("error", err))
	}

	return profile, true, nil
}

// RemoveAccountData drops the users/{uid} subtree. The provider-side account
// is deleted by the auth collaborator, not here.
func (s *accountService) RemoveAccountData(ctx context.Context, userID string) error {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return err
	}

	return errors.Wrap(s.profileRepo.RemoveUser(ctx, userID), "remove user data")
}
