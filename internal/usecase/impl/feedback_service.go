package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
	"dogber/internal/usecase"
)

type feedbackService struct {
	feedbackRepo   repository.FeedbackRepository
	profileRepo    repository.ProfileRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	profileRepo repository.ProfileRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		profileRepo:    profileRepo,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// AddFeedback denormalizes the feedbacker's name and photo into the record at
// write time so listing feedback never needs a second profile read. The
// self-feedback check only fires when the acting user targets themselves;
// writing on behalf of another feedbacker is allowed.
func (s *feedbackService) AddFeedback(ctx context.Context, actorID, feedbackerID, targetID, message string) (string, error) {
	if err := guard.NonEmptyString(actorID, "user id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(feedbackerID, "feedbacker id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(targetID, "target id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(message, "message"); err != nil {
		return "", err
	}
	if feedbackerID == targetID && targetID == actorID {
		return "", domainerrors.ErrSelfFeedbackNotAllowed
	}

	profile, err := s.profileRepo.Find(ctx, feedbackerID)
	if err != nil {
		return "", errors.Wrap(err, "find feedbacker profile")
	}
	if profile == nil {
		return "", domainerrors.ErrProfileNotFound
	}

	name := profile.Name
	if name == "" {
		name = profile.Email
	}

	feedback := &entity.Feedback{
		Message: message,
		Feedbacker: entity.Feedbacker{
			ID:    feedbackerID,
			Name:  name,
			Photo: profile.Photo,
		},
		Timestamp: time.Now().UnixMilli(),
	}

	key, err := s.feedbackRepo.Append(ctx, targetID, feedback)
	if err != nil {
		return "", errors.Wrap(err, "append feedback")
	}

	// Best-effort, the feedback itself is already stored.
	if _, err := s.notificationUC.Create(ctx, targetID,
		"Feedback received",
		fmt.Sprintf("%s left feedback on your profile", name),
		nil, nil); err != nil {
		s.logger.WarnContext(ctx, "feedback notification failed",
			slog.String("target", targetID),
			slog.Any("error", err))
	}

	return key, nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, targetID string) (map[string]entity.Feedback, error) {
	if err := guard.NonEmptyString(targetID, "user id"); err != nil {
		return nil, err
	}

	return s.feedbackRepo.List(ctx, targetID)
}
