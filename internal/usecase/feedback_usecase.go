package usecase

import (
	"context"

	"dogber/internal/domain/entity"
)

// FeedbackUsecase manages feedback left on user profiles.
type FeedbackUsecase interface {
	// AddFeedback stores feedback on the target profile with the feedbacker's
	// name and photo denormalized into the record, and notifies the target.
	// Self-feedback is blocked only when feedbacker and target both equal the
	// acting user.
	AddFeedback(ctx context.Context, actorID, feedbackerID, targetID, message string) (string, error)

	// GetFeedback returns all feedback on the target profile by key.
	GetFeedback(ctx context.Context, targetID string) (map[string]entity.Feedback, error)
}
