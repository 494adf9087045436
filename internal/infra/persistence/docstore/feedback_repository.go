package docstore

import (
	"context"

	"dogber/internal/domain/entity"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
)

type feedbackRepository struct {
	store repository.DocumentStore
}

// NewFeedbackRepository creates a feedback repository over the document store.
func NewFeedbackRepository(store repository.DocumentStore) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (r *feedbackRepository) Append(ctx context.Context, userID string, feedback *entity.Feedback) (string, error) {
	key, err := r.store.Append(ctx, feedbackPath(userID), feedback)

	return key, errors.Wrap(err, "append feedback")
}

func (r *feedbackRepository) List(ctx context.Context, userID string) (map[string]entity.Feedback, error) {
	feedback := make(map[string]entity.Feedback)
	if _, err := r.store.Read(ctx, feedbackPath(userID), &feedback); err != nil {
		return nil, errors.Wrap(err, "read feedback")
	}

	return feedback, nil
}
