package repository

import (
	"context"

	"dogber/internal/domain/entity"
)

// FeedbackRepository is the per-user feedback collection.
type FeedbackRepository interface {
	// Append stores a feedback entry for the target user and returns the
	// generated key.
	Append(ctx context.Context, userID string, feedback *entity.Feedback) (string, error)

	// List returns all feedback left on the user, keyed by generated key.
	List(ctx context.Context, userID string) (map[string]entity.Feedback, error)
}
