package usecase

import (
	"context"

	"dogber/internal/domain/entity"
)

// NotificationUsecase manages the per-user append-only notification log. Only
// record creation lives here; delivery transport is a collaborator concern.
type NotificationUsecase interface {
	// Create appends a notification for the target user and returns the
	// generated key. actionType and actionLink are optional but must be
	// non-empty when present.
	Create(ctx context.Context, targetID, title, message string, actionType, actionLink *string) (string, error)

	// CreateWelcome appends the one-time welcome notification. It fails when
	// the target profile is not marked new.
	CreateWelcome(ctx context.Context, targetID string) (string, error)

	// GetNotifications returns all of the user's notifications by key.
	GetNotifications(ctx context.Context, targetID string) (map[string]entity.Notification, error)

	// GetNotificationByKey returns one notification, or (nil, nil) when absent.
	GetNotificationByKey(ctx context.Context, targetID, key string) (*entity.Notification, error)

	// RemoveNotification deletes one notification.
	RemoveNotification(ctx context.Context, targetID, key string) error
}
