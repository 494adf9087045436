package repository

import (
	"context"

	"dogber/internal/domain/entity"
)

// NotificationRepository is the append-only per-user notification log.
type NotificationRepository interface {
	// Append stores a notification for the user and returns the generated key.
	Append(ctx context.Context, userID string, notification *entity.Notification) (string, error)

	// Find retrieves one notification by key. Returns (nil, nil) when absent.
	Find(ctx context.Context, userID, key string) (*entity.Notification, error)

	// List returns all notifications for the user, keyed by generated key.
	List(ctx context.Context, userID string) (map[string]entity.Notification, error)

	// Remove deletes a single notification.
	Remove(ctx context.Context, userID, key string) error
}
