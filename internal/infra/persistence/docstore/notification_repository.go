package docstore

import (
	"context"

	"dogber/internal/domain/entity"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
)

type notificationRepository struct {
	store repository.DocumentStore
}

// NewNotificationRepository creates a notification repository over the
// document store.
func NewNotificationRepository(store repository.DocumentStore) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Append(ctx context.Context, userID string, notification *entity.Notification) (string, error) {
	key, err := r.store.Append(ctx, notificationsPath(userID), notification)

	return key, errors.Wrap(err, "append notification")
}

func (r *notificationRepository) Find(ctx context.Context, userID, key string) (*entity.Notification, error) {
	var notification entity.Notification
	found, err := r.store.Read(ctx, notificationPath(userID, key), &notification)
	if err != nil {
		return nil, errors.Wrap(err, "read notification")
	}
	if !found {
		return nil, nil
	}

	return &notification, nil
}

func (r *notificationRepository) List(ctx context.Context, userID string) (map[string]entity.Notification, error) {
	notifications := make(map[string]entity.Notification)
	if _, err := r.store.Read(ctx, notificationsPath(userID), &notifications); err != nil {
		return nil, errors.Wrap(err, "read notifications")
	}

	return notifications, nil
}

func (r *notificationRepository) Remove(ctx context.Context, userID, key string) error {
	return errors.Wrap(r.store.Delete(ctx, notificationPath(userID, key)), "delete notification")
}
