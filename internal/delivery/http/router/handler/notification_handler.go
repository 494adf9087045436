package handler

import (
	"log/slog"
	"net/http"

	"dogber/internal/delivery/http/response"
	"dogber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

type createNotificationInput struct {
	TargetID   string  `json:"target_id"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	ActionType *string `json:"action_type"`
	ActionLink *string `json:"action_link"`
}

// CreateNotification appends a notification. The target defaults to the
// acting user when absent from the body.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var input createNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if input.TargetID == "" {
		input.TargetID = actorID(c)
	}

	key, err := h.uc.Create(c.Request().Context(),
		input.TargetID, input.Title, input.Message, input.ActionType, input.ActionLink)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": key}, "Notification created")
}

// ListNotifications returns all of the acting user's notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.uc.GetNotifications(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// GetNotification returns one of the acting user's notifications.
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notification, err := h.uc.GetNotificationByKey(c.Request().Context(), actorID(c), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}
	if notification == nil {
		return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "No notification exists for the given key")
	}

	return response.Success(c, http.StatusOK, notification, "")
}

// RemoveNotification deletes one of the acting user's notifications.
func (h *NotificationHandler) RemoveNotification(c echo.Context) error {
	if err := h.uc.RemoveNotification(c.Request().Context(), actorID(c), c.Param("key")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification removed")
}
