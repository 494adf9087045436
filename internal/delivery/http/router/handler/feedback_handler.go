package handler

import (
	"log/slog"
	"net/http"

	"dogber/internal/delivery/http/response"
	"dogber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{uc: uc, logger: logger}
}

type addFeedbackInput struct {
	Message      string `json:"message"`
	FeedbackerID string `json:"feedbacker_id"` // Defaults to the acting user.
}

// AddFeedback stores feedback on the target profile.
func (h *FeedbackHandler) AddFeedback(c echo.Context) error {
	var input addFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}

	actor := actorID(c)
	if input.FeedbackerID == "" {
		input.FeedbackerID = actor
	}

	key, err := h.uc.AddFeedback(c.Request().Context(),
		actor, input.FeedbackerID, c.Param("userID"), input.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": key}, "Feedback added")
}

// GetFeedback lists all feedback on the target profile.
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	feedback, err := h.uc.GetFeedback(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "")
}
