package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dogber/internal/delivery/http/response"
	"dogber/internal/domain/entity"
	"dogber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WalkHandler holds dependencies for walk lifecycle handlers.
type WalkHandler struct {
	uc     usecase.WalkUsecase
	logger *slog.Logger
}

// NewWalkHandler is the constructor for WalkHandler, injected by Fx.
func NewWalkHandler(uc usecase.WalkUsecase, logger *slog.Logger) *WalkHandler {
	return &WalkHandler{uc: uc, logger: logger}
}

type createWalkInput struct {
	WalkerID string   `json:"walker_id"`
	Dogs     []string `json:"dogs"`
	Start    int64    `json:"start"` // Epoch milliseconds.
	End      int64    `json:"end"`   // Epoch milliseconds.
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Notes *string `json:"notes"`
}

type notesInput struct {
	Notes *string `json:"notes"`
}

// CreateWalk opens a walk request with the acting user as owner.
func (h *WalkHandler) CreateWalk(c echo.Context) error {
	var input createWalkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid walk input")
	}

	walkID, err := h.uc.Create(c.Request().Context(), &usecase.CreateWalkInput{
		WalkerID: input.WalkerID,
		OwnerID:  actorID(c),
		DogIDs:   input.Dogs,
		Start:    time.UnixMilli(input.Start),
		End:      time.UnixMilli(input.End),
		Location: entity.NewGeoPoint(input.Location.Lat, input.Location.Lng),
		Notes:    input.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": walkID}, "Walk created")
}

// GetWalk returns a single walk document.
func (h *WalkHandler) GetWalk(c echo.Context) error {
	walk, err := h.uc.GetWalkByKey(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if walk == nil {
		return response.NotFound(c, "WALK_NOT_FOUND", "No walk exists for the given id")
	}

	return response.Success(c, http.StatusOK, walk, "")
}

// ListWalks resolves the acting user's walk back-references.
func (h *WalkHandler) ListWalks(c echo.Context) error {
	walks, err := h.uc.GetAllWalks(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, walks, "")
}

// ListWalkKeys returns the raw walk ids referenced by the acting user.
func (h *WalkHandler) ListWalkKeys(c echo.Context) error {
	keys, err := h.uc.GetAllWalkKeys(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, keys, "")
}

// AcceptWalk moves a pending walk to active.
func (h *WalkHandler) AcceptWalk(c echo.Context) error {
	return h.transition(c, h.uc.Accept, "Walk accepted")
}

// RejectWalk moves a pending walk to rejected.
func (h *WalkHandler) RejectWalk(c echo.Context) error {
	return h.transition(c, h.uc.Reject, "Walk rejected")
}

// CancelWalk moves a pending or active walk to cancelled.
func (h *WalkHandler) CancelWalk(c echo.Context) error {
	return h.transition(c, h.uc.Cancel, "Walk cancelled")
}

// CompleteWalk moves an active walk to complete.
func (h *WalkHandler) CompleteWalk(c echo.Context) error {
	return h.transition(c, h.uc.Complete, "Walk completed")
}

func (h *WalkHandler) transition(
	c echo.Context,
	op func(ctx context.Context, actorID, walkID string, notes *string) error,
	message string,
) error {
	var input notesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notes input")
	}

	if err := op(c.Request().Context(), actorID(c), c.Param("id"), input.Notes); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}
