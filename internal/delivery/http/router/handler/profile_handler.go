package handler

import (
	"log/slog"
	"net/http"

	"dogber/internal/delivery/http/response"
	"dogber/internal/domain/entity"
	"dogber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetOwnProfile returns the acting user's profile.
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	return h.getProfile(c, actorID(c))
}

// GetUserProfile returns another user's profile.
func (h *ProfileHandler) GetUserProfile(c echo.Context) error {
	return h.getProfile(c, c.Param("userID"))
}

func (h *ProfileHandler) getProfile(c echo.Context, userID string) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if profile == nil {
		return response.NotFound(c, "PROFILE_NOT_FOUND", "No profile exists for the given user")
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile applies the whitelisted fields from the request body.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), actorID(c), fields); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated")
}

type ratingInput struct {
	Delta float64 `json:"delta"`
}

// RateUser adds a rating increment to the target user.
func (h *ProfileHandler) RateUser(c echo.Context) error {
	var input ratingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := h.uc.IncrementRating(c.Request().Context(), c.Param("userID"), input.Delta); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating added")
}

// IncrementCompletedWalks bumps the target user's completed-walk counter.
func (h *ProfileHandler) IncrementCompletedWalks(c echo.Context) error {
	if err := h.uc.IncrementCompletedWalks(c.Request().Context(), c.Param("userID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Completed walks incremented")
}

type balanceInput struct {
	Amount float64 `json:"amount"`
}

// IncreaseBalance adds to the acting user's walk balance.
func (h *ProfileHandler) IncreaseBalance(c echo.Context) error {
	var input balanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid balance input")
	}

	if err := h.uc.IncreaseBalance(c.Request().Context(), actorID(c), input.Amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Balance increased")
}

// DecreaseBalance subtracts from the acting user's walk balance.
func (h *ProfileHandler) DecreaseBalance(c echo.Context) error {
	var input balanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid balance input")
	}

	if err := h.uc.DecreaseBalance(c.Request().Context(), actorID(c), input.Amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Balance decreased")
}

type walkCostInput struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// UpdateWalkCost sets the acting user's advertised price range.
func (h *ProfileHandler) UpdateWalkCost(c echo.Context) error {
	var input walkCostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid walk cost input")
	}

	if err := h.uc.UpdateWalkCost(c.Request().Context(), actorID(c), input.Min, input.Max); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Walk cost updated")
}

type walkActiveInput struct {
	Active bool `json:"active"`
}

// SetWalkActive toggles the acting user's availability for walks.
func (h *ProfileHandler) SetWalkActive(c echo.Context) error {
	var input walkActiveInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid walk active input")
	}

	if err := h.uc.AdjustWalkActiveState(c.Request().Context(), actorID(c), input.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Walk active state updated")
}

// AddAddress stores a new address on the acting user's profile.
func (h *ProfileHandler) AddAddress(c echo.Context) error {
	var addr entity.Address
	if err := c.Bind(&addr); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	key, err := h.uc.AddAddress(c.Request().Context(), actorID(c), &addr)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": key}, "Address added")
}

// GetAddresses lists the acting user's addresses.
func (h *ProfileHandler) GetAddresses(c echo.Context) error {
	addresses, err := h.uc.GetAddresses(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// GetAddress returns one of the acting user's addresses.
func (h *ProfileHandler) GetAddress(c echo.Context) error {
	addr, err := h.uc.GetAddressByKey(c.Request().Context(), actorID(c), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}
	if addr == nil {
		return response.NotFound(c, "ADDRESS_NOT_FOUND", "No address exists for the given key")
	}

	return response.Success(c, http.StatusOK, addr, "")
}

// RemoveAddress deletes one of the acting user's addresses.
func (h *ProfileHandler) RemoveAddress(c echo.Context) error {
	if err := h.uc.RemoveAddress(c.Request().Context(), actorID(c), c.Param("key")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address removed")
}
