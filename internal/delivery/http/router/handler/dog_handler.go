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

// DogHandler holds dependencies for dog handlers.
type DogHandler struct {
	uc     usecase.DogUsecase
	logger *slog.Logger
}

// NewDogHandler is the constructor for DogHandler, injected by Fx.
func NewDogHandler(uc usecase.DogUsecase, logger *slog.Logger) *DogHandler {
	return &DogHandler{uc: uc, logger: logger}
}

// AddDog stores a dog on the acting user's record.
func (h *DogHandler) AddDog(c echo.Context) error {
	var dog entity.Dog
	if err := c.Bind(&dog); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dog input")
	}

	key, err := h.uc.AddDog(c.Request().Context(), actorID(c), &dog)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": key}, "Dog added")
}

// ListDogs returns the acting user's dogs.
func (h *DogHandler) ListDogs(c echo.Context) error {
	dogs, err := h.uc.GetAllDogs(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dogs, "")
}

// GetDog returns one of the acting user's dogs.
func (h *DogHandler) GetDog(c echo.Context) error {
	dog, err := h.uc.GetSingleDog(c.Request().Context(), actorID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if dog == nil {
		return response.NotFound(c, "DOG_NOT_FOUND", "No dog exists for the given id")
	}

	return response.Success(c, http.StatusOK, dog, "")
}

// RemoveDog deletes one of the acting user's dogs.
func (h *DogHandler) RemoveDog(c echo.Context) error {
	if err := h.uc.RemoveDog(c.Request().Context(), actorID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dog removed")
}
