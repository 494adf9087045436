package handler

import (
	"log/slog"
	"net/http"

	"dogber/internal/delivery/http/response"
	"dogber/internal/domain/service"
	"dogber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account lifecycle handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	profileUC usecase.ProfileUsecase
	authSvc   service.AuthService
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	accountUC usecase.AccountUsecase,
	profileUC usecase.ProfileUsecase,
	authSvc service.AuthService,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		profileUC: profileUC,
		authSvc:   authSvc,
		logger:    logger,
	}
}

// OpenSession seeds the profile on first login and bumps the login counter on
// every later one. The auth provider has already authenticated the caller.
func (h *AccountHandler) OpenSession(c echo.Context) error {
	ctx := c.Request().Context()
	uid := actorID(c)

	profile, created, err := h.accountUC.EnsureAccount(ctx, uid)
	if err != nil {
		return errors.WithStack(err)
	}

	if !created {
		if err := h.profileUC.IncrementLoginCount(ctx, uid); err != nil {
			return errors.WithStack(err)
		}
		profile, err = h.profileUC.GetProfile(ctx, uid)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, profile, "Session opened")
}

// DeleteAccount removes the user's data and the provider-side account.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	uid := actorID(c)

	if err := h.accountUC.RemoveAccountData(ctx, uid); err != nil {
		return errors.WithStack(err)
	}
	if err := h.authSvc.DeleteAccount(ctx, uid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
