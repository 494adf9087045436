package handler

import (
	"dogber/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// actorID returns the authenticated uid placed on the context by the auth
// middleware. Routes using it must sit behind Authenticate.
func actorID(c echo.Context) string {
	uid, _ := c.Get(middleware.ContextUserID).(string)

	return uid
}
