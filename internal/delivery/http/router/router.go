// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dogber/internal/delivery/http/middleware"
	"dogber/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ProfileHandler      *handler.ProfileHandler
	WalkHandler         *handler.WalkHandler
	NotificationHandler *handler.NotificationHandler
	FeedbackHandler     *handler.FeedbackHandler
	DogHandler          *handler.DogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.params.LoggerMiddleware.Handle)

	// Everything below requires a provider-issued bearer token.
	api := e.Group("")
	api.Use(r.params.AuthMiddleware.Authenticate)

	// Account lifecycle
	api.POST("/session", r.params.AccountHandler.OpenSession)
	api.DELETE("/account", r.params.AccountHandler.DeleteAccount)

	// Own profile
	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.params.ProfileHandler.GetOwnProfile)
		profileGroup.PATCH("", r.params.ProfileHandler.UpdateProfile)
		profileGroup.POST("/balance/increase", r.params.ProfileHandler.IncreaseBalance)
		profileGroup.POST("/balance/decrease", r.params.ProfileHandler.DecreaseBalance)
		profileGroup.PUT("/walk/cost", r.params.ProfileHandler.UpdateWalkCost)
		profileGroup.PUT("/walk/active", r.params.ProfileHandler.SetWalkActive)
		profileGroup.POST("/addresses", r.params.ProfileHandler.AddAddress)
		profileGroup.GET("/addresses", r.params.ProfileHandler.GetAddresses)
		profileGroup.GET("/addresses/:key", r.params.ProfileHandler.GetAddress)
		profileGroup.DELETE("/addresses/:key", r.params.ProfileHandler.RemoveAddress)
	}

	// Other users
	usersGroup := api.Group("/users/:userID")
	{
		usersGroup.GET("/profile", r.params.ProfileHandler.GetUserProfile)
		usersGroup.POST("/rating", r.params.ProfileHandler.RateUser)
		usersGroup.POST("/completed-walks", r.params.ProfileHandler.IncrementCompletedWalks)
		usersGroup.POST("/feedback", r.params.FeedbackHandler.AddFeedback)
		usersGroup.GET("/feedback", r.params.FeedbackHandler.GetFeedback)
	}

	// Walk lifecycle
	walksGroup := api.Group("/walks")
	{
		walksGroup.POST("", r.params.WalkHandler.CreateWalk)
		walksGroup.GET("", r.params.WalkHandler.ListWalks)
		walksGroup.GET("/keys", r.params.WalkHandler.ListWalkKeys)
		walksGroup.GET("/:id", r.params.WalkHandler.GetWalk)
		walksGroup.POST("/:id/accept", r.params.WalkHandler.AcceptWalk)
		walksGroup.POST("/:id/reject", r.params.WalkHandler.RejectWalk)
		walksGroup.POST("/:id/cancel", r.params.WalkHandler.CancelWalk)
		walksGroup.POST("/:id/complete", r.params.WalkHandler.CompleteWalk)
	}

	// Notifications
	notificationsGroup := api.Group("/notifications")
	{
		notificationsGroup.POST("", r.params.NotificationHandler.CreateNotification)
		notificationsGroup.GET("", r.params.NotificationHandler.ListNotifications)
		notificationsGroup.GET("/:key", r.params.NotificationHandler.GetNotification)
		notificationsGroup.DELETE("/:key", r.params.NotificationHandler.RemoveNotification)
	}

	// Dogs
	dogsGroup := api.Group("/dogs")
	{
		dogsGroup.POST("", r.params.DogHandler.AddDog)
		dogsGroup.GET("", r.params.DogHandler.ListDogs)
		dogsGroup.GET("/:id", r.params.DogHandler.GetDog)
		dogsGroup.DELETE("/:id", r.params.DogHandler.RemoveDog)
	}
}
