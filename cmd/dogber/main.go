package main

import (
	"context"
	"log/slog"
	"os"

	"dogber/config"
	"dogber/internal/delivery"
	"dogber/internal/delivery/http"
	"dogber/internal/delivery/http/middleware"
	"dogber/internal/delivery/http/router/handler"
	"dogber/internal/infra/auth"
	logs "dogber/internal/infra/log"
	"dogber/internal/infra/persistence/docstore"
	"dogber/internal/infra/persistence/firebase"
	"dogber/internal/infra/pubsub"
	"dogber/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			docstore.NewProfileRepository,
			docstore.NewWalkRepository,
			docstore.NewNotificationRepository,
			docstore.NewFeedbackRepository,
			docstore.NewDogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseAuthService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewWalkService,
			impl.NewNotificationService,
			impl.NewFeedbackService,
			impl.NewDogService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewWalkHandler,
			handler.NewNotificationHandler,
			handler.NewFeedbackHandler,
			handler.NewDogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
