package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"plaza/config"
	"plaza/internal/delivery"
	"plaza/internal/delivery/http"
	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/router/handler"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/service"
	"plaza/internal/infra/auth"
	logs "plaza/internal/infra/log"
	"plaza/internal/infra/notification"
	"plaza/internal/infra/persistence/postgres"
	"plaza/internal/infra/pubsub"
	"plaza/internal/infra/qrcode"
	"plaza/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			authz.NewPolicies,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newFirebaseService,
			qrcode.NewQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlanLimitService,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewAddressService,
			impl.NewPlanService,
			impl.NewStaffService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewAddressHandler,
			handler.NewPlanHandler,
			handler.NewStaffHandler,
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
