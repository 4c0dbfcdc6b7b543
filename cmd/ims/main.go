package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/delivery"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/middleware"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/router/handler"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"
	"github.com/ir-khan/inventory-management-system/internal/infra/auth"
	"github.com/ir-khan/inventory-management-system/internal/infra/connectivity"
	"github.com/ir-khan/inventory-management-system/internal/infra/firebase"
	logs "github.com/ir-khan/inventory-management-system/internal/infra/log"
	"github.com/ir-khan/inventory-management-system/internal/infra/persistence/firestore"
	"github.com/ir-khan/inventory-management-system/internal/infra/persistence/localcache"
	"github.com/ir-khan/inventory-management-system/internal/infra/pubsub"
	"github.com/ir-khan/inventory-management-system/internal/usecase"
	"github.com/ir-khan/inventory-management-system/internal/usecase/impl"

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
		firebase.NewApp,
		firestore.NewClient,
		auth.NewFirebaseAuthService,
		connectivity.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserProfileRepository,
			firestore.NewProductRepository,
			firestore.NewTransactionRepository,
			firestore.NewEmployeeRepository,
			localcache.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newProfileService,
			impl.NewInventoryService,
			impl.NewEmployeeService,
			newFeedService,
		),
	)
}

// newProfileService stops the sync engine's writer goroutine and drain
// subscription on shutdown.
func newProfileService(
	lc fx.Lifecycle,
	users repository.UserProfileRepository,
	cache repository.LocalCache,
	monitor service.ConnectivityMonitor,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	srv := impl.NewProfileService(users, cache, monitor, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return srv.Close()
		},
	})

	return srv
}

// newFeedService passes the configured default feed limit through to the
// feed constructor.
func newFeedService(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return impl.NewFeedService(products, transactions, cfg.Feed.RecentTransactionLimit, logger)
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
			handler.NewProfileHandler,
			handler.NewInventoryHandler,
			handler.NewEmployeeHandler,
			handler.NewFeedHandler,
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
