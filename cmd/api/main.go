package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/luxeride/rental-service/internal/api/http"
	"github.com/luxeride/rental-service/internal/api/http/handlers"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/config"
	"github.com/luxeride/rental-service/internal/events"
	"github.com/luxeride/rental-service/internal/guard"
	"github.com/luxeride/rental-service/internal/observability"
	"github.com/luxeride/rental-service/internal/persistence"
	"github.com/luxeride/rental-service/internal/repository"
	"github.com/luxeride/rental-service/internal/service"
	"github.com/luxeride/rental-service/internal/session"
	"github.com/luxeride/rental-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	settingsRepo := repository.NewSettingsRepository(redis.Client)

	flagStore := session.NewRedisFlagStore(redis.Client, cfg.Session.FlagTTL())
	revoker := auth.NewRedisRevoker(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		FlagStore:         flagStore,
		Revoker:           revoker,
	})
	vehicleService := service.NewVehicleService(vehicleRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		VehicleRepo: vehicleRepo,
		Dispatcher:  dispatcher,
	})
	favoriteService := service.NewFavoriteService(favoriteRepo, vehicleRepo)
	userService := service.NewUserService(userRepo, settingsRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	navGuard := guard.New(flagStore, revoker, dispatcher, logger, metrics, cfg.Auth.AccessTokenTTL())
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, revoker)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Guard:          handlers.NewGuardHandler(navGuard),
		Vehicles:       handlers.NewVehiclesHandler(vehicleService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Favorites:      handlers.NewFavoritesHandler(favoriteService),
		Profile:        handlers.NewProfileHandler(userService),
		Chat:           handlers.NewChatHandler(),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
