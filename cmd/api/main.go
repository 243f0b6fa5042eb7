package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/castilloConsultoresuy/turnolistov2/internal/api/http"
	"github.com/castilloConsultoresuy/turnolistov2/internal/api/http/handlers"
	"github.com/castilloConsultoresuy/turnolistov2/internal/auth"
	"github.com/castilloConsultoresuy/turnolistov2/internal/config"
	"github.com/castilloConsultoresuy/turnolistov2/internal/events"
	"github.com/castilloConsultoresuy/turnolistov2/internal/observability"
	"github.com/castilloConsultoresuy/turnolistov2/internal/persistence"
	"github.com/castilloConsultoresuy/turnolistov2/internal/service"
	"github.com/castilloConsultoresuy/turnolistov2/internal/store"
	"github.com/castilloConsultoresuy/turnolistov2/internal/worker"
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

	var queueStore store.QueueStateStore
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		queueStore = store.NewPostgresStore(pg.PoolHandle())
	case config.BackendRedis:
		queueStore = store.NewRedisStore(redis.Client)
	default:
		queueStore = store.NewMemoryStore()
	}
	logger.Info("queue state backend selected", zap.String("backend", cfg.Storage.Backend))

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notifier := service.NewNotifierService(dispatcher, logger, cfg.Notify)
	worker.StartNotifierWorker(notifier)

	queueService := service.NewQueueService(service.QueueDependencies{
		Store:      queueStore,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	adminService := service.NewAdminService(cfg.Auth)
	adminMiddleware := auth.NewAdminMiddleware(adminService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Storage.Backend, pg, redis)
	queueHandler := handlers.NewQueueHandler(queueService)
	adminHandler := handlers.NewAdminHandler(adminService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          healthHandler,
		Queue:           queueHandler,
		Admin:           adminHandler,
		AdminMiddleware: adminMiddleware,
		EnforceAdmin:    cfg.Auth.Enforce,
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
