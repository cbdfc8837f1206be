package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/d3ads3c/cafepanel-sub000/internal/api/http"
	"github.com/d3ads3c/cafepanel-sub000/internal/api/http/handlers"
	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/events"
	"github.com/d3ads3c/cafepanel-sub000/internal/observability"
	"github.com/d3ads3c/cafepanel-sub000/internal/persistence"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/service"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	"github.com/d3ads3c/cafepanel-sub000/internal/worker"
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
		logger.Fatal("failed to connect control database", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	registry := tenant.NewRegistry(pg.PoolHandle(), redis.Client, cfg.Tenant.RegistryCacheTTL, logger)
	tenants := tenant.NewManager(registry, cfg.Tenant, logger)
	defer tenants.Close()

	staffRepo := repository.NewStaffRepository(pg.PoolHandle())

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret)
	identity := auth.NewIdentityClient(cfg.Identity)
	resolver := auth.NewResolver(tokens, identity, cfg.Auth.CookieName, logger)
	authMiddleware := auth.NewMiddleware(resolver)

	dispatcher := events.NewInMemoryDispatcher(logger)
	sessionService := service.NewSessionService(cfg.Auth, staffRepo, tokens)
	orderService := service.NewOrderService(dispatcher, logger)
	accountingService := service.NewAccountingService(dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.IsProduction())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Session:        handlers.NewSessionHandler(sessionService, cfg.Auth),
		Menu:           handlers.NewMenuHandler(tenants),
		Customers:      handlers.NewCustomerHandler(tenants),
		Orders:         handlers.NewOrderHandler(tenants, orderService),
		Accounting:     handlers.NewAccountingHandler(tenants, accountingService),
		Staff:          handlers.NewStaffHandler(staffRepo, cfg.Auth),
		Reports:        handlers.NewReportHandler(tenants),
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
