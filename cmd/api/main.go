package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-management/internal/api/http"
	"github.com/spec-kit/ticket-management/internal/api/http/handlers"
	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/events"
	"github.com/spec-kit/ticket-management/internal/observability"
	"github.com/spec-kit/ticket-management/internal/persistence"
	"github.com/spec-kit/ticket-management/internal/repository"
	"github.com/spec-kit/ticket-management/internal/service"
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
	customerRepo := repository.NewCustomerRepository(pool)
	engineerRepo := repository.NewEngineerRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	if err := service.EnsureDefaultEngineer(ctx, *cfg, engineerRepo, logger); err != nil {
		logger.Fatal("failed to provision default engineer", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterLoggingSubscriber(dispatcher, logger)

	sessionStore := auth.NewSessionStore(redis.Client)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CustomerRepo: customerRepo,
		EngineerRepo: engineerRepo,
		SessionStore: sessionStore,
	})
	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		CustomerRepo: customerRepo,
		EngineerRepo: engineerRepo,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		CustomerRepo: customerRepo,
		EngineerRepo: engineerRepo,
		Dispatcher:   dispatcher,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessionStore, customerRepo, engineerRepo, cfg.Auth.SessionCookieName)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth),
		Customers:      handlers.NewCustomersHandler(accountService),
		Engineers:      handlers.NewEngineersHandler(accountService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
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
