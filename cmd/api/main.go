package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/goods-service/internal/api/http"
	"github.com/spec-kit/goods-service/internal/api/http/handlers"
	"github.com/spec-kit/goods-service/internal/auth"
	"github.com/spec-kit/goods-service/internal/config"
	"github.com/spec-kit/goods-service/internal/events"
	"github.com/spec-kit/goods-service/internal/observability"
	"github.com/spec-kit/goods-service/internal/persistence"
	"github.com/spec-kit/goods-service/internal/repository"
	"github.com/spec-kit/goods-service/internal/service"
	"github.com/spec-kit/goods-service/internal/worker"
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

	var (
		userRepo  repository.SystemUserRepository
		goodsRepo repository.GoodsRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewSystemUserRepository(pool)
		goodsRepo = repository.NewGoodsRepository(pool)
	} else {
		userRepo = repository.NewMemorySystemUserRepository()
		goodsRepo = repository.NewMemoryGoodsRepository()
	}

	authService := service.NewAuthService(*cfg, userRepo, logger)
	if err := authService.EnsureAdmin(ctx); err != nil {
		logger.Fatal("failed to seed admin credential", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger, cfg.Audit)
	worker.StartAuditWorker(auditService)

	goodsCache := persistence.NewGoodsCache(redis, logger)
	goodsService := service.NewGoodsService(goodsRepo, goodsCache, dispatcher, logger)

	gate := auth.NewGate(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:   handlers.NewAuthHandler(authService),
		Goods:  handlers.NewGoodsHandler(goodsService),
		Gate:   gate,
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
