package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/goods-service/internal/api/http/handlers"
	"github.com/spec-kit/goods-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Goods  *handlers.GoodsHandler
	Gate   *auth.Gate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	goods := app.Group("/goods", cfg.Gate.Handle)
	goods.Post("/add", cfg.Goods.Add)
	goods.Get("/", cfg.Goods.List)
	goods.Get("/:id", cfg.Goods.Find)
	goods.Put("/:id", cfg.Goods.Update)
	goods.Delete("/:id", cfg.Goods.Delete)
}
