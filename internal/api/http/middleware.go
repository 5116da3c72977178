package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/goods-service/internal/auth"
	"github.com/spec-kit/goods-service/internal/observability"
	"github.com/spec-kit/goods-service/pkg/response"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware is the outermost conversion layer: anything a
// handler did not map itself becomes an envelope here. Expiry and denial
// sentinels keep their own codes; everything else is the generic server
// error with no internal detail.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				kind := response.KindServerError
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					kind = response.KindTokenExpired
				case errors.Is(err, auth.ErrPermissionDenied):
					kind = response.KindPermissionDenied
				}
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), kind.Code())
				}
				if kind == response.KindServerError {
					logger.Error("request failed", zap.Error(err))
				}
				_ = c.JSON(response.Fail(kind))
				err = nil
			}
		}()
		return c.Next()
	}
}
