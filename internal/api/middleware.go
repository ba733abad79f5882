package api

import (
	"github.com/labstack/echo/v4"

	"medstat/internal/pkg/logger"
)

// requestIDToContext copies the id assigned by the RequestID middleware
// into the request context so store and service logs carry it.
func requestIDToContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Response().Header().Get(echo.HeaderXRequestID)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))

		return next(ctx)
	}
}
