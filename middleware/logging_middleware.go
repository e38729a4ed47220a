package middleware

import (
	"log/slog"
	"time"

	"suprss/utils/logger"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Health checks and metrics scrapes would drown everything else.
			if req.URL.Path == "/v1/health" || req.URL.Path == "/metrics" {
				return next(c)
			}
			ctx := req.Context()

			contextLogger.WithContext(ctx).InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			err := next(c)

			duration := time.Since(start)
			res := c.Response()

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
			}
			switch {
			case res.Status >= 500:
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", logAttrs...)
			case res.Status >= 400:
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", logAttrs...)
			default:
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			}

			return err
		}
	}
}
