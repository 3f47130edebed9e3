package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

// Logger emits one structured line per request. Identity fields are read
// after the handler runs, so requests authenticated further down the chain
// still get their user id and role attached.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Int64("bytes_out", c.Response().Size).
				Str("remote_ip", c.RealIP())

			ctx := c.Request().Context()
			if userID := auth.UserIDFromContext(ctx); userID != uuid.Nil {
				evt = evt.Str("user_id", userID.String())
			}
			if role := auth.RoleFromContext(ctx); role != "" {
				evt = evt.Str("role", role)
			}

			evt.Msg("request")
			return err
		}
	}
}
