package middleware

import (
	"time"

	"weav-api/core/constants"
	"weav-api/core/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", c.Get(constants.ContextRequestID),
				"ip", c.RealIP(),
			}

			switch {
			case res.Status >= 500:
				logger.Error("HTTP:Request", args...)
			case res.Status >= 400:
				logger.Warn("HTTP:Request", args...)
			default:
				logger.Info("HTTP:Request", args...)
			}
			return nil
		}
	}
}
