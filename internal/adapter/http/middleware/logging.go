package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripnest/storefront/internal/adapter/http/response"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

const healthRoute = "/health"

// RequestLogger gives each request a child of log tagged with its request ID, carried
// in the request context for the handlers and use cases below, and writes one access
// entry when the chain returns. Errors returned by the chain are rendered here so the
// entry records the final status.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqLog := log.WithRequestID(GetRequestID(c))
			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.IntoContext(req.Context())))

			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			event := accessEvent(reqLog, c.Path(), res.Status)
			if vertical := c.Param("vertical"); vertical != "" {
				event = event.Str("vertical", vertical)
			}
			if hit := res.Header().Get(response.CacheHeader); hit != "" {
				event = event.Str("cache", hit)
			}

			event.
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_in", req.ContentLength).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("request served")
			return nil
		}
	}
}

// accessEvent picks the level of an access entry. Health probes stay at debug
// unless they fail.
func accessEvent(log *logger.Logger, route string, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	case route == healthRoute:
		return log.Debug()
	default:
		return log.Info()
	}
}
