package middleware

import (
	"math"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/tripnest/storefront/internal/adapter/http/response"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

// Config configures the middleware chain.
type Config struct {
	Recovery RecoveryConfig

	// RateLimit caps API requests per second per client IP; 0 disables limiting
	RateLimit float64
	RateBurst int
}

// Setup installs the middleware every request passes through, in order: RequestID so
// every entry can carry the ID, RequestLogger, then Recover inside it so a recovered
// panic is logged with its final 500 status.
func Setup(e *echo.Echo, log *logger.Logger, cfg Config) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, cfg.Recovery))
}

// APIMiddleware returns the middleware for the versioned API group.
func APIMiddleware(cfg Config) []echo.MiddlewareFunc {
	if cfg.RateLimit <= 0 {
		return nil
	}
	return []echo.MiddlewareFunc{RateLimiter(cfg.RateLimit, cfg.RateBurst)}
}

// RateLimiter limits each client IP to perSecond requests with the given burst and answers
// the excess with 429.
func RateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if burst < 1 {
		burst = 1
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	retryAfter := int(math.Ceil(1 / perSecond))

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.InternalServerError(c)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c, retryAfter)
		},
	})
}
