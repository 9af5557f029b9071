package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/storefront/internal/adapter/http/response"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

// RecoveryConfig controls what the recovery middleware logs.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig logs stack traces.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover turns a panic in the handler chain into a 500 and logs it.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig is Recover with a custom configuration. The panic is logged through
// the request's logger when RequestLogger attached one. http.ErrAbortHandler is re-raised
// so net/http can abort the response.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if e, ok := r.(error); ok && errors.Is(e, http.ErrAbortHandler) {
					panic(r)
				}

				reqLog := logger.FromContext(c.Request().Context())
				if reqLog == nil {
					reqLog = log.WithRequestID(GetRequestID(c))
				}

				event := reqLog.Error().
					Str("route", c.Path()).
					Str("path", c.Request().URL.Path).
					Str("panic", fmt.Sprint(r))
				if vertical := c.Param("vertical"); vertical != "" {
					event = event.Str("vertical", vertical)
				}
				if !config.DisablePrintStack {
					event = event.Bytes("stack", debug.Stack())
				}
				event.Msg("handler panicked")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
