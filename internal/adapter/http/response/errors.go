package response

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 for a body that is not valid JSON.
func InvalidRequestBody(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 listing the offending fields.
func ValidationError(c echo.Context, details map[string]string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 for a request rejected as a whole.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// ServiceUnavailable writes a 503 when no inventory source could answer.
func ServiceUnavailable(c echo.Context) error {
	return Error(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable, nil)
}

// SourcesUnavailable writes a 503 naming the vertical whose sources all failed.
func SourcesUnavailable(c echo.Context, vertical string) error {
	return Error(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
		fmt.Sprintf("All %s inventory sources are currently unavailable", vertical), nil)
}

// GatewayTimeout writes a 504 when the search deadline passed before any source answered.
func GatewayTimeout(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 for a request the client abandoned.
func RequestCancelled(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// TooManyRequests writes a 429 with a Retry-After hint in seconds.
func TooManyRequests(c echo.Context, retryAfterSeconds int) error {
	if retryAfterSeconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	return Error(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}

// InternalServerError writes a 500 without exposing the cause.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}

// NotFound writes a 404 with message.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// UnknownVertical writes a 404 for a search path naming a vertical that is not served,
// listing the ones that are.
func UnknownVertical(c echo.Context, name string, served []string) error {
	return Error(c, http.StatusNotFound, CodeNotFound,
		fmt.Sprintf("vertical %q is not served; available: %s", name, strings.Join(served, ", ")), nil)
}
