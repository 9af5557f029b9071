// Package middleware holds the echo middleware the storefront API runs behind.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = echo.HeaderXRequestID

	// maxRequestIDLength bounds caller-supplied IDs that are reused.
	maxRequestIDLength = 64

	requestIDKey = "request_id"
)

// RequestID tags each request with an ID and echoes it in the response header.
// A caller-supplied X-Request-ID is kept when it is a short token of letters, digits
// and "-_.:"; anything else is replaced by a new UUID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the ID assigned by RequestID, or "" outside it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
