// Package response writes the JSON bodies of the storefront API.
// Every error leaves the service in the same ErrorDetail envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details maps request fields to what is wrong with them (validation errors only)
	Details map[string]string `json:"details,omitempty"`

	// RequestID correlates the error with the server logs
	RequestID string `json:"requestId,omitempty" example:"5f0c6f5e-2f7b-4c47-a1a4-8d6e0f4f1c2b"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeNotFound           = "not_found"
	CodeRateLimited        = "rate_limited"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgServiceUnavailable = "All inventory sources are currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgRateLimited        = "Too many requests, slow down and retry shortly"
	MsgInternalError      = "An unexpected error occurred"
)

// CacheHeader reports whether a search was answered from the result-set cache.
const CacheHeader = "X-Cache"

// Error writes an ErrorDetail with status. The request ID set on the response
// by the request ID middleware, if any, is copied into the body.
func Error(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}
