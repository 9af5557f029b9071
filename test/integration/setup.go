// Package integration provides helpers and integration tests for the storefront search.
// Integration tests verify that components work together correctly, including
// HTTP routing, request validation, use cases, inventory and mock sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	storehttp "github.com/tripnest/storefront/internal/adapter/http"
	"github.com/tripnest/storefront/internal/adapter/http/middleware"
	"github.com/tripnest/storefront/internal/adapter/http/response"
	"github.com/tripnest/storefront/internal/app"
	"github.com/tripnest/storefront/internal/config"
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
	"github.com/tripnest/storefront/internal/infrastructure/retry"
	"github.com/tripnest/storefront/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *storehttp.Handler
}

// NewTestServer creates a test server with no verticals behind the service middleware.
// Add verticals with Serve.
func NewTestServer() *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, logger.Nop(), middleware.Config{})

	handler := storehttp.NewHandler(storehttp.DefaultPagingConfig())
	storehttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Serve registers uc's vertical on ts and returns ts for chaining.
func Serve[T any](ts *TestServer, uc usecase.SearchUseCase[T]) *TestServer {
	storehttp.Register(ts.Handler, uc)
	return ts
}

// NewStorefrontServer serves every vertical from the embedded inventory.
func NewStorefrontServer() (*TestServer, error) {
	sf, err := app.New(storefrontConfig(), logger.Nop())
	if err != nil {
		return nil, err
	}
	ts := NewTestServer()
	sf.Register(ts.Handler)
	return ts, nil
}

// storefrontConfig returns a configuration with short timeouts and no inventory latency.
func storefrontConfig() *config.Config {
	return &config.Config{
		Timeouts: config.TimeoutConfig{
			GlobalSearch: 2 * time.Second,
			PerSource:    time.Second,
		},
		Search: config.SearchConfig{
			CacheTTL:         time.Minute,
			RetryMaxAttempts: 1,
			DefaultPageSize:  10,
			MaxPageSize:      50,
			SortLocale:       "en-IN",
		},
		Inventory: config.InventoryConfig{
			RateBurst: 10,
		},
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        any
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts body to the search endpoint of vertical.
func (ts *TestServer) Search(vertical domain.Vertical, body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/" + string(vertical) + "/search",
		Body:   body,
	})
}

// Verticals lists the served verticals.
func (ts *TestServer) Verticals() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/verticals",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult parses the response body as a search result of T.
func ParseSearchResult[T any](r Response) (*domain.SearchResult[T], error) {
	var result domain.SearchResult[T]
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FlightRequest returns a valid DEL-BOM search request body.
func FlightRequest() storehttp.SearchRequest {
	return storehttp.SearchRequest{
		Origin:      "DEL",
		Destination: "BOM",
		Date:        "2026-12-15",
	}
}

// HotelRequest returns a valid Goa stay request body.
func HotelRequest() storehttp.SearchRequest {
	return storehttp.SearchRequest{
		City:     "Goa",
		Date:     "2026-12-20",
		CheckOut: "2026-12-23",
	}
}

// FlightQuery returns the domain query matching FlightRequest.
func FlightQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Vertical:    domain.VerticalFlights,
		Origin:      "DEL",
		Destination: "BOM",
		Date:        "2026-12-15",
	}
}

// FastConfig returns a use case configuration with short timeouts, no cache and no retries.
func FastConfig() *usecase.Config {
	return &usecase.Config{
		GlobalTimeout: time.Second,
		SourceTimeout: 200 * time.Millisecond,
		CacheTTL:      0,
		Retry:         retry.Config{MaxAttempts: 1},
		Logger:        logger.Nop(),
	}
}

// FlightSearch creates a flight use case over sources.
func FlightSearch(config *usecase.Config, sources ...domain.Source[domain.Flight]) usecase.SearchUseCase[domain.Flight] {
	return usecase.NewSearchUseCase(domain.VerticalFlights, sources, usecase.NewEngine(usecase.FlightAccessors()), config)
}

// HotelSearch creates a hotel use case over sources.
func HotelSearch(config *usecase.Config, sources ...domain.Source[domain.Hotel]) usecase.SearchUseCase[domain.Hotel] {
	return usecase.NewSearchUseCase(domain.VerticalHotels, sources, usecase.NewEngine(usecase.HotelAccessors()), config)
}
