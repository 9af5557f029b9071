package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/storefront/internal/adapter/http/response"
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/usecase"
)

// Handler handles HTTP requests for the storefront search endpoints.
// Verticals are added with Register before routes are served.
type Handler struct {
	searches map[domain.Vertical]verticalSearch
	order    []domain.Vertical
	paging   PagingConfig
}

type verticalSearch struct {
	capabilities usecase.Capabilities
	handle       echo.HandlerFunc
}

// NewHandler creates a Handler with no verticals.
// Zero paging values fall back to DefaultPagingConfig.
func NewHandler(paging PagingConfig) *Handler {
	defaults := DefaultPagingConfig()
	if paging.DefaultSize <= 0 {
		paging.DefaultSize = defaults.DefaultSize
	}
	if paging.MaxSize <= 0 {
		paging.MaxSize = defaults.MaxSize
	}
	if paging.DefaultSize > paging.MaxSize {
		paging.DefaultSize = paging.MaxSize
	}

	return &Handler{
		searches: make(map[domain.Vertical]verticalSearch),
		paging:   paging,
	}
}

// Register serves uc's vertical from h. Registering a vertical again replaces its use case.
func Register[T any](h *Handler, uc usecase.SearchUseCase[T]) {
	v := uc.Vertical()
	if _, ok := h.searches[v]; !ok {
		h.order = append(h.order, v)
	}
	h.searches[v] = verticalSearch{
		capabilities: uc.Capabilities(),
		handle:       searchHandler(uc, h.paging),
	}
}

// Search handles POST /api/v1/:vertical/search
//
// @Summary Search one vertical
// @Description Fetch inventory for the query from every source of the vertical, then filter, sort and page it
// @Tags search
// @Accept json
// @Produce json
// @Param vertical path string true "Vertical" Enums(flights, hotels, trains, buses, cabs, homestays, insurance)
// @Param request body SearchRequest true "Query, filters, sort and page"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown vertical"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/{vertical}/search [post]
func (h *Handler) Search(c echo.Context) error {
	name := c.Param("vertical")
	v, err := domain.ParseVertical(name)
	if err != nil {
		return response.UnknownVertical(c, name, h.served())
	}

	search, ok := h.searches[v]
	if !ok {
		return response.UnknownVertical(c, name, h.served())
	}
	return search.handle(c)
}

// Verticals handles GET /api/v1/verticals
//
// @Summary List verticals
// @Description List the verticals being served with the filter axes and sort fields each supports
// @Tags search
// @Produce json
// @Success 200 {object} VerticalsResponseDTO
// @Router /api/v1/verticals [get]
func (h *Handler) Verticals(c echo.Context) error {
	out := VerticalsResponseDTO{Verticals: make([]VerticalDTO, 0, len(h.order))}
	for _, v := range h.order {
		out.Verticals = append(out.Verticals, ToVerticalDTO(v, h.searches[v].capabilities))
	}
	return response.OK(c, out)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c, h.served()...)
}

// served lists the registered verticals in registration order.
func (h *Handler) served() []string {
	names := make([]string, len(h.order))
	for i, v := range h.order {
		names[i] = string(v)
	}
	return names
}

func searchHandler[T any](uc usecase.SearchUseCase[T], paging PagingConfig) echo.HandlerFunc {
	vertical := uc.Vertical()

	return func(c echo.Context) error {
		var req SearchRequest

		// Bind request body
		if err := c.Bind(&req); err != nil {
			return response.InvalidRequestBody(c)
		}

		if err := req.Validate(vertical, uc.Capabilities(), paging); err != nil {
			return handleValidationError(c, err)
		}

		query := ToDomainQuery(vertical, &req)
		opts := ToSearchOptions(&req, paging)

		// Call use case with request context
		result, err := uc.Search(c.Request().Context(), query, opts)
		if err != nil {
			return handleError(c, vertical, err)
		}

		return response.SearchResults(c, result, result.Metadata.CacheHit)
	}
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// Timeouts are checked first since an exhausted deadline also fails every source.
func handleError(c echo.Context, vertical domain.Vertical, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrAllSourcesFailed):
		return response.SourcesUnavailable(c, string(vertical))
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}
