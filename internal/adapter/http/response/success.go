package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string   `json:"status" example:"ok"`
	Verticals []string `json:"verticals,omitempty"`
}

// Health writes a health check response listing the verticals being served.
func Health(c echo.Context, verticals ...string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "ok",
		Verticals: verticals,
	})
}

// SearchResults writes a 200 with a search result and marks in CacheHeader
// whether the inventory came from the cache.
func SearchResults(c echo.Context, result any, cacheHit bool) error {
	state := "MISS"
	if cacheHit {
		state = "HIT"
	}
	c.Response().Header().Set(CacheHeader, state)
	return c.JSON(http.StatusOK, result)
}
