package http

import (
	"time"

	"github.com/tripnest/storefront/internal/domain"
)

// Swagger type definitions for API documentation. Search results are generic over the
// vertical's item type, so these mirror one concrete shape (flights) for swag.

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description One page of filtered, sorted results with facets and metadata
type SwaggerSearchResponse struct {
	// Query echoes the normalized search query
	Query domain.SearchQuery `json:"query"`

	// SortKey is the ordering that was applied
	SortKey domain.SortKey `json:"sortKey"`

	// Page contains the requested slice of results
	Page SwaggerPage `json:"page"`

	// Facets lists the cheapest price per category value
	Facets []domain.Facet `json:"facets"`

	// Metadata contains information about the search execution
	Metadata domain.SearchMetadata `json:"metadata"`
}

// SwaggerPage is one page of results. Item fields depend on the vertical.
// @Description One page of the result set
type SwaggerPage struct {
	Items   []SwaggerFlight `json:"items"`
	HasMore bool            `json:"hasMore" example:"true"`
	Index   int             `json:"index" example:"0"`
	Size    int             `json:"size" example:"10"`
	Total   int             `json:"total" example:"7"`
}

// SwaggerFlight represents a single flight offering.
// @Description Flight information from an inventory source
type SwaggerFlight struct {
	ID           string             `json:"id" example:"SKY-6E2133-1215"`
	FlightNumber string             `json:"flightNumber" example:"6E 2133"`
	Airline      SwaggerAirlineInfo `json:"airline"`
	Departure    SwaggerPoint       `json:"departure"`
	Arrival      SwaggerPoint       `json:"arrival"`
	Duration     SwaggerDuration    `json:"duration"`
	Price        SwaggerPriceInfo   `json:"price"`
	Class        string             `json:"class" example:"economy"`
	Stops        int                `json:"stops" example:"0"`
	Refundable   bool               `json:"refundable" example:"false"`
	Source       string             `json:"source" example:"skyfare"`
}

// SwaggerAirlineInfo contains information about an airline.
// @Description Airline information
type SwaggerAirlineInfo struct {
	Code string `json:"code" example:"6E"`
	Name string `json:"name" example:"IndiGo"`
}

// SwaggerPoint represents one end of a journey.
// @Description Departure, arrival, pickup or drop point
type SwaggerPoint struct {
	Code     string    `json:"code" example:"DEL"`
	Name     string    `json:"name,omitempty" example:"New Delhi (DEL)"`
	Terminal string    `json:"terminal,omitempty" example:"1"`
	DateTime time.Time `json:"dateTime" example:"2026-12-15T05:45:00+05:30"`
	Timezone string    `json:"timezone,omitempty" example:"Asia/Kolkata"`
}

// SwaggerDuration contains duration information.
// @Description Duration information
type SwaggerDuration struct {
	TotalMinutes int    `json:"totalMinutes" example:"135"`
	Formatted    string `json:"formatted" example:"2h 15m"`
}

// SwaggerPriceInfo contains pricing information.
// @Description Price information
type SwaggerPriceInfo struct {
	Amount    float64 `json:"amount" example:"1703"`
	Currency  string  `json:"currency" example:"INR"`
	Formatted string  `json:"formatted,omitempty" example:"₹1,703"`
}
