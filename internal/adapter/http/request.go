// Package http provides the HTTP handler layer for the storefront search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/usecase"
)

// SearchRequest represents the request body of every vertical search endpoint.
// Transport verticals need origin, destination and date; stays need city and date;
// insurance needs destination and date.
type SearchRequest struct {
	// Origin is the departure airport, station or city (e.g., "DEL")
	Origin string `json:"origin,omitempty" example:"DEL"`

	// Destination is the arrival place or the insured trip's destination (e.g., "BOM")
	Destination string `json:"destination,omitempty" example:"BOM"`

	// City is the stay location for hotels and homestays (e.g., "Goa")
	City string `json:"city,omitempty" example:"Goa"`

	// Date is the travel, pickup, check-in or trip start date in YYYY-MM-DD format
	Date string `json:"date" example:"2026-12-15"`

	// CheckOut is the optional check-out date for stays in YYYY-MM-DD format
	CheckOut string `json:"checkOut,omitempty" example:"2026-12-18"`

	// Travellers is the number of passengers, guests or insured travellers (1-9, default 1)
	Travellers int `json:"travellers,omitempty" example:"1"`

	// Class is the flight cabin class: economy, premium-economy, business or first. Empty matches every cabin
	Class string `json:"class,omitempty" example:"economy"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is a sort token (e.g., "price-low-high") or "field:direction"
	SortBy string `json:"sortBy,omitempty" example:"price-low-high"`

	// Page is the zero-based page index
	Page int `json:"page,omitempty" example:"0"`

	// PageSize is the number of items per page (default and maximum are configured)
	PageSize int `json:"pageSize,omitempty" example:"10"`
}

// FilterDTO represents the optional sidebar filters.
// Example: {"priceRange": {"max": 5000}, "categories": {"airline": ["IndiGo"]}, "stops": ["non-stop"]}
type FilterDTO struct {
	// PriceRange keeps items priced within the inclusive bounds
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`

	// Categories maps a filter axis (see GET /api/v1/verticals) to the selected values
	Categories map[string][]string `json:"categories,omitempty"`

	// TimeSlots keeps items departing in one of: early-morning, morning, afternoon, evening
	TimeSlots []string `json:"timeSlots,omitempty" example:"morning,evening"`

	// Stops keeps items with one of: non-stop, 1-stop, 2+-stops
	Stops []string `json:"stops,omitempty" example:"non-stop"`

	// DurationRange keeps items by total duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`

	// MinRating keeps items rated at or above this value
	MinRating *float64 `json:"minRating,omitempty" example:"4"`
}

// PriceRangeDTO represents an inclusive price window. Either bound may be omitted.
type PriceRangeDTO struct {
	Min *float64 `json:"min,omitempty" example:"1500"`
	Max *float64 `json:"max,omitempty" example:"5000"`
}

// DurationRangeDTO represents a duration range filter in minutes.
// Example: {"minMinutes": 60, "maxMinutes": 180} keeps trips between 1 and 3 hours.
type DurationRangeDTO struct {
	MinMinutes *int `json:"minMinutes,omitempty" example:"60"`
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"180"`
}

// PagingConfig bounds the page sizes a client may request.
type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPagingConfig returns the paging bounds used when none are configured.
func DefaultPagingConfig() PagingConfig {
	return PagingConfig{DefaultSize: usecase.DefaultPageSize, MaxSize: 50}
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid flight cabin classes.
var validClasses = map[string]bool{
	"economy":         true,
	"premium-economy": true,
	"business":        true,
	"first":           true,
	"":                true, // Empty searches every cabin
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request against the vertical's query rules, the filters and sort
// fields the vertical supports, and the paging bounds. Codes and enum values are normalized
// in place.
func (r *SearchRequest) Validate(vertical domain.Vertical, caps usecase.Capabilities, paging PagingConfig) error {
	errs := &ValidationErrors{}

	switch {
	case vertical == domain.VerticalFlights:
		r.validateAirports(errs)
		r.validateClass(errs)
	case vertical.IsTransport():
		r.validatePlaces(errs)
	case vertical.IsStay():
		r.validateRequired("city", r.City, errs)
	default:
		r.validateRequired("destination", r.Destination, errs)
	}

	r.validateDates(errs)
	r.validateTravellers(errs)
	r.validateSortBy(vertical, caps, errs)
	r.validatePaging(paging, errs)
	r.validateFilters(vertical, caps, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchRequest) validateRequired(field, value string, errs *ValidationErrors) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
	}
}

func (r *SearchRequest) validateAirports(errs *ValidationErrors) {
	r.Origin = r.validateAirportCode("origin", r.Origin, errs)
	r.Destination = r.validateAirportCode("destination", r.Destination, errs)

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchRequest) validateAirportCode(field, value string, errs *ValidationErrors) string {
	if value == "" {
		errs.Add(field, field+" is required")
		return value
	}

	code := strings.ToUpper(strings.TrimSpace(value))
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return value
	}
	return code
}

func (r *SearchRequest) validatePlaces(errs *ValidationErrors) {
	r.validateRequired("origin", r.Origin, errs)
	r.validateRequired("destination", r.Destination, errs)

	origin, destination := strings.TrimSpace(r.Origin), strings.TrimSpace(r.Destination)
	if origin != "" && strings.EqualFold(origin, destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchRequest) validateClass(errs *ValidationErrors) {
	r.Class = strings.ToLower(strings.TrimSpace(r.Class))
	if !validClasses[r.Class] {
		errs.Add("class", "class must be one of: economy, premium-economy, business, first")
	}
}

func (r *SearchRequest) validateDates(errs *ValidationErrors) {
	date, ok := validateDate("date", r.Date, true, errs)
	checkOut, checkOutOK := validateDate("checkOut", r.CheckOut, false, errs)

	if ok && checkOutOK && r.CheckOut != "" && !checkOut.After(date) {
		errs.Add("checkOut", "checkOut must be after date")
	}
}

func validateDate(field, value string, required bool, errs *ValidationErrors) (time.Time, bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
			return time.Time{}, false
		}
		return time.Time{}, true
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}

func (r *SearchRequest) validateTravellers(errs *ValidationErrors) {
	if r.Travellers < 0 {
		errs.Add("travellers", "travellers must be at least 1")
		return
	}
	if r.Travellers > domain.MaxTravellers {
		errs.Add("travellers", fmt.Sprintf("travellers cannot exceed %d", domain.MaxTravellers))
	}
}

func (r *SearchRequest) validateSortBy(vertical domain.Vertical, caps usecase.Capabilities, errs *ValidationErrors) {
	key, err := domain.ParseSortKey(r.SortBy)
	if err != nil {
		errs.Add("sortBy", fmt.Sprintf("unknown sort option %q", r.SortBy))
		return
	}
	if !caps.SupportsSort(key.Field) {
		errs.Add("sortBy", fmt.Sprintf("sortBy %q is not available for %s", r.SortBy, vertical))
	}
}

func (r *SearchRequest) validatePaging(paging PagingConfig, errs *ValidationErrors) {
	if r.Page < 0 {
		errs.Add("page", "page must be a non-negative number")
	}
	if r.PageSize < 0 {
		errs.Add("pageSize", "pageSize must be a positive number")
		return
	}
	if paging.MaxSize > 0 && r.PageSize > paging.MaxSize {
		errs.Add("pageSize", fmt.Sprintf("pageSize cannot exceed %d", paging.MaxSize))
	}
}

func (r *SearchRequest) validateFilters(vertical domain.Vertical, caps usecase.Capabilities, errs *ValidationErrors) {
	f := r.Filters
	if f == nil {
		return
	}

	if f.PriceRange != nil {
		validatePriceRange(f.PriceRange, errs)
	}

	axes := make([]string, 0, len(f.Categories))
	for axis := range f.Categories {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	for _, axis := range axes {
		if !caps.SupportsAxis(axis) {
			errs.Add("filters.categories."+axis,
				fmt.Sprintf("unknown filter %q for %s; available: %s", axis, vertical, strings.Join(caps.Axes, ", ")))
		}
	}

	if len(f.TimeSlots) > 0 {
		if !caps.TimeSlots {
			errs.Add("filters.timeSlots", fmt.Sprintf("time slot filter is not available for %s", vertical))
		}
		for i, slot := range f.TimeSlots {
			f.TimeSlots[i] = strings.ToLower(strings.TrimSpace(slot))
			if !domain.TimeSlot(f.TimeSlots[i]).IsValid() {
				errs.Add(fmt.Sprintf("filters.timeSlots[%d]", i),
					"time slot must be one of: early-morning, morning, afternoon, evening")
			}
		}
	}

	if len(f.Stops) > 0 {
		if !caps.Stops {
			errs.Add("filters.stops", fmt.Sprintf("stops filter is not available for %s", vertical))
		}
		for i, stop := range f.Stops {
			f.Stops[i] = strings.ToLower(strings.TrimSpace(stop))
			if !domain.StopCategory(f.Stops[i]).IsValid() {
				errs.Add(fmt.Sprintf("filters.stops[%d]", i), "stops must be one of: non-stop, 1-stop, 2+-stops")
			}
		}
	}

	if f.DurationRange != nil {
		if !caps.Duration {
			errs.Add("filters.durationRange", fmt.Sprintf("duration filter is not available for %s", vertical))
		}
		validateDurationRange(f.DurationRange, errs)
	}

	if f.MinRating != nil {
		if !caps.Rating {
			errs.Add("filters.minRating", fmt.Sprintf("rating filter is not available for %s", vertical))
		} else if *f.MinRating < 0 {
			errs.Add("filters.minRating", "minRating must be a non-negative number")
		}
	}
}

func validatePriceRange(pr *PriceRangeDTO, errs *ValidationErrors) {
	if pr.Min != nil && *pr.Min < 0 {
		errs.Add("filters.priceRange.min", "min must be a non-negative number")
	}
	if pr.Max != nil && *pr.Max < 0 {
		errs.Add("filters.priceRange.max", "max must be a non-negative number")
	}
	if pr.Min != nil && pr.Max != nil && *pr.Min >= 0 && *pr.Max >= 0 && *pr.Min > *pr.Max {
		errs.Add("filters.priceRange", "min must be less than or equal to max")
	}
}

func validateDurationRange(dr *DurationRangeDTO, errs *ValidationErrors) {
	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		errs.Add("filters.durationRange.minMinutes", "minMinutes must be a non-negative number")
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		errs.Add("filters.durationRange.maxMinutes", "maxMinutes must be a non-negative number")
	}
	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes >= 0 && *dr.MaxMinutes >= 0 && *dr.MinMinutes > *dr.MaxMinutes {
		errs.Add("filters.durationRange", "minMinutes must be less than or equal to maxMinutes")
	}
}
