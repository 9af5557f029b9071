package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SearchQuery defines what to fetch for one vertical.
// Transport verticals use Origin/Destination/Date, stays use City/Date/CheckOut,
// insurance uses Destination/Date.
type SearchQuery struct {
	// Vertical selects the product line being searched
	Vertical Vertical `json:"vertical"`

	// Origin is the departure airport, station or city (transport only)
	Origin string `json:"origin,omitempty"`

	// Destination is the arrival place (transport) or trip destination (insurance)
	Destination string `json:"destination,omitempty"`

	// City is the stay location (hotels and homestays)
	City string `json:"city,omitempty"`

	// Date is the travel, pickup, check-in or trip start date in YYYY-MM-DD format
	Date string `json:"date"`

	// CheckOut is the optional check-out date for stays in YYYY-MM-DD format
	CheckOut string `json:"checkOut,omitempty"`

	// Travellers is the number of passengers, guests or insured travellers (default: 1)
	Travellers int `json:"travellers"`

	// Class is the optional flight cabin class
	Class string `json:"class,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validFlightClasses defines the allowed cabin classes.
var validFlightClasses = map[string]bool{
	"economy":         true,
	"premium-economy": true,
	"business":        true,
	"first":           true,
}

// MaxTravellers caps the party size accepted by every vertical.
const MaxTravellers = 9

// Validate checks if the query is valid for its vertical.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *SearchQuery) Validate() error {
	if !q.Vertical.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidRequest, ErrUnknownVertical, q.Vertical)
	}

	switch {
	case q.Vertical == VerticalFlights:
		if err := q.validateAirports(); err != nil {
			return err
		}
	case q.Vertical.IsTransport():
		if err := q.validatePlaces(); err != nil {
			return err
		}
	case q.Vertical.IsStay():
		if strings.TrimSpace(q.City) == "" {
			return fmt.Errorf("%w: city is required", ErrInvalidRequest)
		}
	case q.Vertical == VerticalInsurance:
		if strings.TrimSpace(q.Destination) == "" {
			return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
		}
	}

	date, err := parseQueryDate("date", q.Date)
	if err != nil {
		return err
	}

	if q.CheckOut != "" {
		checkOut, err := parseQueryDate("checkOut", q.CheckOut)
		if err != nil {
			return err
		}
		if !checkOut.After(date) {
			return fmt.Errorf("%w: checkOut must be after date", ErrInvalidRequest)
		}
	}

	if q.Travellers < 1 {
		return fmt.Errorf("%w: travellers must be at least 1", ErrInvalidRequest)
	}
	if q.Travellers > MaxTravellers {
		return fmt.Errorf("%w: travellers cannot exceed %d", ErrInvalidRequest, MaxTravellers)
	}

	if q.Class != "" && q.Vertical == VerticalFlights && !validFlightClasses[q.Class] {
		return fmt.Errorf("%w: class must be one of: economy, premium-economy, business, first; got %q", ErrInvalidRequest, q.Class)
	}

	return nil
}

func (q *SearchQuery) validateAirports() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	return nil
}

func (q *SearchQuery) validatePlaces() error {
	if strings.TrimSpace(q.Origin) == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(q.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if strings.EqualFold(strings.TrimSpace(q.Origin), strings.TrimSpace(q.Destination)) {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	return nil
}

func parseQueryDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// SetDefaults applies default values to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	if q.Travellers == 0 {
		q.Travellers = 1
	}
}

// Key returns a normalized identity for the query, used for cache and inventory lookups.
// Queries differing only in letter case or surrounding spaces share a key.
func (q *SearchQuery) Key() string {
	parts := []string{
		string(q.Vertical),
		strings.ToLower(strings.TrimSpace(q.Origin)),
		strings.ToLower(strings.TrimSpace(q.Destination)),
		strings.ToLower(strings.TrimSpace(q.City)),
		q.Date,
		q.CheckOut,
		strconv.Itoa(q.Travellers),
		strings.ToLower(q.Class),
	}
	return strings.Join(parts, "|")
}
