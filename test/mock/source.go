// Package mock provides test doubles for the storefront search.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, panics, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripnest/storefront/internal/domain"
)

// Source is a configurable implementation of domain.Source for any item type.
// It supports configurable delays, errors and responses for testing
// timeouts, retries and partial failures.
type Source[T any] struct {
	name      string
	items     []T
	errs      []error
	delay     time.Duration
	panicMsg  string
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource[T any](name string) *Source[T] {
	return &Source[T]{name: name}
}

// WithItems configures the source to return the given items.
func (s *Source[T]) WithItems(items []T) *Source[T] {
	s.items = items
	return s
}

// WithError configures the source to fail every call with err.
func (s *Source[T]) WithError(err error) *Source[T] {
	s.errs = []error{err}
	return s
}

// WithErrorsThenItems fails the first len(errs) calls with errs in order,
// then returns the configured items.
func (s *Source[T]) WithErrorsThenItems(errs ...error) *Source[T] {
	s.errs = append(errs, nil)
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source[T]) WithDelay(d time.Duration) *Source[T] {
	s.delay = d
	return s
}

// WithPanic configures the source to panic on every call.
func (s *Source[T]) WithPanic(msg string) *Source[T] {
	s.panicMsg = msg
	return s
}

// Name returns the source's unique identifier.
func (s *Source[T]) Name() string {
	return s.name
}

// Fetch implements domain.Source.Fetch.
// It respects context cancellation, applies the configured delay,
// and returns the configured items or error.
func (s *Source[T]) Fetch(ctx context.Context, _ domain.SearchQuery) ([]T, error) {
	s.mu.Lock()
	call := s.callCount
	s.callCount++
	s.mu.Unlock()

	if s.panicMsg != "" {
		panic(s.panicMsg)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, domain.NewSourceError(s.name, ctx.Err())
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(s.name, err)
	}

	if err := s.errorFor(call); err != nil {
		return nil, err
	}

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

// errorFor returns the error configured for the call-th call.
// A single configured error applies to every call.
func (s *Source[T]) errorFor(call int) error {
	switch {
	case len(s.errs) == 0:
		return nil
	case len(s.errs) == 1:
		return s.errs[0]
	case call < len(s.errs):
		return s.errs[call]
	default:
		return nil
	}
}

// CallCount returns the number of times Fetch was called.
func (s *Source[T]) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Ensure Source implements domain.Source at compile time.
var _ domain.Source[domain.Flight] = (*Source[domain.Flight])(nil)

// airlines used by SampleFlights, by source name.
var airlines = map[string]domain.AirlineInfo{
	"skyfare": {Code: "6E", Name: "IndiGo"},
	"airhub":  {Code: "AI", Name: "Air India"},
	"jetlink": {Code: "QP", Name: "Akasa Air"},
}

// SampleFlights returns count DEL-BOM flights for source with realistic values.
// Departures are two hours apart from 06:00 IST and prices rise by ₹250 per flight.
func SampleFlights(source string, count int) []domain.Flight {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	base := time.Date(2026, 12, 15, 6, 0, 0, 0, ist)

	airline, ok := airlines[source]
	if !ok {
		airline = domain.AirlineInfo{Code: "XX", Name: "Unknown Airline"}
	}

	flights := make([]domain.Flight, count)
	for i := range flights {
		departure := base.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(2*time.Hour + 10*time.Minute)

		flights[i] = domain.Flight{
			ID:           fmt.Sprintf("%s-%d", source, i+1),
			FlightNumber: fmt.Sprintf("%s %d", airline.Code, 100+i),
			Airline:      airline,
			Departure: domain.Point{
				Code:     "DEL",
				Name:     "New Delhi (DEL)",
				Terminal: "3",
				DateTime: departure,
				Timezone: "Asia/Kolkata",
			},
			Arrival: domain.Point{
				Code:     "BOM",
				Name:     "Mumbai (BOM)",
				Terminal: "2",
				DateTime: arrival,
				Timezone: "Asia/Kolkata",
			},
			Duration: domain.NewDurationInfo(130),
			Price:    domain.NewPriceInfo(2000+float64(i*250), "INR"),
			Baggage: domain.BaggageInfo{
				CabinKg:   7,
				CheckedKg: 15,
			},
			Class:  "economy",
			Stops:  0,
			Source: source,
		}
	}

	return flights
}

// SampleHotels returns count Goa hotels for source, alternating resorts and hotels.
func SampleHotels(source string, count int) []domain.Hotel {
	hotels := make([]domain.Hotel, count)
	for i := range hotels {
		propertyType := "Hotel"
		if i%2 == 0 {
			propertyType = "Resort"
		}
		hotels[i] = domain.Hotel{
			ID:           fmt.Sprintf("%s-h%d", source, i+1),
			Name:         fmt.Sprintf("Goa Stay %d", i+1),
			City:         "Goa",
			PropertyType: propertyType,
			StarRating:   3 + i%3,
			GuestRating:  3.8 + float64(i%5)*0.2,
			Amenities:    []string{"Free WiFi", "Pool"},
			Price:        domain.NewPriceInfo(3000+float64(i*900), "INR"),
			Source:       source,
		}
	}
	return hotels
}
