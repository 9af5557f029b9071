// Package usecase contains the business logic of the storefront: the result
// filter/sort/page engine and the per-vertical search service built on it.
package usecase

import (
	"sort"
	"time"

	"golang.org/x/text/language"

	"github.com/tripnest/storefront/internal/domain"
)

// Accessors maps the fields the engine needs onto one item type.
// Every accessor returns ok=false when the item's field is missing or malformed;
// such an item fails only the criteria and sort keys that read that field.
// A nil accessor means the vertical has no such field.
type Accessors[T any] struct {
	// Price returns the amount compared by price filters, sorting and facets
	Price func(T) (float64, bool)

	// Categories maps each multi-select axis to the item's values on that axis
	Categories map[string]func(T) []string

	// Time returns the primary time field (departure or pickup) in the item's local timezone
	Time func(T) (time.Time, bool)

	// Stops returns the stop or halt count
	Stops func(T) (int, bool)

	// Duration returns the total duration in minutes
	Duration func(T) (int, bool)

	// Rating returns the guest, star or operator rating
	Rating func(T) (float64, bool)

	// Name returns the display name used by the name sort
	Name func(T) (string, bool)
}

// Engine filters, sorts and pages result sets of one item type.
// It holds no mutable state and never modifies the slices it is given,
// so one Engine may be shared by concurrent requests.
type Engine[T any] struct {
	acc    Accessors[T]
	locale language.Tag
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	locale language.Tag
}

// WithLocale sets the collation locale used by the name sort.
func WithLocale(tag language.Tag) Option {
	return func(o *engineOptions) {
		o.locale = tag
	}
}

// NewEngine creates an Engine over the given accessors.
// The name sort collates in English unless WithLocale is given.
func NewEngine[T any](acc Accessors[T], opts ...Option) *Engine[T] {
	o := engineOptions{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T]{acc: acc, locale: o.locale}
}

// Run filters, sorts and pages items in one call.
func (e *Engine[T]) Run(items []T, criteria *domain.FilterCriteria, key domain.SortKey, page domain.PageRequest) domain.Page[T] {
	filtered := e.ApplyFilters(items, criteria)
	sorted := e.ApplySort(filtered, key)
	return Paginate(sorted, page)
}

// Capabilities describes which criteria and sort fields an engine can serve.
type Capabilities struct {
	Axes       []string           `json:"axes"`
	TimeSlots  bool               `json:"timeSlots"`
	Stops      bool               `json:"stops"`
	Duration   bool               `json:"duration"`
	Rating     bool               `json:"rating"`
	SortFields []domain.SortField `json:"sortFields"`
}

// Capabilities reports the criteria and sort fields backed by accessors.
func (e *Engine[T]) Capabilities() Capabilities {
	axes := make([]string, 0, len(e.acc.Categories))
	for axis := range e.acc.Categories {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	fields := []domain.SortField{domain.SortByBestValue}
	if e.acc.Price != nil {
		fields = append(fields, domain.SortByPrice)
	}
	if e.acc.Duration != nil {
		fields = append(fields, domain.SortByDuration)
	}
	if e.acc.Time != nil {
		fields = append(fields, domain.SortByDeparture)
	}
	if e.acc.Rating != nil {
		fields = append(fields, domain.SortByRating)
	}
	if e.acc.Name != nil {
		fields = append(fields, domain.SortByName)
	}

	return Capabilities{
		Axes:       axes,
		TimeSlots:  e.acc.Time != nil,
		Stops:      e.acc.Stops != nil,
		Duration:   e.acc.Duration != nil,
		Rating:     e.acc.Rating != nil,
		SortFields: fields,
	}
}

// SupportsAxis reports whether the engine has a category accessor for axis.
func (c Capabilities) SupportsAxis(axis string) bool {
	for _, a := range c.Axes {
		if a == axis {
			return true
		}
	}
	return false
}

// SupportsSort reports whether the engine can order by field.
func (c Capabilities) SupportsSort(field domain.SortField) bool {
	for _, f := range c.SortFields {
		if f == field {
			return true
		}
	}
	return false
}
