package domain

import (
	"fmt"
	"strings"
)

// FilterCriteria defines the user-selected filters applied to a result set.
// Criteria are conjunctive across fields; values inside one multi-select field are alternatives.
// A nil pointer or an empty slice/map disables that criterion.
type FilterCriteria struct {
	// PriceRange keeps items whose price lies within the inclusive bounds
	PriceRange *PriceRange `json:"priceRange,omitempty"`

	// Categories maps a category axis (e.g. "airline", "busType") to the selected values.
	// An axis with no selected values does not filter.
	Categories map[string][]string `json:"categories,omitempty"`

	// TimeSlots keeps items whose primary time field falls in one of the selected slots
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`

	// Stops keeps items whose stop or halt count maps to one of the selected categories
	Stops []StopCategory `json:"stops,omitempty"`

	// DurationRange filters items by total duration in minutes
	DurationRange *DurationRange `json:"durationRange,omitempty"`

	// MinRating keeps items rated at or above this value
	MinRating *float64 `json:"minRating,omitempty"`
}

// IsEmpty reports whether no criterion is active.
func (f *FilterCriteria) IsEmpty() bool {
	if f == nil {
		return true
	}
	for _, values := range f.Categories {
		if len(values) > 0 {
			return false
		}
	}
	return f.PriceRange == nil &&
		len(f.TimeSlots) == 0 &&
		len(f.Stops) == 0 &&
		f.DurationRange == nil &&
		f.MinRating == nil
}

// PriceRange represents an inclusive price window. Either bound may be omitted.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// IsValid checks that bounds are non-negative and ordered.
func (pr *PriceRange) IsValid() bool {
	if pr == nil {
		return true
	}
	if pr.Min != nil && *pr.Min < 0 {
		return false
	}
	if pr.Max != nil && *pr.Max < 0 {
		return false
	}
	if pr.Min != nil && pr.Max != nil && *pr.Min > *pr.Max {
		return false
	}
	return true
}

// Contains checks if a price falls within the range.
func (pr *PriceRange) Contains(amount float64) bool {
	if pr == nil {
		return true
	}
	if pr.Min != nil && amount < *pr.Min {
		return false
	}
	if pr.Max != nil && amount > *pr.Max {
		return false
	}
	return true
}

// DurationRange represents a duration range filter.
type DurationRange struct {
	// MinMinutes is the minimum acceptable duration in minutes (inclusive)
	MinMinutes *int `json:"minMinutes,omitempty"`

	// MaxMinutes is the maximum acceptable duration in minutes (inclusive)
	MaxMinutes *int `json:"maxMinutes,omitempty"`
}

// IsValid checks if the duration range is valid.
// Returns false if min > max, or if any values are negative.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}

	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}

	if dr.MinMinutes != nil && dr.MaxMinutes != nil {
		if *dr.MinMinutes > *dr.MaxMinutes {
			return false
		}
	}

	return true
}

// Contains checks if a given duration (in minutes) falls within the range.
func (dr *DurationRange) Contains(durationMinutes int) bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && durationMinutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && durationMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// TimeSlot is a coarse bucket of the day used by departure and pickup filters.
type TimeSlot string

// Time slots, by local hour: early-morning [0,6), morning [6,12), afternoon [12,18), evening [18,24).
const (
	SlotEarlyMorning TimeSlot = "early-morning"
	SlotMorning      TimeSlot = "morning"
	SlotAfternoon    TimeSlot = "afternoon"
	SlotEvening      TimeSlot = "evening"
)

// IsValid checks if the slot is a known value.
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotEarlyMorning, SlotMorning, SlotAfternoon, SlotEvening:
		return true
	default:
		return false
	}
}

// TimeSlotForHour buckets an hour of the day. Hours outside [0,24) have no slot.
func TimeSlotForHour(hour int) (TimeSlot, bool) {
	switch {
	case hour < 0 || hour >= 24:
		return "", false
	case hour < 6:
		return SlotEarlyMorning, true
	case hour < 12:
		return SlotMorning, true
	case hour < 18:
		return SlotAfternoon, true
	default:
		return SlotEvening, true
	}
}

// StopCategory buckets a stop or halt count.
type StopCategory string

// Stop categories. Every count of two or more falls in StopsTwoPlus.
const (
	StopsNonStop StopCategory = "non-stop"
	StopsOne     StopCategory = "1-stop"
	StopsTwoPlus StopCategory = "2+-stops"
)

// IsValid checks if the category is a known value.
func (c StopCategory) IsValid() bool {
	switch c {
	case StopsNonStop, StopsOne, StopsTwoPlus:
		return true
	default:
		return false
	}
}

// StopCategoryFor buckets a stop count. Negative counts have no category.
func StopCategoryFor(stops int) (StopCategory, bool) {
	switch {
	case stops < 0:
		return "", false
	case stops == 0:
		return StopsNonStop, true
	case stops == 1:
		return StopsOne, true
	default:
		return StopsTwoPlus, true
	}
}

// SortField names the value a result set is ordered by.
type SortField string

// Available sort fields.
const (
	// SortByBestValue sorts by the weighted price/duration/stops score (default)
	SortByBestValue SortField = "best"

	// SortByPrice sorts by price
	SortByPrice SortField = "price"

	// SortByDuration sorts by total duration
	SortByDuration SortField = "duration"

	// SortByDeparture sorts by departure or pickup time
	SortByDeparture SortField = "departure"

	// SortByRating sorts by star, guest or operator rating
	SortByRating SortField = "rating"

	// SortByName sorts by display name using locale-aware collation
	SortByName SortField = "name"
)

// IsValid checks if the sort field is a valid value.
func (f SortField) IsValid() bool {
	switch f {
	case SortByBestValue, SortByPrice, SortByDuration, SortByDeparture, SortByRating, SortByName:
		return true
	default:
		return false
	}
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortKey is a (field, direction) pair. Equal keys keep their original relative order.
type SortKey struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortKey returns the best-value ordering.
func DefaultSortKey() SortKey {
	return SortKey{Field: SortByBestValue, Direction: Ascending}
}

// String renders the key in "field:direction" form.
func (k SortKey) String() string {
	return string(k.Field) + ":" + string(k.Direction)
}

// sortTokens maps the storefront's sort dropdown values to keys.
var sortTokens = map[string]SortKey{
	"best":                 {SortByBestValue, Ascending},
	"best_value":           {SortByBestValue, Ascending},
	"recommended":          {SortByBestValue, Ascending},
	"price":                {SortByPrice, Ascending},
	"price-low-high":       {SortByPrice, Ascending},
	"price-high-low":       {SortByPrice, Descending},
	"duration":             {SortByDuration, Ascending},
	"duration-short-long":  {SortByDuration, Ascending},
	"departure":            {SortByDeparture, Ascending},
	"departure-early-late": {SortByDeparture, Ascending},
	"rating":               {SortByRating, Descending},
	"rating-high-low":      {SortByRating, Descending},
	"name":                 {SortByName, Ascending},
	"name-a-z":             {SortByName, Ascending},
}

// ParseSortKey converts a sort token to a SortKey.
// Accepts the dropdown tokens above and the generic "field:asc" / "field:desc" form.
// An empty string yields DefaultSortKey.
func ParseSortKey(s string) (SortKey, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return DefaultSortKey(), nil
	}

	if key, ok := sortTokens[token]; ok {
		return key, nil
	}

	field, dir, found := strings.Cut(token, ":")
	if found {
		key := SortKey{Field: SortField(field), Direction: SortDirection(dir)}
		if key.Field.IsValid() && (key.Direction == Ascending || key.Direction == Descending) {
			return key, nil
		}
	}

	return SortKey{}, fmt.Errorf("%w: unknown sort option %q", ErrInvalidRequest, s)
}
