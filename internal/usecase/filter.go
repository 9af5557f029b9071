package usecase

import (
	"strings"

	"github.com/tripnest/storefront/internal/domain"
)

// ApplyFilters returns the items that match every active criterion, in their original order.
//
// Behavior:
//   - nil or empty criteria keep every item
//   - an axis, slot list or stop list with no selected values is skipped
//   - an item whose field is missing fails only the criteria reading that field
//   - the input slice is never modified; the result is always a new slice
//   - O(n) in the number of items
func (e *Engine[T]) ApplyFilters(items []T, criteria *domain.FilterCriteria) []T {
	result := make([]T, 0, len(items))

	if criteria.IsEmpty() {
		return append(result, items...)
	}

	// Pre-build selection sets for O(1) lookup
	compiled := compileCriteria(criteria)

	for _, item := range items {
		if e.passesAllFilters(item, criteria, compiled) {
			result = append(result, item)
		}
	}

	return result
}

// compiledCriteria holds lookup sets built once per ApplyFilters call.
type compiledCriteria struct {
	categories map[string]map[string]struct{}
	slots      map[domain.TimeSlot]struct{}
	stops      map[domain.StopCategory]struct{}
}

func compileCriteria(c *domain.FilterCriteria) compiledCriteria {
	compiled := compiledCriteria{
		categories: make(map[string]map[string]struct{}, len(c.Categories)),
	}

	for axis, values := range c.Categories {
		if set := buildValueSet(values); len(set) > 0 {
			compiled.categories[axis] = set
		}
	}

	if len(c.TimeSlots) > 0 {
		compiled.slots = make(map[domain.TimeSlot]struct{}, len(c.TimeSlots))
		for _, s := range c.TimeSlots {
			compiled.slots[s] = struct{}{}
		}
	}

	if len(c.Stops) > 0 {
		compiled.stops = make(map[domain.StopCategory]struct{}, len(c.Stops))
		for _, s := range c.Stops {
			compiled.stops[s] = struct{}{}
		}
	}

	return compiled
}

// passesAllFilters checks if an item passes all filter criteria.
func (e *Engine[T]) passesAllFilters(item T, c *domain.FilterCriteria, compiled compiledCriteria) bool {
	// Price filter: min <= price <= max
	if c.PriceRange != nil {
		price, ok := readFloat(e.acc.Price, item)
		if !ok || !c.PriceRange.Contains(price) {
			return false
		}
	}

	// Category filters: AND across axes, OR within an axis
	for axis, selected := range compiled.categories {
		if !e.matchesAxis(item, axis, selected) {
			return false
		}
	}

	// Time slot filter on the primary time field
	if compiled.slots != nil {
		if e.acc.Time == nil {
			return false
		}
		t, ok := e.acc.Time(item)
		if !ok || t.IsZero() {
			return false
		}
		slot, ok := domain.TimeSlotForHour(t.Hour())
		if !ok {
			return false
		}
		if _, selected := compiled.slots[slot]; !selected {
			return false
		}
	}

	// Stops filter: stop count bucketed into non-stop / 1-stop / 2+-stops
	if compiled.stops != nil {
		stops, ok := readInt(e.acc.Stops, item)
		if !ok {
			return false
		}
		category, ok := domain.StopCategoryFor(stops)
		if !ok {
			return false
		}
		if _, selected := compiled.stops[category]; !selected {
			return false
		}
	}

	// Duration range filter
	if c.DurationRange != nil {
		minutes, ok := readInt(e.acc.Duration, item)
		if !ok || !c.DurationRange.Contains(minutes) {
			return false
		}
	}

	// Minimum rating filter
	if c.MinRating != nil {
		rating, ok := readFloat(e.acc.Rating, item)
		if !ok || rating < *c.MinRating {
			return false
		}
	}

	return true
}

// matchesAxis reports whether any of the item's values on axis is selected.
func (e *Engine[T]) matchesAxis(item T, axis string, selected map[string]struct{}) bool {
	accessor, ok := e.acc.Categories[axis]
	if !ok || accessor == nil {
		return false
	}
	for _, v := range accessor(item) {
		if _, hit := selected[normalizeValue(v)]; hit {
			return true
		}
	}
	return false
}

// buildValueSet creates a case-insensitive lookup set, skipping blank values.
func buildValueSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := normalizeValue(v)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func readFloat[T any](fn func(T) (float64, bool), item T) (float64, bool) {
	if fn == nil {
		return 0, false
	}
	return fn(item)
}

func readInt[T any](fn func(T) (int, bool), item T) (int, bool) {
	if fn == nil {
		return 0, false
	}
	return fn(item)
}
