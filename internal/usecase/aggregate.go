package usecase

import (
	"sort"

	"github.com/tripnest/storefront/internal/domain"
)

// MinPriceFor returns the lowest price among items matching predicate.
// A nil predicate matches every item. Items without a valid price are skipped.
// ok is false when nothing matched, so callers never see +Inf or NaN.
func (e *Engine[T]) MinPriceFor(items []T, predicate func(T) bool) (price float64, ok bool) {
	if e.acc.Price == nil {
		return 0, false
	}
	for _, item := range items {
		if predicate != nil && !predicate(item) {
			continue
		}
		p, valid := e.acc.Price(item)
		if !valid {
			continue
		}
		if !ok || p < price {
			price, ok = p, true
		}
	}
	return price, ok
}

// Facets lists every value seen on every category axis, with its item count and
// cheapest price. Axes are ordered by name and values by first appearance;
// values differing only in case are merged under the first spelling seen.
func (e *Engine[T]) Facets(items []T) []domain.Facet {
	axes := make([]string, 0, len(e.acc.Categories))
	for axis := range e.acc.Categories {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	facets := make([]domain.Facet, 0)
	for _, axis := range axes {
		facets = append(facets, e.axisFacets(items, axis)...)
	}
	return facets
}

// MinPriceByCategory returns the facets of a single axis, or nil when the
// engine has no accessor for it.
func (e *Engine[T]) MinPriceByCategory(items []T, axis string) []domain.Facet {
	return e.axisFacets(items, axis)
}

func (e *Engine[T]) axisFacets(items []T, axis string) []domain.Facet {
	accessor := e.acc.Categories[axis]
	if accessor == nil {
		return nil
	}

	var order []string
	display := make(map[string]string)
	counts := make(map[string]int)
	for _, item := range items {
		seen := make(map[string]struct{})
		for _, v := range accessor(item) {
			key := normalizeValue(v)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if _, known := display[key]; !known {
				display[key] = v
				order = append(order, key)
			}
			counts[key]++
		}
	}

	facets := make([]domain.Facet, 0, len(order))
	for _, key := range order {
		selected := map[string]struct{}{key: {}}
		facet := domain.Facet{
			Axis:  axis,
			Value: display[key],
			Count: counts[key],
		}
		if price, ok := e.MinPriceFor(items, func(item T) bool {
			return e.matchesAxis(item, axis, selected)
		}); ok {
			facet.MinPrice = &price
		}
		facets = append(facets, facet)
	}
	return facets
}
