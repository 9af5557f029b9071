package usecase

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"

	"github.com/tripnest/storefront/internal/domain"
)

// Ranking algorithm weights.
// These weights determine the importance of each factor in the best-value score.
// The sum of weights equals 1.0 for normalized scoring.
const (
	// weightPrice is the weight for price in ranking calculation.
	weightPrice = 0.5

	// weightDuration is the weight for total duration in ranking calculation.
	weightDuration = 0.3

	// weightStops is the weight for number of stops in ranking calculation.
	weightStops = 0.2
)

// sortEntry pairs an item with its extracted sort value.
type sortEntry[T any] struct {
	item T
	num  float64
	text string
	ok   bool
}

// ApplySort returns a new slice ordered by key. The input slice is never modified.
//
// Sort fields:
//   - best: ascending by weighted score (lower = better value)
//   - price, duration, rating: numeric, ascending a-b or descending b-a
//   - departure: by primary time field
//   - name: locale-aware collation
//
// Items with equal keys keep their original relative order. Items missing the sort
// field are placed after all items that have it, also in original order.
// An invalid field falls back to best value; an invalid direction falls back to ascending.
func (e *Engine[T]) ApplySort(items []T, key domain.SortKey) []T {
	result := make([]T, len(items))
	copy(result, items)

	if len(result) <= 1 {
		return result
	}

	if !key.Field.IsValid() {
		key = domain.DefaultSortKey()
	}
	descending := key.Direction == domain.Descending

	entries := e.extractSortValues(result, key.Field)

	var compareValues func(a, b sortEntry[T]) int
	if key.Field == domain.SortByName {
		collator := collate.New(e.locale, collate.IgnoreCase)
		compareValues = func(a, b sortEntry[T]) int {
			return collator.CompareString(a.text, b.text)
		}
	} else {
		compareValues = func(a, b sortEntry[T]) int {
			return cmp.Compare(a.num, b.num)
		}
	}

	slices.SortStableFunc(entries, func(a, b sortEntry[T]) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		c := compareValues(a, b)
		if descending {
			return -c
		}
		return c
	})

	for i := range entries {
		result[i] = entries[i].item
	}
	return result
}

// extractSortValues reads the sort field of every item once.
func (e *Engine[T]) extractSortValues(items []T, field domain.SortField) []sortEntry[T] {
	entries := make([]sortEntry[T], len(items))

	if field == domain.SortByBestValue {
		scores, valid := e.CalculateRankingScores(items)
		for i, item := range items {
			entries[i] = sortEntry[T]{item: item, num: scores[i], ok: valid[i]}
		}
		return entries
	}

	for i, item := range items {
		entry := sortEntry[T]{item: item}
		switch field {
		case domain.SortByPrice:
			entry.num, entry.ok = readFloat(e.acc.Price, item)
		case domain.SortByDuration:
			var minutes int
			minutes, entry.ok = readInt(e.acc.Duration, item)
			entry.num = float64(minutes)
		case domain.SortByDeparture:
			if e.acc.Time != nil {
				t, ok := e.acc.Time(item)
				entry.ok = ok && !t.IsZero()
				entry.num = float64(t.UnixMilli())
			}
		case domain.SortByRating:
			entry.num, entry.ok = readFloat(e.acc.Rating, item)
		case domain.SortByName:
			if e.acc.Name != nil {
				entry.text, entry.ok = e.acc.Name(item)
			}
		}
		entries[i] = entry
	}
	return entries
}

// CalculateRankingScores calculates a best-value score for each item using a weighted formula.
//
// The ranking algorithm uses normalization to ensure fair comparison across different value ranges:
//
//	Score = (0.5 × NormalizedPrice) + (0.3 × NormalizedDuration) + (0.2 × NormalizedStops)
//
// Where normalized values are in the range [0, 1]:
//   - 0 = best (lowest price, shortest duration, fewest stops)
//   - 1 = worst (highest price, longest duration, most stops)
//
// Lower score = better value. Verticals without a duration or stop count score on the
// remaining factors. An item missing its duration or stop count scores 1 on that factor;
// an item without a valid price has no score (valid[i] is false).
// Items are not modified; scores are returned by index.
func (e *Engine[T]) CalculateRankingScores(items []T) (scores []float64, valid []bool) {
	scores = make([]float64, len(items))
	valid = make([]bool, len(items))
	if len(items) == 0 {
		return scores, valid
	}

	durationOf := intAsFloat(e.acc.Duration)
	stopsOf := intAsFloat(e.acc.Stops)

	priceRange := findRange(items, e.acc.Price)
	durationRange := findRange(items, durationOf)
	stopsRange := findRange(items, stopsOf)

	for i, item := range items {
		price, ok := readFloat(e.acc.Price, item)
		if !ok {
			continue
		}
		valid[i] = true

		score := weightPrice * priceRange.normalize(price)
		if durationOf != nil {
			score += weightDuration * normalizeField(durationRange, item, durationOf)
		}
		if stopsOf != nil {
			score += weightStops * normalizeField(stopsRange, item, stopsOf)
		}
		scores[i] = score
	}

	return scores, valid
}

// valueRange is the observed min/max of one numeric field.
type valueRange struct {
	min, max float64
	seen     bool
}

// normalize maps a value to [0, 1] based on min and max.
// Returns 0 when min == max (all values equal = all optimal).
func (r valueRange) normalize(value float64) float64 {
	if !r.seen || r.max == r.min {
		return 0
	}
	return (value - r.min) / (r.max - r.min)
}

// normalizeField normalizes the item's field, treating a missing value as worst.
func normalizeField[T any](r valueRange, item T, fn func(T) (float64, bool)) float64 {
	v, ok := fn(item)
	if !ok {
		return 1
	}
	return r.normalize(v)
}

func findRange[T any](items []T, fn func(T) (float64, bool)) valueRange {
	var r valueRange
	if fn == nil {
		return r
	}
	for _, item := range items {
		v, ok := fn(item)
		if !ok {
			continue
		}
		if !r.seen {
			r.min, r.max, r.seen = v, v, true
			continue
		}
		r.min = min(r.min, v)
		r.max = max(r.max, v)
	}
	return r
}

func intAsFloat[T any](fn func(T) (int, bool)) func(T) (float64, bool) {
	if fn == nil {
		return nil
	}
	return func(item T) (float64, bool) {
		v, ok := fn(item)
		return float64(v), ok
	}
}
