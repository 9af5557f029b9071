package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tripnest/storefront/internal/domain"
)

// Source serves one partner's slice of a vertical's inventory.
type Source[T any] struct {
	name    string
	index   *index[T]
	latency time.Duration
	limiter *rate.Limiter
	match   func(domain.SearchQuery, T) bool
}

// SourceOption configures a Source.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	latency time.Duration
	limit   rate.Limit
	burst   int
}

// WithLatency delays every fetch by d, simulating a partner round trip.
func WithLatency(d time.Duration) SourceOption {
	return func(o *sourceOptions) {
		o.latency = d
	}
}

// WithRateLimit caps each source at perSecond fetches with the given burst.
// A non-positive perSecond disables limiting.
func WithRateLimit(perSecond float64, burst int) SourceOption {
	return func(o *sourceOptions) {
		if perSecond <= 0 {
			o.limit = 0
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limit = rate.Limit(perSecond)
		o.burst = burst
	}
}

func newSource[T any](name string, ix *index[T], match func(domain.SearchQuery, T) bool, opts ...SourceOption) *Source[T] {
	var o sourceOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Source[T]{name: name, index: ix, latency: o.latency, match: match}
	if o.limit > 0 {
		s.limiter = rate.NewLimiter(o.limit, o.burst)
	}
	return s
}

// Name returns the partner name from the fixtures.
func (s *Source[T]) Name() string {
	return s.name
}

// Fetch returns a copy of the items seeded under the query's lookup key
// that also satisfy the source's query match, if any.
// An unknown key yields an empty slice, not an error.
func (s *Source[T]) Fetch(ctx context.Context, query domain.SearchQuery) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(s.name, err)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, domain.NewSourceError(s.name, ctxErr)
			}
			return nil, domain.NewRetryableSourceError(s.name, fmt.Errorf("%w: rate limited: %v", domain.ErrSourceUnavailable, err))
		}
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, domain.NewSourceError(s.name, ctx.Err())
		case <-timer.C:
		}
	}

	items := s.index.lookup(s.name, LookupKey(query))
	if s.match == nil {
		return items, nil
	}

	kept := items[:0]
	for _, item := range items {
		if s.match(query, item) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// matchFlightClass keeps fares in the requested cabin. An empty class matches every cabin.
func matchFlightClass(q domain.SearchQuery, f domain.Flight) bool {
	return q.Class == "" || strings.EqualFold(q.Class, f.Class)
}

var _ domain.Source[domain.Flight] = (*Source[domain.Flight])(nil)
