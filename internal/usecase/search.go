package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/cache"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
	"github.com/tripnest/storefront/internal/infrastructure/retry"
	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

// Default timeout and cache values.
const (
	DefaultGlobalTimeout = 5 * time.Second
	DefaultSourceTimeout = 2 * time.Second
	DefaultCacheTTL      = 5 * time.Minute
)

// SearchUseCase defines the search operations of one vertical.
type SearchUseCase[T any] interface {
	// Search fetches the result set for query (from cache when possible) and returns
	// one filtered, sorted page of it together with facets and metadata.
	Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) (*domain.SearchResult[T], error)

	// Vertical returns the vertical this use case serves.
	Vertical() domain.Vertical

	// Capabilities reports the filter axes and sort fields the vertical supports.
	Capabilities() Capabilities
}

// Config contains configuration options for the search use case.
type Config struct {
	GlobalTimeout time.Duration
	SourceTimeout time.Duration

	// CacheTTL is how long a fetched result set is reused. Zero disables caching.
	CacheTTL time.Duration

	// Retry controls retries of retryable source errors
	Retry retry.Config

	Clock  timeutil.Clock
	Logger *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		SourceTimeout: DefaultSourceTimeout,
		CacheTTL:      DefaultCacheTTL,
		Retry:         retry.SourceConfig,
		Clock:         timeutil.NewRealClock(),
		Logger:        logger.Nop(),
	}
}

// searchUseCase implements SearchUseCase using the Scatter-Gather pattern.
type searchUseCase[T any] struct {
	vertical domain.Vertical
	sources  []domain.Source[T]
	engine   *Engine[T]
	cache    *cache.Cache[fetchResult[T]]
	cfg      Config
	log      *logger.Logger
}

// fetchResult is the gathered result set of one query across all sources.
type fetchResult[T any] struct {
	items   []T
	queried []string
	failed  []string
}

func cloneFetchResult[T any](r fetchResult[T]) fetchResult[T] {
	return fetchResult[T]{
		items:   append([]T(nil), r.items...),
		queried: append([]string(nil), r.queried...),
		failed:  append([]string(nil), r.failed...),
	}
}

// NewSearchUseCase creates a SearchUseCase for vertical over the given sources and engine.
// If config is nil, default values are used. Zero durations, retry settings, clock and logger
// fall back to defaults; a zero CacheTTL disables caching.
func NewSearchUseCase[T any](vertical domain.Vertical, sources []domain.Source[T], engine *Engine[T], config *Config) SearchUseCase[T] {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
		if config.CacheTTL >= 0 {
			cfg.CacheTTL = config.CacheTTL
		}
		if config.Retry.MaxAttempts > 0 {
			cfg.Retry = config.Retry
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	return &searchUseCase[T]{
		vertical: vertical,
		sources:  sources,
		engine:   engine,
		cache:    cache.NewWithClock(cloneFetchResult[T], cfg.Clock),
		cfg:      cfg,
		log:      cfg.Logger.WithVertical(string(vertical)),
	}
}

// logFor returns the request's logger tagged with the vertical, or the use case
// logger when ctx carries none.
func (uc *searchUseCase[T]) logFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.WithVertical(string(uc.vertical))
	}
	return uc.log
}

// sourceResult holds the result from a single source query.
type sourceResult[T any] struct {
	index int
	items []T
	err   error
}

func (uc *searchUseCase[T]) Vertical() domain.Vertical {
	return uc.vertical
}

func (uc *searchUseCase[T]) Capabilities() Capabilities {
	return uc.engine.Capabilities()
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase[T]) Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) (*domain.SearchResult[T], error) {
	start := uc.cfg.Clock.Now()

	if query.Vertical == "" {
		query.Vertical = uc.vertical
	}
	if query.Vertical != uc.vertical {
		return nil, fmt.Errorf("%w: query for %s sent to %s search", domain.ErrInvalidRequest, query.Vertical, uc.vertical)
	}
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := query.Key()
	fetched, cacheHit := uc.cache.Get(key)
	if !cacheHit {
		var err error
		fetched, err = uc.fetch(ctx, query)
		if err != nil {
			return nil, err
		}
		// Partial result sets are not cached so a recovered source is picked up on the next search
		if len(fetched.failed) == 0 {
			uc.cache.Set(key, fetched, uc.cfg.CacheTTL)
		}
	}

	sortKey := opts.SortKey
	if !sortKey.Field.IsValid() {
		sortKey = domain.DefaultSortKey()
	}
	if sortKey.Direction != domain.Descending {
		sortKey.Direction = domain.Ascending
	}

	page := uc.engine.Run(fetched.items, opts.Filters, sortKey, opts.Page)
	facets := uc.engine.Facets(fetched.items)

	result := domain.NewSearchResult(query, sortKey, page, facets, domain.SearchMetadata{
		TotalResults:   len(fetched.items),
		SourcesQueried: fetched.queried,
		SourcesFailed:  fetched.failed,
		SearchTimeMs:   timeutil.Since(uc.cfg.Clock, start).Milliseconds(),
		CacheHit:       cacheHit,
	})

	uc.logFor(ctx).Info().
		Str("query", key).
		Str("sort", sortKey.String()).
		Int("total", result.Metadata.TotalResults).
		Int("filtered", result.Metadata.FilteredResults).
		Int("returned", len(result.Page.Items)).
		Strs("sources_failed", result.Metadata.SourcesFailed).
		Bool("cache_hit", cacheHit).
		Int64("duration_ms", result.Metadata.SearchTimeMs).
		Msg("search completed")

	return &result, nil
}

// fetch queries every source concurrently and gathers their results in source order.
func (uc *searchUseCase[T]) fetch(ctx context.Context, query domain.SearchQuery) (fetchResult[T], error) {
	if len(uc.sources) == 0 {
		return fetchResult[T]{}, domain.ErrAllSourcesFailed
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	// Buffered so late sources never block after the gather loop gives up
	results := make(chan sourceResult[T], len(uc.sources))

	// Scatter: launch goroutines for each source
	for i, src := range uc.sources {
		go uc.querySource(ctx, i, src, query, results)
	}

	// Gather: collect results until every source answered or the global timeout fires
	perSource := make([][]T, len(uc.sources))
	answered := make([]bool, len(uc.sources))
	failed := make([]bool, len(uc.sources))

gather:
	for received := 0; received < len(uc.sources); received++ {
		select {
		case r := <-results:
			answered[r.index] = true
			if r.err != nil {
				failed[r.index] = true
				uc.logFor(ctx).Warn().
					Err(r.err).
					Str("source", uc.sources[r.index].Name()).
					Msg("source fetch failed")
				continue
			}
			perSource[r.index] = r.items
		case <-ctx.Done():
			break gather
		}
	}

	out := fetchResult[T]{
		queried: make([]string, 0, len(uc.sources)),
	}
	for i, src := range uc.sources {
		name := src.Name()
		out.queried = append(out.queried, name)
		if !answered[i] || failed[i] {
			out.failed = append(out.failed, name)
			continue
		}
		out.items = append(out.items, perSource[i]...)
	}

	if len(out.failed) == len(uc.sources) {
		if err := ctx.Err(); err != nil {
			return fetchResult[T]{}, fmt.Errorf("%w: %w", domain.ErrAllSourcesFailed, err)
		}
		return fetchResult[T]{}, domain.ErrAllSourcesFailed
	}

	if out.items == nil {
		out.items = []T{}
	}
	return out, nil
}

// querySource queries a single source with timeout, retry and panic recovery.
func (uc *searchUseCase[T]) querySource(ctx context.Context, index int, src domain.Source[T], query domain.SearchQuery, results chan<- sourceResult[T]) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SourceTimeout)
	defer cancel()

	name := src.Name()

	// Panic recovery to prevent one source from crashing the whole search
	defer func() {
		if r := recover(); r != nil {
			results <- sourceResult[T]{
				index: index,
				err:   domain.NewSourceError(name, fmt.Errorf("source panic: %v", r)),
			}
		}
	}()

	log := uc.logFor(ctx).WithSource(name)
	retryCfg := uc.cfg.Retry.
		WithRetryIf(domain.IsRetryable).
		WithOnRetry(func(attempt int, err error) {
			log.Debug().Err(err).Int("attempt", attempt).Msg("retrying source fetch")
		})

	items, err := retry.DoWithResult(ctx, func() ([]T, error) {
		return src.Fetch(ctx, query)
	}, retryCfg)

	results <- sourceResult[T]{index: index, items: items, err: err}
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase[domain.Flight] = (*searchUseCase[domain.Flight])(nil)
