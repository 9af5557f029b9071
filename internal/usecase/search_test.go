package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
	"github.com/tripnest/storefront/internal/infrastructure/retry"
	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

func flightQuery() domain.SearchQuery {
	return domain.SearchQuery{Origin: "DEL", Destination: "BOM", Date: "2026-12-15"}
}

func newMockSource(ctrl *gomock.Controller, name string) *domain.MockSource[domain.Flight] {
	src := domain.NewMockSource[domain.Flight](ctrl)
	src.EXPECT().Name().Return(name).AnyTimes()
	return src
}

// testConfig disables caching and retries unless a test turns them on.
func testConfig() *Config {
	return &Config{
		GlobalTimeout: time.Second,
		SourceTimeout: 500 * time.Millisecond,
		CacheTTL:      0,
		Retry:         retry.Config{MaxAttempts: 1},
		Logger:        logger.Nop(),
	}
}

func newFlightSearch(cfg *Config, sources ...domain.Source[domain.Flight]) SearchUseCase[domain.Flight] {
	return NewSearchUseCase(domain.VerticalFlights, sources, newFlightEngine(), cfg)
}

// blockUntilDone simulates a source that only returns once its context ends.
func blockUntilDone(ctx context.Context, _ domain.SearchQuery) ([]domain.Flight, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSearch_MergesSourcesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	flights := sampleFlights()

	skyfare := newMockSource(ctrl, "skyfare")
	skyfare.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(flights[:3], nil)
	airhub := newMockSource(ctrl, "airhub")
	airhub.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(flights[3:], nil)

	uc := newFlightSearch(testConfig(), skyfare, airhub)

	opts := DefaultSearchOptions()
	opts.SortKey = domain.SortKey{Field: domain.SortByDeparture}
	result, err := uc.Search(context.Background(), flightQuery(), opts)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Metadata.TotalResults)
	assert.Equal(t, 6, result.Metadata.FilteredResults)
	assert.Equal(t, []string{"skyfare", "airhub"}, result.Metadata.SourcesQueried)
	assert.Empty(t, result.Metadata.SourcesFailed)
	assert.False(t, result.Metadata.CacheHit)

	assert.Equal(t, domain.SortKey{Field: domain.SortByDeparture, Direction: domain.Ascending}, result.SortKey,
		"a missing direction defaults to ascending")
	assert.Equal(t, []string{"6E-2133", "IX-1144", "6E-5021", "SG-8169", "QP-1129", "AI-805"}, ids(result.Page.Items))

	assert.Equal(t, domain.VerticalFlights, result.Query.Vertical)
	assert.Equal(t, 1, result.Query.Travellers)
	assert.Empty(t, result.Query.Class)
}

func TestSearch_AppliesFiltersSortAndPage(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil)

	uc := newFlightSearch(testConfig(), src)

	result, err := uc.Search(context.Background(), flightQuery(), SearchOptions{
		Filters: &domain.FilterCriteria{Categories: map[string][]string{domain.AxisAirline: {"IndiGo"}}},
		SortKey: domain.SortKey{Field: domain.SortByPrice, Direction: domain.Descending},
		Page:    domain.PageRequest{Size: 1, Index: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"6E-5021"}, ids(result.Page.Items))
	assert.True(t, result.Page.HasMore)
	assert.Equal(t, 2, result.Page.Total)
	assert.Equal(t, 2, result.Metadata.FilteredResults)
	assert.Equal(t, 6, result.Metadata.TotalResults)

	// Facets describe the whole result set, not just the filtered view
	airlines := 0
	for _, f := range result.Facets {
		if f.Axis == domain.AxisAirline {
			airlines++
		}
	}
	assert.Equal(t, 5, airlines)
}

func TestSearch_InvalidSortFallsBackToBest(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil)

	uc := newFlightSearch(testConfig(), src)

	opts := DefaultSearchOptions()
	opts.SortKey = domain.SortKey{Field: "popularity", Direction: domain.Descending}
	result, err := uc.Search(context.Background(), flightQuery(), opts)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSortKey(), result.SortKey)
	assert.Equal(t, "6E-2133", result.Page.Items[0].ID)
}

func TestSearch_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	ok := newMockSource(ctrl, "skyfare")
	ok.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights()[:2], nil).Times(2)
	broken := newMockSource(ctrl, "airhub")
	broken.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("502 bad gateway")).Times(2)

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	uc := newFlightSearch(cfg, ok, broken)

	for range 2 {
		result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
		require.NoError(t, err)

		assert.Equal(t, 2, result.Metadata.TotalResults)
		assert.Equal(t, []string{"airhub"}, result.Metadata.SourcesFailed)
		assert.False(t, result.Metadata.CacheHit, "partial result sets are not cached")
	}
}

func TestSearch_EmptySourceIsNotAFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, nil)

	uc := newFlightSearch(testConfig(), src)

	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Zero(t, result.Metadata.TotalResults)
	assert.NotNil(t, result.Page.Items)
	assert.Empty(t, result.Page.Items)
	assert.Empty(t, result.Metadata.SourcesFailed)
}

func TestSearch_AllSourcesFail(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newMockSource(ctrl, "skyfare")
	a.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	b := newMockSource(ctrl, "airhub")
	b.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	uc := newFlightSearch(testConfig(), a, b)

	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAllSourcesFailed)
}

func TestSearch_NoSources(t *testing.T) {
	uc := newFlightSearch(testConfig())

	_, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	assert.ErrorIs(t, err, domain.ErrAllSourcesFailed)
}

func TestSearch_SourceTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	fast := newMockSource(ctrl, "skyfare")
	fast.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights()[:1], nil)
	slow := newMockSource(ctrl, "airhub")
	slow.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDone)

	cfg := testConfig()
	cfg.SourceTimeout = 20 * time.Millisecond
	uc := newFlightSearch(cfg, fast, slow)

	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Metadata.TotalResults)
	assert.Equal(t, []string{"airhub"}, result.Metadata.SourcesFailed)
}

func TestSearch_GlobalTimeoutStopsWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	fast := newMockSource(ctrl, "skyfare")
	fast.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights()[:2], nil)
	hung := newMockSource(ctrl, "airhub")
	hung.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.SearchQuery) ([]domain.Flight, error) {
			<-release
			return nil, nil
		})

	cfg := testConfig()
	cfg.GlobalTimeout = 30 * time.Millisecond
	cfg.SourceTimeout = time.Minute
	uc := newFlightSearch(cfg, fast, hung)

	start := time.Now()
	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 2, result.Metadata.TotalResults)
	assert.Equal(t, []string{"airhub"}, result.Metadata.SourcesFailed)
}

func TestSearch_GlobalTimeoutWithNoAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDone)

	cfg := testConfig()
	cfg.GlobalTimeout = 20 * time.Millisecond
	cfg.SourceTimeout = time.Minute
	uc := newFlightSearch(cfg, src)

	_, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	assert.ErrorIs(t, err, domain.ErrAllSourcesFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearch_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil).AnyTimes()

	uc := newFlightSearch(testConfig(), src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Search(ctx, flightQuery(), DefaultSearchOptions())
	assert.ErrorIs(t, err, domain.ErrAllSourcesFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_RecoversFromSourcePanic(t *testing.T) {
	ctrl := gomock.NewController(t)

	bad := newMockSource(ctrl, "skyfare")
	bad.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.SearchQuery) ([]domain.Flight, error) {
			panic("nil map write")
		})
	good := newMockSource(ctrl, "airhub")
	good.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights()[:3], nil)

	uc := newFlightSearch(testConfig(), bad, good)

	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Metadata.TotalResults)
	assert.Equal(t, []string{"skyfare"}, result.Metadata.SourcesFailed)
}

func TestSearch_RetriesRetryableErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	gomock.InOrder(
		src.EXPECT().Fetch(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewRetryableSourceError("skyfare", domain.ErrSourceUnavailable)),
		src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil),
	)

	cfg := testConfig()
	cfg.Retry = retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, Multiplier: 2}
	uc := newFlightSearch(cfg, src)

	result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, 6, result.Metadata.TotalResults)
	assert.Empty(t, result.Metadata.SourcesFailed)
}

func TestSearch_DoesNotRetryPermanentErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewSourceError("skyfare", errors.New("malformed payload"))).
		Times(1)

	cfg := testConfig()
	cfg.Retry = retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond}
	uc := newFlightSearch(cfg, src)

	_, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	assert.ErrorIs(t, err, domain.ErrAllSourcesFailed)
}

func TestSearch_CachesResultSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := timeutil.NewMockClockFromString("2026-12-01T10:00:00Z")

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil).Times(2)

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	cfg.Clock = clock
	uc := newFlightSearch(cfg, src)

	first, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)

	// A different view over the same query is served from the cached set
	opts := DefaultSearchOptions()
	opts.Filters = &domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsNonStop}}
	second, err := uc.Search(context.Background(), flightQuery(), opts)
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, 4, second.Metadata.FilteredResults)
	assert.Equal(t, []string{"skyfare"}, second.Metadata.SourcesQueried)

	clock.Advance(2 * time.Minute)

	third, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.False(t, third.Metadata.CacheHit, "expired entries are fetched again")
}

func TestSearch_ExpiredResultSetsAreSwept(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := timeutil.NewMockClockFromString("2026-12-01T10:00:00Z")

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil).AnyTimes()

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	cfg.Clock = clock
	uc := newFlightSearch(cfg, src).(*searchUseCase[domain.Flight])

	destinations := []string{"BOM", "BLR", "MAA", "CCU", "HYD", "GOI", "COK", "PNQ", "JAI", "AMD"}
	for _, dest := range destinations {
		q := flightQuery()
		q.Destination = dest
		_, err := uc.Search(context.Background(), q, DefaultSearchOptions())
		require.NoError(t, err)
	}
	require.Equal(t, len(destinations), uc.cache.Len())

	clock.Advance(24 * time.Hour)
	_, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, uc.cache.Len(), "result sets nobody reads again are dropped")
}

func TestSearch_CacheDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil).Times(2)

	uc := newFlightSearch(testConfig(), src)

	for range 2 {
		result, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
		require.NoError(t, err)
		assert.False(t, result.Metadata.CacheHit)
	}
}

func TestSearch_CachedItemsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := newMockSource(ctrl, "skyfare")
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil).Times(1)

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	uc := newFlightSearch(cfg, src)

	first, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)
	require.NotEmpty(t, first.Page.Items)
	first.Page.Items[0].Price.Amount = 1

	second, err := uc.Search(context.Background(), flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.Equal(t, 1703.0, second.Page.Items[0].Price.Amount)
}

func TestSearch_CacheKeyIgnoresCase(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := domain.NewMockSource[domain.Hotel](ctrl)
	src.EXPECT().Name().Return("staybook").AnyTimes()
	src.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return([]domain.Hotel{testHotel("taj", "Taj Fort Aguada", 18500, 4.7, 5)}, nil).
		Times(1)

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	uc := NewSearchUseCase(domain.VerticalHotels, []domain.Source[domain.Hotel]{src}, newHotelEngine(), cfg)

	_, err := uc.Search(context.Background(), domain.SearchQuery{City: "Goa", Date: "2026-12-20"}, DefaultSearchOptions())
	require.NoError(t, err)

	result, err := uc.Search(context.Background(), domain.SearchQuery{City: " goa ", Date: "2026-12-20"}, DefaultSearchOptions())
	require.NoError(t, err)
	assert.True(t, result.Metadata.CacheHit)
}

func TestSearch_RejectsInvalidQueries(t *testing.T) {
	tests := []struct {
		name  string
		query domain.SearchQuery
	}{
		{name: "query for another vertical", query: domain.SearchQuery{Vertical: domain.VerticalHotels, City: "Goa", Date: "2026-12-20"}},
		{name: "missing origin", query: domain.SearchQuery{Destination: "BOM", Date: "2026-12-15"}},
		{name: "bad date", query: domain.SearchQuery{Origin: "DEL", Destination: "BOM", Date: "15/12/2026"}},
		{name: "too many travellers", query: domain.SearchQuery{Origin: "DEL", Destination: "BOM", Date: "2026-12-15", Travellers: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src := newMockSource(ctrl, "skyfare")

			uc := newFlightSearch(testConfig(), src)

			result, err := uc.Search(context.Background(), tt.query, DefaultSearchOptions())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestSearchUseCase_Describes(t *testing.T) {
	uc := newFlightSearch(nil)

	assert.Equal(t, domain.VerticalFlights, uc.Vertical())
	assert.Equal(t, newFlightEngine().Capabilities(), uc.Capabilities())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultGlobalTimeout, cfg.GlobalTimeout)
	assert.Equal(t, DefaultSourceTimeout, cfg.SourceTimeout)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, retry.SourceConfig.MaxAttempts, cfg.Retry.MaxAttempts)
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.Logger)
}

func TestSearch_LogsThroughRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)

	up := newMockSource(ctrl, "skyfare")
	up.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(sampleFlights(), nil)
	down := newMockSource(ctrl, "airhub")
	down.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	var buf bytes.Buffer
	reqLog := logger.NewWithOutput(logger.Config{Level: "info", Format: "json"}, &buf).WithRequestID("req-7")
	ctx := reqLog.IntoContext(context.Background())

	_, err := newFlightSearch(testConfig(), up, down).Search(ctx, flightQuery(), DefaultSearchOptions())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"request_id":"req-7"`)
		assert.Contains(t, line, `"vertical":"flights"`)
	}
	assert.Contains(t, lines[0], "source fetch failed")
	assert.Contains(t, lines[0], `"source":"airhub"`)
	assert.Contains(t, lines[1], "search completed")
}
