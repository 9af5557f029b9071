// Package app wires the inventory, engines and search use cases of every vertical
// from configuration. It is shared by the HTTP server and the CLI.
package app

import (
	"fmt"

	storehttp "github.com/tripnest/storefront/internal/adapter/http"
	"github.com/tripnest/storefront/internal/adapter/inventory"
	"github.com/tripnest/storefront/internal/config"
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
	"github.com/tripnest/storefront/internal/infrastructure/retry"
	"github.com/tripnest/storefront/internal/usecase"
)

// Storefront holds one search use case per vertical.
type Storefront struct {
	Flights   usecase.SearchUseCase[domain.Flight]
	Hotels    usecase.SearchUseCase[domain.Hotel]
	Trains    usecase.SearchUseCase[domain.Train]
	Buses     usecase.SearchUseCase[domain.Bus]
	Cabs      usecase.SearchUseCase[domain.Cab]
	Homestays usecase.SearchUseCase[domain.Homestay]
	Insurance usecase.SearchUseCase[domain.InsurancePlan]
}

// New loads the embedded inventory and builds the search use case of every vertical.
func New(cfg *config.Config, log *logger.Logger) (*Storefront, error) {
	store, err := inventory.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return NewFromStore(store, cfg, log), nil
}

// NewFromStore builds the search use cases over an already loaded store.
func NewFromStore(store *inventory.Store, cfg *config.Config, log *logger.Logger) *Storefront {
	sourceOpts := []inventory.SourceOption{
		inventory.WithLatency(cfg.Inventory.Latency),
		inventory.WithRateLimit(cfg.Inventory.RateLimit, cfg.Inventory.RateBurst),
	}

	ucConfig := &usecase.Config{
		GlobalTimeout: cfg.Timeouts.GlobalSearch,
		SourceTimeout: cfg.Timeouts.PerSource,
		CacheTTL:      cfg.Search.CacheTTL,
		Retry:         retry.SourceConfig.WithMaxAttempts(cfg.Search.RetryMaxAttempts),
		Logger:        log,
	}

	locale := usecase.WithLocale(cfg.Search.Locale())

	return &Storefront{
		Flights: usecase.NewSearchUseCase(domain.VerticalFlights,
			store.FlightSources(sourceOpts...), usecase.NewEngine(usecase.FlightAccessors(), locale), ucConfig),
		Hotels: usecase.NewSearchUseCase(domain.VerticalHotels,
			store.HotelSources(sourceOpts...), usecase.NewEngine(usecase.HotelAccessors(), locale), ucConfig),
		Trains: usecase.NewSearchUseCase(domain.VerticalTrains,
			store.TrainSources(sourceOpts...), usecase.NewEngine(usecase.TrainAccessors(), locale), ucConfig),
		Buses: usecase.NewSearchUseCase(domain.VerticalBuses,
			store.BusSources(sourceOpts...), usecase.NewEngine(usecase.BusAccessors(), locale), ucConfig),
		Cabs: usecase.NewSearchUseCase(domain.VerticalCabs,
			store.CabSources(sourceOpts...), usecase.NewEngine(usecase.CabAccessors(), locale), ucConfig),
		Homestays: usecase.NewSearchUseCase(domain.VerticalHomestays,
			store.HomestaySources(sourceOpts...), usecase.NewEngine(usecase.HomestayAccessors(), locale), ucConfig),
		Insurance: usecase.NewSearchUseCase(domain.VerticalInsurance,
			store.InsuranceSources(sourceOpts...), usecase.NewEngine(usecase.InsuranceAccessors(), locale), ucConfig),
	}
}

// Register serves every vertical from h, in display order.
func (s *Storefront) Register(h *storehttp.Handler) {
	storehttp.Register(h, s.Flights)
	storehttp.Register(h, s.Hotels)
	storehttp.Register(h, s.Trains)
	storehttp.Register(h, s.Buses)
	storehttp.Register(h, s.Cabs)
	storehttp.Register(h, s.Homestays)
	storehttp.Register(h, s.Insurance)
}

// Capabilities reports what each vertical can filter and sort by, keyed by vertical.
func (s *Storefront) Capabilities() map[domain.Vertical]usecase.Capabilities {
	return map[domain.Vertical]usecase.Capabilities{
		domain.VerticalFlights:   s.Flights.Capabilities(),
		domain.VerticalHotels:    s.Hotels.Capabilities(),
		domain.VerticalTrains:    s.Trains.Capabilities(),
		domain.VerticalBuses:     s.Buses.Capabilities(),
		domain.VerticalCabs:      s.Cabs.Capabilities(),
		domain.VerticalHomestays: s.Homestays.Capabilities(),
		domain.VerticalInsurance: s.Insurance.Capabilities(),
	}
}
