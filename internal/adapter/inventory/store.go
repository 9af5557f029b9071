// Package inventory serves mock travel inventory from embedded JSON fixtures.
// Fixtures are normalized once at startup into exact-match lookup maps, one per
// vertical, and exposed as domain.Source implementations, one per partner source.
package inventory

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Store holds the normalized inventory of every vertical. It is read-only after
// loading and safe for concurrent use.
type Store struct {
	flights   *index[domain.Flight]
	hotels    *index[domain.Hotel]
	trains    *index[domain.Train]
	buses     *index[domain.Bus]
	cabs      *index[domain.Cab]
	homestays *index[domain.Homestay]
	insurance *index[domain.InsurancePlan]
}

// Load seeds a Store from the embedded fixtures.
func Load(log *logger.Logger) (*Store, error) {
	return LoadFS(fixtures, log)
}

// LoadFS seeds a Store from fixtures/<vertical>.json files in fsys.
// A missing file leaves that vertical empty; a malformed file is an error.
func LoadFS(fsys fs.FS, log *logger.Logger) (*Store, error) {
	s := &Store{}
	var err error

	if s.flights, err = loadVertical(fsys, domain.VerticalFlights, log, transportKeyOf[flightRecord], normalizer.flight); err != nil {
		return nil, err
	}
	if s.hotels, err = loadVertical(fsys, domain.VerticalHotels, log, cityKeyOf[hotelRecord], normalizer.hotel); err != nil {
		return nil, err
	}
	if s.trains, err = loadVertical(fsys, domain.VerticalTrains, log, transportKeyOf[trainRecord], normalizer.train); err != nil {
		return nil, err
	}
	if s.buses, err = loadVertical(fsys, domain.VerticalBuses, log, transportKeyOf[busRecord], normalizer.bus); err != nil {
		return nil, err
	}
	if s.cabs, err = loadVertical(fsys, domain.VerticalCabs, log, transportKeyOf[cabRecord], normalizer.cab); err != nil {
		return nil, err
	}
	if s.homestays, err = loadVertical(fsys, domain.VerticalHomestays, log, cityKeyOf[homestayRecord], normalizer.homestay); err != nil {
		return nil, err
	}
	if s.insurance, err = loadVertical(fsys, domain.VerticalInsurance, log, destinationKeyOf[insuranceRecord], normalizer.insurance); err != nil {
		return nil, err
	}

	log.Info().
		Int("flights", s.flights.size()).
		Int("hotels", s.hotels.size()).
		Int("trains", s.trains.size()).
		Int("buses", s.buses.size()).
		Int("cabs", s.cabs.size()).
		Int("homestays", s.homestays.size()).
		Int("insurance", s.insurance.size()).
		Msg("inventory loaded")

	return s, nil
}

func loadVertical[R, T any](
	fsys fs.FS,
	vertical domain.Vertical,
	log *logger.Logger,
	keyOf func(fixtureGroup[R]) string,
	convert func(normalizer, R) T,
) (*index[T], error) {
	ix := newIndex[T]()

	data, err := fs.ReadFile(fsys, path.Join("fixtures", string(vertical)+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("vertical", string(vertical)).Msg("no fixture file, vertical has no inventory")
		return ix, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s fixtures: %w", vertical, err)
	}

	var groups []fixtureGroup[R]
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parse %s fixtures: %w", vertical, err)
	}

	for _, g := range groups {
		if g.Source == "" {
			return nil, fmt.Errorf("parse %s fixtures: group %q has no source", vertical, keyOf(g))
		}
		n := newNormalizer(log, g.Source)
		items := make([]T, 0, len(g.Results))
		for _, r := range g.Results {
			items = append(items, convert(n, r))
		}
		ix.add(g.Source, keyOf(g), items)
	}

	return ix, nil
}

// LookupKey returns the exact-match key a query is looked up by:
// origin|destination|date for transport, city for stays and destination for insurance.
func LookupKey(q domain.SearchQuery) string {
	switch {
	case q.Vertical.IsTransport():
		return transportKey(q.Origin, q.Destination, q.Date)
	case q.Vertical.IsStay():
		return normalizeKeyPart(q.City)
	default:
		return normalizeKeyPart(q.Destination)
	}
}

func transportKey(origin, destination, date string) string {
	return normalizeKeyPart(origin) + "|" + normalizeKeyPart(destination) + "|" + strings.TrimSpace(date)
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func transportKeyOf[R any](g fixtureGroup[R]) string {
	return transportKey(g.Origin, g.Destination, g.Date)
}

func cityKeyOf[R any](g fixtureGroup[R]) string {
	return normalizeKeyPart(g.City)
}

func destinationKeyOf[R any](g fixtureGroup[R]) string {
	return normalizeKeyPart(g.Destination)
}

// index maps source -> lookup key -> items.
type index[T any] struct {
	sources []string
	groups  map[string]map[string][]T
}

func newIndex[T any]() *index[T] {
	return &index[T]{groups: make(map[string]map[string][]T)}
}

func (ix *index[T]) add(source, key string, items []T) {
	bySource, ok := ix.groups[source]
	if !ok {
		bySource = make(map[string][]T)
		ix.groups[source] = bySource
		ix.sources = append(ix.sources, source)
	}
	bySource[key] = append(bySource[key], items...)
}

// lookup returns a copy of the items a source holds for key, or an empty slice.
func (ix *index[T]) lookup(source, key string) []T {
	items := ix.groups[source][key]
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func (ix *index[T]) size() int {
	n := 0
	for _, bySource := range ix.groups {
		for _, items := range bySource {
			n += len(items)
		}
	}
	return n
}

// FlightSources returns one source per flight partner in the fixtures.
func (s *Store) FlightSources(opts ...SourceOption) []domain.Source[domain.Flight] {
	return sourcesFor(s.flights, matchFlightClass, opts)
}

// HotelSources returns one source per hotel partner in the fixtures.
func (s *Store) HotelSources(opts ...SourceOption) []domain.Source[domain.Hotel] {
	return sourcesFor(s.hotels, nil, opts)
}

// TrainSources returns one source per train partner in the fixtures.
func (s *Store) TrainSources(opts ...SourceOption) []domain.Source[domain.Train] {
	return sourcesFor(s.trains, nil, opts)
}

// BusSources returns one source per bus partner in the fixtures.
func (s *Store) BusSources(opts ...SourceOption) []domain.Source[domain.Bus] {
	return sourcesFor(s.buses, nil, opts)
}

// CabSources returns one source per cab partner in the fixtures.
func (s *Store) CabSources(opts ...SourceOption) []domain.Source[domain.Cab] {
	return sourcesFor(s.cabs, nil, opts)
}

// HomestaySources returns one source per homestay partner in the fixtures.
func (s *Store) HomestaySources(opts ...SourceOption) []domain.Source[domain.Homestay] {
	return sourcesFor(s.homestays, nil, opts)
}

// InsuranceSources returns one source per insurer feed in the fixtures.
func (s *Store) InsuranceSources(opts ...SourceOption) []domain.Source[domain.InsurancePlan] {
	return sourcesFor(s.insurance, nil, opts)
}

func sourcesFor[T any](ix *index[T], match func(domain.SearchQuery, T) bool, opts []SourceOption) []domain.Source[T] {
	sources := make([]domain.Source[T], 0, len(ix.sources))
	for _, name := range ix.sources {
		sources = append(sources, newSource(name, ix, match, opts...))
	}
	return sources
}
