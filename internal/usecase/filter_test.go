package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/storefront/internal/domain"
)

func TestApplyFilters_PriceRange(t *testing.T) {
	e := newFlightEngine()
	items := []domain.Flight{
		testFlight("a", "IndiGo", 1703, 130, 0, 5),
		testFlight("b", "IndiGo", 1750, 135, 0, 9),
		testFlight("c", "Air India", 4150, 130, 0, 20),
	}

	got := e.ApplyFilters(items, &domain.FilterCriteria{
		PriceRange: &domain.PriceRange{Min: floatPtr(1500), Max: floatPtr(2000)},
	})

	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestApplyFilters_CategoryMultiSelect(t *testing.T) {
	e := newFlightEngine()
	items := []domain.Flight{
		testFlight("a", "Air India", 4150, 130, 0, 20),
		testFlight("b", "IndiGo", 1703, 130, 0, 5),
		testFlight("c", "IndiGo", 1750, 135, 0, 9),
	}

	tests := []struct {
		name       string
		categories map[string][]string
		want       []string
	}{
		{
			name:       "single value",
			categories: map[string][]string{domain.AxisAirline: {"IndiGo"}},
			want:       []string{"b", "c"},
		},
		{
			name:       "values within an axis are alternatives",
			categories: map[string][]string{domain.AxisAirline: {"IndiGo", "Air India"}},
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "matching ignores case and spaces",
			categories: map[string][]string{domain.AxisAirline: {" indigo "}},
			want:       []string{"b", "c"},
		},
		{
			name:       "axes are conjunctive",
			categories: map[string][]string{domain.AxisAirline: {"IndiGo"}, domain.AxisClass: {"business"}},
			want:       []string{},
		},
		{
			name:       "empty selection does not filter",
			categories: map[string][]string{domain.AxisAirline: {}},
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "blank values are ignored",
			categories: map[string][]string{domain.AxisAirline: {"", "  "}},
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "axis the vertical lacks matches nothing",
			categories: map[string][]string{domain.AxisAmenity: {"Pool"}},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ApplyFilters(items, &domain.FilterCriteria{Categories: tt.categories})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilters_TimeSlots(t *testing.T) {
	e := newFlightEngine()
	items := sampleFlights()

	got := e.ApplyFilters(items, &domain.FilterCriteria{
		TimeSlots: []domain.TimeSlot{domain.SlotEarlyMorning, domain.SlotEvening},
	})
	assert.Equal(t, []string{"AI-805", "6E-2133"}, ids(got))

	got = e.ApplyFilters(items, &domain.FilterCriteria{
		TimeSlots: []domain.TimeSlot{domain.SlotAfternoon},
	})
	assert.Equal(t, []string{"SG-8169", "QP-1129"}, ids(got))
}

func TestApplyFilters_TimeSlotUsesLocalHour(t *testing.T) {
	e := newFlightEngine()

	// 00:30 UTC is 06:00 in Kolkata
	f := testFlight("late", "IndiGo", 2000, 130, 0, 0)
	f.Departure.DateTime = time.Date(2026, 12, 15, 0, 30, 0, 0, time.UTC)

	got := e.ApplyFilters([]domain.Flight{f}, &domain.FilterCriteria{TimeSlots: []domain.TimeSlot{domain.SlotMorning}})
	assert.Len(t, got, 1)

	got = e.ApplyFilters([]domain.Flight{f}, &domain.FilterCriteria{TimeSlots: []domain.TimeSlot{domain.SlotEarlyMorning}})
	assert.Empty(t, got)
}

func TestApplyFilters_Stops(t *testing.T) {
	e := newFlightEngine()
	items := sampleFlights()

	tests := []struct {
		name  string
		stops []domain.StopCategory
		want  []string
	}{
		{name: "non-stop", stops: []domain.StopCategory{domain.StopsNonStop}, want: []string{"AI-805", "6E-2133", "6E-5021", "QP-1129"}},
		{name: "one stop", stops: []domain.StopCategory{domain.StopsOne}, want: []string{"SG-8169"}},
		{name: "one or more", stops: []domain.StopCategory{domain.StopsOne, domain.StopsTwoPlus}, want: []string{"SG-8169", "IX-1144"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ApplyFilters(items, &domain.FilterCriteria{Stops: tt.stops})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilters_Duration(t *testing.T) {
	e := newFlightEngine()

	got := e.ApplyFilters(sampleFlights(), &domain.FilterCriteria{
		DurationRange: &domain.DurationRange{MaxMinutes: intPtr(130)},
	})
	assert.Equal(t, []string{"AI-805", "6E-2133", "QP-1129"}, ids(got))
}

func TestApplyFilters_MinRating(t *testing.T) {
	e := newHotelEngine()
	items := []domain.Hotel{
		testHotel("taj", "Taj Fort Aguada", 18500, 4.7, 5, "Pool", "Spa"),
		testHotel("zostel", "Zostel Goa", 900, 4.2, 0, "Free WiFi"),
		testHotel("new", "Unrated Inn", 1500, 0, 2),
	}

	got := e.ApplyFilters(items, &domain.FilterCriteria{MinRating: floatPtr(4.5)})
	assert.Equal(t, []string{"taj"}, hotelIDs(got))

	got = e.ApplyFilters(items, &domain.FilterCriteria{MinRating: floatPtr(0)})
	assert.Equal(t, []string{"taj", "zostel"}, hotelIDs(got), "unrated items fail any rating filter")
}

func TestApplyFilters_HotelAxes(t *testing.T) {
	e := newHotelEngine()
	items := []domain.Hotel{
		testHotel("taj", "Taj Fort Aguada", 18500, 4.7, 5, "Pool", "Spa"),
		testHotel("zostel", "Zostel Goa", 900, 4.2, 0, "Free WiFi"),
		testHotel("lemon", "Lemon Tree", 5200, 4.1, 4, "pool"),
	}

	got := e.ApplyFilters(items, &domain.FilterCriteria{
		Categories: map[string][]string{domain.AxisAmenity: {"Pool"}},
	})
	assert.Equal(t, []string{"taj", "lemon"}, hotelIDs(got))

	got = e.ApplyFilters(items, &domain.FilterCriteria{
		Categories: map[string][]string{domain.AxisStarRating: {"4", "5"}},
	})
	assert.Equal(t, []string{"taj", "lemon"}, hotelIDs(got))
}

func TestApplyFilters_MissingFields(t *testing.T) {
	e := newFlightEngine()

	noPrice := testFlight("no-price", "IndiGo", 0, 130, 0, 9)
	noPrice.Price = domain.PriceInfo{}
	noTime := testFlight("no-time", "IndiGo", 1999, 0, 0, 9)
	noTime.Departure.DateTime = time.Time{}
	noTime.Duration = domain.DurationInfo{}

	items := []domain.Flight{noPrice, noTime, testFlight("ok", "IndiGo", 1703, 130, 0, 9)}

	tests := []struct {
		name     string
		criteria *domain.FilterCriteria
		want     []string
	}{
		{
			name:     "missing price fails price filter only",
			criteria: &domain.FilterCriteria{PriceRange: &domain.PriceRange{Max: floatPtr(5000)}},
			want:     []string{"no-time", "ok"},
		},
		{
			name:     "missing time fails slot filter only",
			criteria: &domain.FilterCriteria{TimeSlots: []domain.TimeSlot{domain.SlotMorning}},
			want:     []string{"no-price", "ok"},
		},
		{
			name:     "missing duration fails duration filter only",
			criteria: &domain.FilterCriteria{DurationRange: &domain.DurationRange{MinMinutes: intPtr(0)}},
			want:     []string{"no-price", "ok"},
		},
		{
			name:     "category filter ignores missing price and time",
			criteria: &domain.FilterCriteria{Categories: map[string][]string{domain.AxisAirline: {"IndiGo"}}},
			want:     []string{"no-price", "no-time", "ok"},
		},
		{
			name:     "rating filter on a vertical without ratings",
			criteria: &domain.FilterCriteria{MinRating: floatPtr(1)},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(e.ApplyFilters(items, tt.criteria)))
		})
	}
}

func TestApplyFilters_EmptyCriteriaIsIdentity(t *testing.T) {
	e := newFlightEngine()
	items := sampleFlights()

	for _, criteria := range []*domain.FilterCriteria{nil, {}, {Categories: map[string][]string{}}} {
		got := e.ApplyFilters(items, criteria)
		assert.Equal(t, items, got)
	}
}

func TestApplyFilters_DoesNotModifyInput(t *testing.T) {
	e := newFlightEngine()
	items := sampleFlights()
	before := ids(items)

	got := e.ApplyFilters(items, &domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsNonStop}})
	require.NotEmpty(t, got)
	got[0].ID = "changed"

	assert.Equal(t, before, ids(items))
}

func TestApplyFilters_EmptyInput(t *testing.T) {
	e := newFlightEngine()

	got := e.ApplyFilters(nil, &domain.FilterCriteria{PriceRange: &domain.PriceRange{Max: floatPtr(1)}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyFilters_Properties(t *testing.T) {
	e := newFlightEngine()
	items := sampleFlights()

	criteriaSet := []*domain.FilterCriteria{
		{PriceRange: &domain.PriceRange{Min: floatPtr(1700), Max: floatPtr(2500)}},
		{PriceRange: &domain.PriceRange{Min: floatPtr(2000)}, Stops: []domain.StopCategory{domain.StopsNonStop, domain.StopsOne}},
		{Categories: map[string][]string{domain.AxisAirline: {"IndiGo", "SpiceJet"}}, TimeSlots: []domain.TimeSlot{domain.SlotMorning}},
		{DurationRange: &domain.DurationRange{MinMinutes: intPtr(130), MaxMinutes: intPtr(300)}},
	}

	for _, criteria := range criteriaSet {
		got := e.ApplyFilters(items, criteria)

		// Subset in original relative order
		next := 0
		for _, f := range got {
			for next < len(items) && items[next].ID != f.ID {
				next++
			}
			require.Less(t, next, len(items), "%s is not from the input, or is out of order", f.ID)
			next++
		}

		// Price bounds hold for every result
		if pr := criteria.PriceRange; pr != nil {
			for _, f := range got {
				if pr.Min != nil {
					assert.GreaterOrEqual(t, f.Price.Amount, *pr.Min)
				}
				if pr.Max != nil {
					assert.LessOrEqual(t, f.Price.Amount, *pr.Max)
				}
			}
		}

		// Filtering again with the same criteria changes nothing
		assert.Equal(t, got, e.ApplyFilters(got, criteria))
	}
}
