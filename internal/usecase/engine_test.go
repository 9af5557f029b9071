package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/storefront/internal/domain"
)

func TestEngine_Run(t *testing.T) {
	e := newFlightEngine()

	page := e.Run(sampleFlights(),
		&domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsNonStop}},
		domain.SortKey{Field: domain.SortByPrice, Direction: domain.Ascending},
		domain.PageRequest{Size: 3, Index: 0},
	)

	assert.Equal(t, []string{"6E-2133", "6E-5021", "QP-1129"}, ids(page.Items))
	assert.Equal(t, 4, page.Total, "total counts filtered items")
	assert.True(t, page.HasMore)

	page = e.Run(sampleFlights(),
		&domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsNonStop}},
		domain.SortKey{Field: domain.SortByPrice, Direction: domain.Ascending},
		domain.PageRequest{Size: 3, Index: 1},
	)
	assert.Equal(t, []string{"AI-805"}, ids(page.Items))
	assert.False(t, page.HasMore)
}

func TestEngine_Capabilities(t *testing.T) {
	tests := []struct {
		name  string
		caps  Capabilities
		axes  []string
		slots bool
		stops bool
		dur   bool
		rate  bool
	}{
		{"flights", NewEngine(FlightAccessors()).Capabilities(), []string{domain.AxisAirline, domain.AxisClass}, true, true, true, false},
		{"hotels", NewEngine(HotelAccessors()).Capabilities(), []string{domain.AxisAmenity, domain.AxisPropertyType, domain.AxisStarRating}, false, false, false, true},
		{"trains", NewEngine(TrainAccessors()).Capabilities(), []string{domain.AxisClass, domain.AxisTrainType}, true, true, true, false},
		{"buses", NewEngine(BusAccessors()).Capabilities(), []string{domain.AxisBusType, domain.AxisOperator}, true, true, true, true},
		{"cabs", NewEngine(CabAccessors()).Capabilities(), []string{domain.AxisCabType, domain.AxisProvider}, true, false, true, true},
		{"homestays", NewEngine(HomestayAccessors()).Capabilities(), []string{domain.AxisAmenity, domain.AxisPropertyType}, false, false, false, true},
		{"insurance", NewEngine(InsuranceAccessors()).Capabilities(), []string{domain.AxisCoverageType, domain.AxisInsurer}, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.axes, tt.caps.Axes)
			assert.Equal(t, tt.slots, tt.caps.TimeSlots)
			assert.Equal(t, tt.stops, tt.caps.Stops)
			assert.Equal(t, tt.dur, tt.caps.Duration)
			assert.Equal(t, tt.rate, tt.caps.Rating)

			require.NotEmpty(t, tt.caps.SortFields)
			assert.Equal(t, domain.SortByBestValue, tt.caps.SortFields[0])
			assert.True(t, tt.caps.SupportsSort(domain.SortByPrice))
			assert.True(t, tt.caps.SupportsSort(domain.SortByName))
			assert.Equal(t, tt.dur, tt.caps.SupportsSort(domain.SortByDuration))
			assert.Equal(t, tt.slots, tt.caps.SupportsSort(domain.SortByDeparture))
			assert.Equal(t, tt.rate, tt.caps.SupportsSort(domain.SortByRating))
		})
	}
}

func TestCapabilities_SupportsAxis(t *testing.T) {
	caps := newHotelEngine().Capabilities()

	assert.True(t, caps.SupportsAxis(domain.AxisAmenity))
	assert.False(t, caps.SupportsAxis(domain.AxisAirline))
	assert.False(t, caps.SupportsAxis(""))
}

func TestInsuranceAccessors_PremiumIsPrice(t *testing.T) {
	e := NewEngine(InsuranceAccessors())
	plans := []domain.InsurancePlan{
		{ID: "gold", Name: "Gold", Insurer: "Tata AIG", CoverageType: "comprehensive",
			SumInsured: domain.NewPriceInfo(5000000, "INR"), Premium: domain.NewPriceInfo(1450, "INR"), Rating: 4.4},
		{ID: "basic", Name: "Basic", Insurer: "ICICI Lombard", CoverageType: "medical",
			SumInsured: domain.NewPriceInfo(1000000, "INR"), Premium: domain.NewPriceInfo(499, "INR"), Rating: 4.1},
	}

	sorted := e.ApplySort(plans, domain.SortKey{Field: domain.SortByPrice, Direction: domain.Ascending})
	assert.Equal(t, "basic", sorted[0].ID)

	kept := e.ApplyFilters(plans, &domain.FilterCriteria{PriceRange: &domain.PriceRange{Max: floatPtr(1000)}})
	require.Len(t, kept, 1)
	assert.Equal(t, "basic", kept[0].ID)
}

func TestCabAccessors_PickupSlot(t *testing.T) {
	e := NewEngine(CabAccessors())
	pickup := time.Date(2026, 12, 15, 19, 30, 0, 0, ist)
	cabs := []domain.Cab{
		{ID: "evening", Model: "Dzire", Pickup: domain.Point{DateTime: pickup, Timezone: "Asia/Kolkata"}, Price: domain.NewPriceInfo(2800, "INR")},
		{ID: "anytime", Model: "Innova", Price: domain.NewPriceInfo(4200, "INR")},
	}

	kept := e.ApplyFilters(cabs, &domain.FilterCriteria{TimeSlots: []domain.TimeSlot{domain.SlotEvening}})
	require.Len(t, kept, 1)
	assert.Equal(t, "evening", kept[0].ID)

	sorted := e.ApplySort(cabs, domain.SortKey{Field: domain.SortByDeparture, Direction: domain.Descending})
	assert.Equal(t, "anytime", sorted[1].ID, "a cab without a pickup time sorts last")

	assert.Empty(t, e.ApplyFilters(cabs, &domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsNonStop}}),
		"cabs have no stops")
}

func TestTrainAccessors_HaltsAreStops(t *testing.T) {
	e := NewEngine(TrainAccessors())
	trains := []domain.Train{
		{ID: "rajdhani", Name: "Mumbai Rajdhani", Halts: 4, Price: domain.NewPriceInfo(3120, "INR")},
		{ID: "duronto", Name: "Mumbai Duronto", Halts: 0, Price: domain.NewPriceInfo(2870, "INR")},
	}

	kept := e.ApplyFilters(trains, &domain.FilterCriteria{Stops: []domain.StopCategory{domain.StopsTwoPlus}})
	require.Len(t, kept, 1)
	assert.Equal(t, "rajdhani", kept[0].ID)
}

func TestLocalTime(t *testing.T) {
	utc := time.Date(2026, 12, 15, 20, 0, 0, 0, time.UTC)

	got, ok := localTime(domain.Point{DateTime: utc, Timezone: "Asia/Kolkata"})
	require.True(t, ok)
	assert.Equal(t, 1, got.Hour())
	assert.True(t, got.Equal(utc))

	got, ok = localTime(domain.Point{DateTime: utc})
	require.True(t, ok)
	assert.Equal(t, 20, got.Hour())

	got, ok = localTime(domain.Point{DateTime: utc, Timezone: "Mars/Olympus"})
	require.True(t, ok)
	assert.Equal(t, 20, got.Hour(), "unknown zones keep the given time")

	_, ok = localTime(domain.Point{Timezone: "Asia/Kolkata"})
	assert.False(t, ok)
}

func TestRatingOf(t *testing.T) {
	_, ok := ratingOf(0)
	assert.False(t, ok)

	r, ok := ratingOf(4.5)
	assert.True(t, ok)
	assert.Equal(t, 4.5, r)
}
