package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

func testNormalizer() normalizer {
	return newNormalizer(logger.Nop(), "skyfare")
}

func TestNormalizer_Flight(t *testing.T) {
	r := flightRecord{
		ID:           "SKY-6E2133-1215",
		FlightNumber: "6E 2133",
		AirlineCode:  "6E",
		Airline:      " IndiGo ",
		Departure:    pointRecord{Code: "DEL", City: "New Delhi", Time: "2026-12-15T05:45:00+05:30", Terminal: "1"},
		Arrival:      pointRecord{Code: "BOM", City: "Mumbai", Time: "2026-12-15T07:55:00"},
		Stops:        0,
		FareClass:    "Y",
		Price:        priceRecord{Amount: 1703, Currency: "inr"},
	}

	f := testNormalizer().flight(r)

	assert.Equal(t, "IndiGo", f.Airline.Name)
	assert.Equal(t, "economy", f.Class)
	assert.Equal(t, "skyfare", f.Source)
	assert.Equal(t, "New Delhi (DEL)", f.Departure.Name)
	assert.Equal(t, "Asia/Kolkata", f.Arrival.Timezone)
	assert.Equal(t, 130, f.Duration.TotalMinutes, "duration falls back to arrival minus departure")
	assert.Equal(t, "2h 10m", f.Duration.Formatted)
	assert.Equal(t, "INR", f.Price.Currency)
	assert.Equal(t, "₹1,703", f.Price.Formatted)
}

func TestNormalizer_Point(t *testing.T) {
	n := testNormalizer()

	t.Run("offset timestamp", func(t *testing.T) {
		p := n.point("x", "departure", pointRecord{Code: "DXB", Time: "2026-12-15T09:00:00+04:00", Timezone: "Asia/Dubai"})
		require.True(t, p.HasTime())
		assert.Equal(t, time.Date(2026, 12, 15, 5, 0, 0, 0, time.UTC), p.DateTime.UTC())
	})

	t.Run("wall clock in the point's zone", func(t *testing.T) {
		p := n.point("x", "departure", pointRecord{Code: "KTM", Time: "2026-12-15T09:00:00", Timezone: "Asia/Kathmandu"})
		require.True(t, p.HasTime())
		assert.Equal(t, time.Date(2026, 12, 15, 3, 15, 0, 0, time.UTC), p.DateTime.UTC())
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		p := n.point("x", "departure", pointRecord{Code: "DEL", City: "New Delhi", Time: "TBD"})
		assert.False(t, p.HasTime())
		assert.Equal(t, "New Delhi (DEL)", p.Name)
		assert.Equal(t, "Asia/Kolkata", p.Timezone)
	})

	t.Run("no timestamp", func(t *testing.T) {
		p := n.point("x", "pickup", pointRecord{City: "Mumbai"})
		assert.False(t, p.HasTime())
		assert.Equal(t, "Mumbai", p.Name)
	})
}

func TestNormalizer_Stays(t *testing.T) {
	n := newNormalizer(logger.Nop(), "staybook")

	h := n.hotel(hotelRecord{
		ID: "h1", Name: "Taj Fort Aguada", City: "Goa", PropertyType: "Resort", StarRating: 5, GuestRating: 4.7,
		Amenities:     []string{"Pool", " ", " Spa "},
		PricePerNight: priceRecord{Amount: 18500, Currency: "INR"},
	})
	assert.Equal(t, []string{"Pool", "Spa"}, h.Amenities)
	assert.Equal(t, "₹18,500", h.Price.Formatted)
	assert.Equal(t, "staybook", h.Source)

	hs := n.homestay(homestayRecord{ID: "s1", Name: "Pine Nook", Host: "Tenzin", PricePerNight: priceRecord{Amount: -1, Currency: "INR"}})
	assert.Equal(t, "Tenzin", hs.HostName)
	assert.False(t, hs.Price.Valid(), "negative prices are treated as missing")
}

func TestNormalizer_Ground(t *testing.T) {
	n := testNormalizer()

	tr := n.train(trainRecord{ID: "t1", Class: " 3a ", Halts: 4, DurationMinutes: 950, Fare: priceRecord{Amount: 3120, Currency: "INR"}})
	assert.Equal(t, "3A", tr.Class)
	assert.Equal(t, 950, tr.Duration.TotalMinutes)

	c := n.cab(cabRecord{ID: "c1", Pickup: pointRecord{City: "Mumbai", Time: "2026-12-15T19:30:00"}, DurationMinutes: 180})
	require.True(t, c.Pickup.HasTime())
	assert.Equal(t, 180, c.Duration.TotalMinutes)
}

func TestDurationMinutes(t *testing.T) {
	dep := domain.Point{DateTime: time.Date(2026, 12, 15, 10, 0, 0, 0, time.UTC)}
	arr := domain.Point{DateTime: time.Date(2026, 12, 15, 12, 30, 0, 0, time.UTC)}

	assert.Equal(t, 95, durationMinutes(95, dep, arr))
	assert.Equal(t, 150, durationMinutes(0, dep, arr))
	assert.Zero(t, durationMinutes(0, arr, dep), "arrival before departure")
	assert.Zero(t, durationMinutes(0, domain.Point{}, arr))
}

func TestNormalizeClass(t *testing.T) {
	tests := map[string]string{
		"Y":               "economy",
		"economy":         "economy",
		"Premium Economy": "premium-economy",
		"W":               "premium-economy",
		"J":               "business",
		"Business":        "business",
		"f":               "first",
		"":                "economy",
		"saver":           "economy",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizeClass(in), in)
	}
}

func TestFormatPlaceName(t *testing.T) {
	assert.Equal(t, "Mumbai (BOM)", formatPlaceName("BOM", "Mumbai"))
	assert.Equal(t, "BOM", formatPlaceName("BOM", ""))
	assert.Equal(t, "Mumbai", formatPlaceName("", "Mumbai"))
}
