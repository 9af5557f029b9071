package usecase

import (
	"time"

	"github.com/tripnest/storefront/internal/domain"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

// testFlight builds a DEL-BOM flight departing at hour:00 local time.
func testFlight(id, airline string, price float64, minutes, stops, hour int) domain.Flight {
	departure := time.Date(2026, 12, 15, hour, 0, 0, 0, ist)
	return domain.Flight{
		ID:           id,
		FlightNumber: id,
		Airline:      domain.AirlineInfo{Name: airline},
		Departure:    domain.Point{Code: "DEL", DateTime: departure, Timezone: "Asia/Kolkata"},
		Arrival:      domain.Point{Code: "BOM", DateTime: departure.Add(time.Duration(minutes) * time.Minute), Timezone: "Asia/Kolkata"},
		Duration:     domain.NewDurationInfo(minutes),
		Price:        domain.NewPriceInfo(price, "INR"),
		Class:        "economy",
		Stops:        stops,
		Source:       "skyfare",
	}
}

func testHotel(id, name string, price, rating float64, stars int, amenities ...string) domain.Hotel {
	return domain.Hotel{
		ID:           id,
		Name:         name,
		City:         "Goa",
		PropertyType: "Resort",
		StarRating:   stars,
		GuestRating:  rating,
		Amenities:    amenities,
		Price:        domain.NewPriceInfo(price, "INR"),
		Source:       "staybook",
	}
}

func newFlightEngine() *Engine[domain.Flight] {
	return NewEngine(FlightAccessors())
}

func newHotelEngine() *Engine[domain.Hotel] {
	return NewEngine(HotelAccessors())
}

func ids(flights []domain.Flight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

func hotelIDs(hotels []domain.Hotel) []string {
	out := make([]string, len(hotels))
	for i, h := range hotels {
		out[i] = h.ID
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// sampleFlights is a DEL-BOM result set shaped like the seeded inventory.
func sampleFlights() []domain.Flight {
	return []domain.Flight{
		testFlight("AI-805", "Air India", 4150, 130, 0, 20),
		testFlight("6E-2133", "IndiGo", 1703, 130, 0, 5),
		testFlight("6E-5021", "IndiGo", 1750, 135, 0, 9),
		testFlight("SG-8169", "SpiceJet", 2890, 270, 1, 13),
		testFlight("QP-1129", "Akasa Air", 2310, 125, 0, 16),
		testFlight("IX-1144", "Air India Express", 2120, 495, 2, 7),
	}
}
