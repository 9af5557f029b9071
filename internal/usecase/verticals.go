package usecase

import (
	"strconv"
	"time"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

// FlightAccessors maps flight fields onto the engine.
func FlightAccessors() Accessors[domain.Flight] {
	return Accessors[domain.Flight]{
		Price: func(f domain.Flight) (float64, bool) { return priceOf(f.Price) },
		Categories: map[string]func(domain.Flight) []string{
			domain.AxisAirline: func(f domain.Flight) []string { return values(f.Airline.Name) },
			domain.AxisClass:   func(f domain.Flight) []string { return values(f.Class) },
		},
		Time:     func(f domain.Flight) (time.Time, bool) { return localTime(f.Departure) },
		Stops:    func(f domain.Flight) (int, bool) { return f.Stops, f.Stops >= 0 },
		Duration: func(f domain.Flight) (int, bool) { return durationOf(f.Duration) },
		Name:     func(f domain.Flight) (string, bool) { return f.Airline.Name, f.Airline.Name != "" },
	}
}

// HotelAccessors maps hotel fields onto the engine.
func HotelAccessors() Accessors[domain.Hotel] {
	return Accessors[domain.Hotel]{
		Price: func(h domain.Hotel) (float64, bool) { return priceOf(h.Price) },
		Categories: map[string]func(domain.Hotel) []string{
			domain.AxisPropertyType: func(h domain.Hotel) []string { return values(h.PropertyType) },
			domain.AxisStarRating: func(h domain.Hotel) []string {
				if h.StarRating <= 0 {
					return nil
				}
				return []string{strconv.Itoa(h.StarRating)}
			},
			domain.AxisAmenity: func(h domain.Hotel) []string { return h.Amenities },
		},
		Rating: func(h domain.Hotel) (float64, bool) { return ratingOf(h.GuestRating) },
		Name:   func(h domain.Hotel) (string, bool) { return h.Name, h.Name != "" },
	}
}

// TrainAccessors maps train fields onto the engine. Halts count as stops.
func TrainAccessors() Accessors[domain.Train] {
	return Accessors[domain.Train]{
		Price: func(t domain.Train) (float64, bool) { return priceOf(t.Price) },
		Categories: map[string]func(domain.Train) []string{
			domain.AxisClass:     func(t domain.Train) []string { return values(t.Class) },
			domain.AxisTrainType: func(t domain.Train) []string { return values(t.TrainType) },
		},
		Time:     func(t domain.Train) (time.Time, bool) { return localTime(t.Departure) },
		Stops:    func(t domain.Train) (int, bool) { return t.Halts, t.Halts >= 0 },
		Duration: func(t domain.Train) (int, bool) { return durationOf(t.Duration) },
		Name:     func(t domain.Train) (string, bool) { return t.Name, t.Name != "" },
	}
}

// BusAccessors maps bus fields onto the engine.
func BusAccessors() Accessors[domain.Bus] {
	return Accessors[domain.Bus]{
		Price: func(b domain.Bus) (float64, bool) { return priceOf(b.Price) },
		Categories: map[string]func(domain.Bus) []string{
			domain.AxisBusType:  func(b domain.Bus) []string { return values(b.BusType) },
			domain.AxisOperator: func(b domain.Bus) []string { return values(b.Operator) },
		},
		Time:     func(b domain.Bus) (time.Time, bool) { return localTime(b.Departure) },
		Stops:    func(b domain.Bus) (int, bool) { return b.Stops, b.Stops >= 0 },
		Duration: func(b domain.Bus) (int, bool) { return durationOf(b.Duration) },
		Rating:   func(b domain.Bus) (float64, bool) { return ratingOf(b.Rating) },
		Name:     func(b domain.Bus) (string, bool) { return b.Operator, b.Operator != "" },
	}
}

// CabAccessors maps cab fields onto the engine. Pickup time is the primary time field.
func CabAccessors() Accessors[domain.Cab] {
	return Accessors[domain.Cab]{
		Price: func(c domain.Cab) (float64, bool) { return priceOf(c.Price) },
		Categories: map[string]func(domain.Cab) []string{
			domain.AxisCabType:  func(c domain.Cab) []string { return values(c.CabType) },
			domain.AxisProvider: func(c domain.Cab) []string { return values(c.Provider) },
		},
		Time:     func(c domain.Cab) (time.Time, bool) { return localTime(c.Pickup) },
		Duration: func(c domain.Cab) (int, bool) { return durationOf(c.Duration) },
		Rating:   func(c domain.Cab) (float64, bool) { return ratingOf(c.Rating) },
		Name:     func(c domain.Cab) (string, bool) { return c.Model, c.Model != "" },
	}
}

// HomestayAccessors maps homestay fields onto the engine.
func HomestayAccessors() Accessors[domain.Homestay] {
	return Accessors[domain.Homestay]{
		Price: func(h domain.Homestay) (float64, bool) { return priceOf(h.Price) },
		Categories: map[string]func(domain.Homestay) []string{
			domain.AxisPropertyType: func(h domain.Homestay) []string { return values(h.PropertyType) },
			domain.AxisAmenity:      func(h domain.Homestay) []string { return h.Amenities },
		},
		Rating: func(h domain.Homestay) (float64, bool) { return ratingOf(h.GuestRating) },
		Name:   func(h domain.Homestay) (string, bool) { return h.Name, h.Name != "" },
	}
}

// InsuranceAccessors maps insurance plan fields onto the engine. The premium is the price.
func InsuranceAccessors() Accessors[domain.InsurancePlan] {
	return Accessors[domain.InsurancePlan]{
		Price: func(p domain.InsurancePlan) (float64, bool) { return priceOf(p.Premium) },
		Categories: map[string]func(domain.InsurancePlan) []string{
			domain.AxisCoverageType: func(p domain.InsurancePlan) []string { return values(p.CoverageType) },
			domain.AxisInsurer:      func(p domain.InsurancePlan) []string { return values(p.Insurer) },
		},
		Rating: func(p domain.InsurancePlan) (float64, bool) { return ratingOf(p.Rating) },
		Name:   func(p domain.InsurancePlan) (string, bool) { return p.Name, p.Name != "" },
	}
}

func priceOf(p domain.PriceInfo) (float64, bool) {
	if !p.Valid() {
		return 0, false
	}
	return p.Amount, true
}

func durationOf(d domain.DurationInfo) (int, bool) {
	return d.TotalMinutes, d.TotalMinutes > 0
}

// ratingOf treats zero as unrated.
func ratingOf(r float64) (float64, bool) {
	return r, r > 0
}

func values(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// localTime returns the point's time in its own timezone, so slot bucketing uses
// the local hour at that airport or station rather than the server's zone.
func localTime(p domain.Point) (time.Time, bool) {
	if !p.HasTime() {
		return time.Time{}, false
	}
	if p.Timezone == "" {
		return p.DateTime, true
	}
	local, err := timeutil.InTimezone(p.DateTime, p.Timezone)
	if err != nil {
		return p.DateTime, true
	}
	return local, true
}
