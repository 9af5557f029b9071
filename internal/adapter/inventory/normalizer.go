package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

// normalizer converts fixture records to domain items.
// Malformed fields are kept as zero values so that only the filters reading them exclude the item.
type normalizer struct {
	log    *logger.Logger
	source string
}

func newNormalizer(log *logger.Logger, source string) normalizer {
	return normalizer{log: log.WithSource(source), source: source}
}

func (n normalizer) flight(r flightRecord) domain.Flight {
	departure := n.point(r.ID, "departure", r.Departure)
	arrival := n.point(r.ID, "arrival", r.Arrival)

	return domain.Flight{
		ID:           r.ID,
		FlightNumber: r.FlightNumber,
		Airline: domain.AirlineInfo{
			Code: r.AirlineCode,
			Name: strings.TrimSpace(r.Airline),
		},
		Departure: departure,
		Arrival:   arrival,
		Duration:  domain.NewDurationInfo(durationMinutes(r.DurationMinutes, departure, arrival)),
		Price:     domain.NewPriceInfo(r.Price.Amount, r.Price.Currency),
		Baggage: domain.BaggageInfo{
			CabinKg:   r.Baggage.CabinKg,
			CheckedKg: r.Baggage.CheckedKg,
		},
		Class:      normalizeClass(r.FareClass),
		Stops:      r.Stops,
		Refundable: r.Refundable,
		Source:     n.source,
	}
}

func (n normalizer) hotel(r hotelRecord) domain.Hotel {
	return domain.Hotel{
		ID:           r.ID,
		Name:         r.Name,
		City:         r.City,
		Area:         r.Area,
		PropertyType: r.PropertyType,
		StarRating:   r.StarRating,
		GuestRating:  r.GuestRating,
		ReviewCount:  r.ReviewCount,
		Amenities:    cleanList(r.Amenities),
		Price:        domain.NewPriceInfo(r.PricePerNight.Amount, r.PricePerNight.Currency),
		Source:       n.source,
	}
}

func (n normalizer) homestay(r homestayRecord) domain.Homestay {
	return domain.Homestay{
		ID:           r.ID,
		Name:         r.Name,
		City:         r.City,
		HostName:     r.Host,
		PropertyType: r.PropertyType,
		Bedrooms:     r.Bedrooms,
		MaxGuests:    r.MaxGuests,
		GuestRating:  r.GuestRating,
		Amenities:    cleanList(r.Amenities),
		Price:        domain.NewPriceInfo(r.PricePerNight.Amount, r.PricePerNight.Currency),
		Source:       n.source,
	}
}

func (n normalizer) train(r trainRecord) domain.Train {
	departure := n.point(r.ID, "departure", r.Departure)
	arrival := n.point(r.ID, "arrival", r.Arrival)

	return domain.Train{
		ID:             r.ID,
		Number:         r.Number,
		Name:           r.Name,
		TrainType:      r.TrainType,
		Class:          strings.ToUpper(strings.TrimSpace(r.Class)),
		Departure:      departure,
		Arrival:        arrival,
		Duration:       domain.NewDurationInfo(durationMinutes(r.DurationMinutes, departure, arrival)),
		Halts:          r.Halts,
		SeatsAvailable: r.SeatsAvailable,
		Price:          domain.NewPriceInfo(r.Fare.Amount, r.Fare.Currency),
		Source:         n.source,
	}
}

func (n normalizer) bus(r busRecord) domain.Bus {
	departure := n.point(r.ID, "departure", r.Departure)
	arrival := n.point(r.ID, "arrival", r.Arrival)

	return domain.Bus{
		ID:             r.ID,
		Operator:       r.Operator,
		BusType:        r.BusType,
		Departure:      departure,
		Arrival:        arrival,
		Duration:       domain.NewDurationInfo(durationMinutes(r.DurationMinutes, departure, arrival)),
		Stops:          r.Stops,
		SeatsAvailable: r.SeatsAvailable,
		Rating:         r.Rating,
		Price:          domain.NewPriceInfo(r.Fare.Amount, r.Fare.Currency),
		Source:         n.source,
	}
}

func (n normalizer) cab(r cabRecord) domain.Cab {
	pickup := n.point(r.ID, "pickup", r.Pickup)
	drop := n.point(r.ID, "drop", r.Drop)

	return domain.Cab{
		ID:         r.ID,
		Provider:   r.Provider,
		CabType:    r.CabType,
		Model:      r.Model,
		Capacity:   r.Capacity,
		Pickup:     pickup,
		Drop:       drop,
		Duration:   domain.NewDurationInfo(r.DurationMinutes),
		DistanceKm: r.DistanceKm,
		Rating:     r.Rating,
		Price:      domain.NewPriceInfo(r.Fare.Amount, r.Fare.Currency),
		Source:     n.source,
	}
}

func (n normalizer) insurance(r insuranceRecord) domain.InsurancePlan {
	return domain.InsurancePlan{
		ID:           r.ID,
		Name:         r.Name,
		Insurer:      r.Insurer,
		CoverageType: r.CoverageType,
		SumInsured:   domain.NewPriceInfo(r.SumInsured.Amount, r.SumInsured.Currency),
		Premium:      domain.NewPriceInfo(r.Premium.Amount, r.Premium.Currency),
		Features:     cleanList(r.Features),
		Rating:       r.Rating,
		Source:       n.source,
	}
}

// point converts a fixture point. An unparseable time leaves DateTime zero and logs a warning.
func (n normalizer) point(id, field string, r pointRecord) domain.Point {
	timezone := r.Timezone
	if timezone == "" {
		timezone = timeutil.IST
	}

	p := domain.Point{
		Code:     r.Code,
		Name:     formatPlaceName(r.Code, r.City),
		Terminal: r.Terminal,
		Timezone: timezone,
	}

	if r.Time == "" {
		return p
	}
	t, err := timeutil.ParseTimestamp(r.Time, timezone)
	if err != nil {
		n.log.Warn().
			Str("item_id", id).
			Str("field", field).
			Str("value", r.Time).
			Msg("unparseable timestamp, time-based filters will exclude this item")
		return p
	}
	p.DateTime = t
	return p
}

// durationMinutes prefers the declared duration and falls back to arrival minus departure.
func durationMinutes(declared int, departure, arrival domain.Point) int {
	if declared > 0 {
		return declared
	}
	if !departure.HasTime() || !arrival.HasTime() || !arrival.DateTime.After(departure.DateTime) {
		return 0
	}
	return int(arrival.DateTime.Sub(departure.DateTime) / time.Minute)
}

// formatPlaceName creates a display name from code and city.
func formatPlaceName(code, city string) string {
	switch {
	case city == "":
		return code
	case code == "":
		return city
	default:
		return fmt.Sprintf("%s (%s)", city, code)
	}
}

// normalizeClass maps partner fare class spellings to the cabin classes the search accepts.
func normalizeClass(class string) string {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "economy", "eco", "y":
		return "economy"
	case "premium-economy", "premium economy", "premium_economy", "w":
		return "premium-economy"
	case "business", "biz", "j", "c":
		return "business"
	case "first", "f":
		return "first"
	default:
		return "economy"
	}
}

// cleanList trims entries and drops blanks.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
