package domain

import (
	"fmt"
	"strings"
)

// Vertical identifies one product line of the storefront.
type Vertical string

// Supported verticals.
const (
	VerticalFlights   Vertical = "flights"
	VerticalHotels    Vertical = "hotels"
	VerticalTrains    Vertical = "trains"
	VerticalBuses     Vertical = "buses"
	VerticalCabs      Vertical = "cabs"
	VerticalHomestays Vertical = "homestays"
	VerticalInsurance Vertical = "insurance"
)

// AllVerticals returns every vertical in display order.
func AllVerticals() []Vertical {
	return []Vertical{
		VerticalFlights,
		VerticalHotels,
		VerticalTrains,
		VerticalBuses,
		VerticalCabs,
		VerticalHomestays,
		VerticalInsurance,
	}
}

// IsValid checks if the vertical is a known value.
func (v Vertical) IsValid() bool {
	for _, known := range AllVerticals() {
		if v == known {
			return true
		}
	}
	return false
}

// IsTransport reports whether the vertical is searched by origin, destination and date.
func (v Vertical) IsTransport() bool {
	switch v {
	case VerticalFlights, VerticalTrains, VerticalBuses, VerticalCabs:
		return true
	default:
		return false
	}
}

// IsStay reports whether the vertical is searched by city and check-in date.
func (v Vertical) IsStay() bool {
	return v == VerticalHotels || v == VerticalHomestays
}

// ParseVertical converts a path segment or flag value to a Vertical.
// Singular forms ("flight", "bus") are accepted.
func ParseVertical(s string) (Vertical, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "flight":
		normalized = string(VerticalFlights)
	case "hotel":
		normalized = string(VerticalHotels)
	case "train":
		normalized = string(VerticalTrains)
	case "bus":
		normalized = string(VerticalBuses)
	case "cab":
		normalized = string(VerticalCabs)
	case "homestay":
		normalized = string(VerticalHomestays)
	}

	v := Vertical(normalized)
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVertical, s)
	}
	return v, nil
}

// Category axis names used by the multi-select filters.
const (
	AxisAirline      = "airline"
	AxisClass        = "class"
	AxisPropertyType = "propertyType"
	AxisStarRating   = "starRating"
	AxisAmenity      = "amenity"
	AxisTrainType    = "trainType"
	AxisBusType      = "busType"
	AxisOperator     = "operator"
	AxisCabType      = "cabType"
	AxisProvider     = "provider"
	AxisCoverageType = "coverageType"
	AxisInsurer      = "insurer"
)
