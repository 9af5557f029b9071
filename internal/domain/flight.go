package domain

// Flight is one bookable fare on a single routing.
type Flight struct {
	ID string `json:"id"`

	// FlightNumber is the marketing number, e.g. "6E 2133".
	FlightNumber string      `json:"flightNumber"`
	Airline      AirlineInfo `json:"airline"`

	Departure Point        `json:"departure"`
	Arrival   Point        `json:"arrival"`
	Duration  DurationInfo `json:"duration"`

	Price   PriceInfo   `json:"price"`
	Baggage BaggageInfo `json:"baggage"`

	// Class is economy, premium-economy, business or first.
	Class string `json:"class"`

	// Stops counts intermediate landings; 0 is non-stop.
	Stops      int  `json:"stops"`
	Refundable bool `json:"refundable"`

	// Source is the inventory source that returned the fare.
	Source string `json:"source"`
}

// AirlineInfo identifies the operating carrier.
type AirlineInfo struct {
	// Code is the IATA designator, "6E" for IndiGo.
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// BaggageInfo is the free allowance in kilograms.
type BaggageInfo struct {
	CabinKg   int `json:"cabinKg"`
	CheckedKg int `json:"checkedKg"`
}
