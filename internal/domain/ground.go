package domain

// Train is a scheduled train service in one travel class.
type Train struct {
	ID             string       `json:"id"`
	Number         string       `json:"number"`
	Name           string       `json:"name"`
	TrainType      string       `json:"trainType"`
	Class          string       `json:"class"`
	Departure      Point        `json:"departure"`
	Arrival        Point        `json:"arrival"`
	Duration       DurationInfo `json:"duration"`
	Halts          int          `json:"halts"`
	SeatsAvailable int          `json:"seatsAvailable"`
	Price          PriceInfo    `json:"price"`
	Source         string       `json:"source"`
}

// Bus is an intercity bus service.
type Bus struct {
	ID             string       `json:"id"`
	Operator       string       `json:"operator"`
	BusType        string       `json:"busType"`
	Departure      Point        `json:"departure"`
	Arrival        Point        `json:"arrival"`
	Duration       DurationInfo `json:"duration"`
	Stops          int          `json:"stops"`
	SeatsAvailable int          `json:"seatsAvailable"`
	Rating         float64      `json:"rating"`
	Price          PriceInfo    `json:"price"`
	Source         string       `json:"source"`
}

// Cab is an outstation or airport cab quote.
type Cab struct {
	ID         string       `json:"id"`
	Provider   string       `json:"provider"`
	CabType    string       `json:"cabType"`
	Model      string       `json:"model"`
	Capacity   int          `json:"capacity"`
	Pickup     Point        `json:"pickup"`
	Drop       Point        `json:"drop"`
	Duration   DurationInfo `json:"duration"`
	DistanceKm float64      `json:"distanceKm"`
	Rating     float64      `json:"rating"`
	Price      PriceInfo    `json:"price"`
	Source     string       `json:"source"`
}
