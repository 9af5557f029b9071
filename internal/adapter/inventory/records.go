package inventory

// Fixture files group results by the lookup key the storefront searches with.
// Each group belongs to one inventory source, mirroring one partner API response.
type fixtureGroup[R any] struct {
	Source      string `json:"source"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	City        string `json:"city,omitempty"`
	Date        string `json:"date,omitempty"`
	Results     []R    `json:"results"`
}

type priceRecord struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type pointRecord struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time"`
	Timezone string `json:"timezone,omitempty"`
}

type flightRecord struct {
	ID              string      `json:"id"`
	FlightNumber    string      `json:"flight_number"`
	AirlineCode     string      `json:"airline_code"`
	Airline         string      `json:"airline"`
	Departure       pointRecord `json:"departure"`
	Arrival         pointRecord `json:"arrival"`
	DurationMinutes int         `json:"duration_minutes"`
	Stops           int         `json:"stops"`
	FareClass       string      `json:"fare_class"`
	Price           priceRecord `json:"price"`
	Baggage         struct {
		CabinKg   int `json:"cabin_kg"`
		CheckedKg int `json:"checked_kg"`
	} `json:"baggage"`
	Refundable bool `json:"refundable"`
}

type hotelRecord struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	City          string      `json:"city"`
	Area          string      `json:"area"`
	PropertyType  string      `json:"property_type"`
	StarRating    int         `json:"star_rating"`
	GuestRating   float64     `json:"guest_rating"`
	ReviewCount   int         `json:"review_count"`
	Amenities     []string    `json:"amenities"`
	PricePerNight priceRecord `json:"price_per_night"`
}

type homestayRecord struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	City          string      `json:"city"`
	Host          string      `json:"host"`
	PropertyType  string      `json:"property_type"`
	Bedrooms      int         `json:"bedrooms"`
	MaxGuests     int         `json:"max_guests"`
	GuestRating   float64     `json:"guest_rating"`
	Amenities     []string    `json:"amenities"`
	PricePerNight priceRecord `json:"price_per_night"`
}

type trainRecord struct {
	ID              string      `json:"id"`
	Number          string      `json:"number"`
	Name            string      `json:"name"`
	TrainType       string      `json:"train_type"`
	Class           string      `json:"class"`
	Departure       pointRecord `json:"departure"`
	Arrival         pointRecord `json:"arrival"`
	DurationMinutes int         `json:"duration_minutes"`
	Halts           int         `json:"halts"`
	SeatsAvailable  int         `json:"seats_available"`
	Fare            priceRecord `json:"fare"`
}

type busRecord struct {
	ID              string      `json:"id"`
	Operator        string      `json:"operator"`
	BusType         string      `json:"bus_type"`
	Departure       pointRecord `json:"departure"`
	Arrival         pointRecord `json:"arrival"`
	DurationMinutes int         `json:"duration_minutes"`
	Stops           int         `json:"stops"`
	SeatsAvailable  int         `json:"seats_available"`
	Rating          float64     `json:"rating"`
	Fare            priceRecord `json:"fare"`
}

type cabRecord struct {
	ID              string      `json:"id"`
	Provider        string      `json:"provider"`
	CabType         string      `json:"cab_type"`
	Model           string      `json:"model"`
	Capacity        int         `json:"capacity"`
	Pickup          pointRecord `json:"pickup"`
	Drop            pointRecord `json:"drop"`
	DurationMinutes int         `json:"duration_minutes"`
	DistanceKm      float64     `json:"distance_km"`
	Rating          float64     `json:"rating"`
	Fare            priceRecord `json:"fare"`
}

type insuranceRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Insurer      string      `json:"insurer"`
	CoverageType string      `json:"coverage_type"`
	SumInsured   priceRecord `json:"sum_insured"`
	Premium      priceRecord `json:"premium"`
	Features     []string    `json:"features"`
	Rating       float64     `json:"rating"`
}
