package domain

// Hotel is a hotel property with a per-night rate.
type Hotel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Area         string    `json:"area,omitempty"`
	PropertyType string    `json:"propertyType"`
	StarRating   int       `json:"starRating"`
	GuestRating  float64   `json:"guestRating"`
	ReviewCount  int       `json:"reviewCount"`
	Amenities    []string  `json:"amenities"`
	Price        PriceInfo `json:"price"`
	Source       string    `json:"source"`
}

// Homestay is a privately hosted stay (villa, cottage, farmstay) with a per-night rate.
type Homestay struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	HostName     string    `json:"hostName"`
	PropertyType string    `json:"propertyType"`
	Bedrooms     int       `json:"bedrooms"`
	MaxGuests    int       `json:"maxGuests"`
	GuestRating  float64   `json:"guestRating"`
	Amenities    []string  `json:"amenities"`
	Price        PriceInfo `json:"price"`
	Source       string    `json:"source"`
}
