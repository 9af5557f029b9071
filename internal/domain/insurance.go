package domain

// InsurancePlan is a travel insurance product quoted for a trip.
type InsurancePlan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Insurer      string    `json:"insurer"`
	CoverageType string    `json:"coverageType"`
	SumInsured   PriceInfo `json:"sumInsured"`
	// Premium is the price the traveller pays for the plan.
	Premium  PriceInfo `json:"premium"`
	Features []string  `json:"features"`
	Rating   float64   `json:"rating"`
	Source   string    `json:"source"`
}
