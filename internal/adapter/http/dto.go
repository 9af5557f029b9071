package http

import (
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/usecase"
)

// VerticalsResponseDTO lists the verticals being served and what each can filter and sort by.
type VerticalsResponseDTO struct {
	Verticals []VerticalDTO `json:"verticals"`
}

// VerticalDTO describes the search surface of one vertical.
type VerticalDTO struct {
	Name       string   `json:"name" example:"flights"`
	SearchPath string   `json:"searchPath" example:"/api/v1/flights/search"`
	Axes       []string `json:"axes" example:"airline,class"`
	TimeSlots  bool     `json:"timeSlots"`
	Stops      bool     `json:"stops"`
	Duration   bool     `json:"duration"`
	Rating     bool     `json:"rating"`
	SortFields []string `json:"sortFields" example:"best,price,duration,departure,name"`
}

// ToVerticalDTO converts a vertical's capabilities to its API representation.
func ToVerticalDTO(v domain.Vertical, caps usecase.Capabilities) VerticalDTO {
	fields := make([]string, len(caps.SortFields))
	for i, f := range caps.SortFields {
		fields[i] = string(f)
	}

	axes := caps.Axes
	if axes == nil {
		axes = []string{}
	}

	return VerticalDTO{
		Name:       string(v),
		SearchPath: "/api/v1/" + string(v) + "/search",
		Axes:       axes,
		TimeSlots:  caps.TimeSlots,
		Stops:      caps.Stops,
		Duration:   caps.Duration,
		Rating:     caps.Rating,
		SortFields: fields,
	}
}
