package http

import (
	"strings"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/usecase"
)

// ToDomainQuery converts a SearchRequest to the domain.SearchQuery of vertical.
func ToDomainQuery(vertical domain.Vertical, req *SearchRequest) domain.SearchQuery {
	q := domain.SearchQuery{
		Vertical:    vertical,
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		City:        strings.TrimSpace(req.City),
		Date:        req.Date,
		CheckOut:    req.CheckOut,
		Travellers:  req.Travellers,
	}

	if vertical == domain.VerticalFlights {
		q.Origin = strings.ToUpper(q.Origin)
		q.Destination = strings.ToUpper(q.Destination)
		q.Class = strings.ToLower(req.Class)
	}

	q.SetDefaults()
	return q
}

// ToDomainFilters converts a FilterDTO to domain.FilterCriteria.
func ToDomainFilters(dto *FilterDTO) *domain.FilterCriteria {
	if dto == nil {
		return nil
	}

	criteria := &domain.FilterCriteria{
		MinRating: dto.MinRating,
	}

	if dto.PriceRange != nil && (dto.PriceRange.Min != nil || dto.PriceRange.Max != nil) {
		criteria.PriceRange = &domain.PriceRange{
			Min: dto.PriceRange.Min,
			Max: dto.PriceRange.Max,
		}
	}

	if len(dto.Categories) > 0 {
		criteria.Categories = make(map[string][]string, len(dto.Categories))
		for axis, selected := range dto.Categories {
			criteria.Categories[axis] = selected
		}
	}

	for _, slot := range dto.TimeSlots {
		criteria.TimeSlots = append(criteria.TimeSlots, domain.TimeSlot(slot))
	}
	for _, stop := range dto.Stops {
		criteria.Stops = append(criteria.Stops, domain.StopCategory(stop))
	}

	// Return nil duration range if both bounds are nil (no filter)
	if dto.DurationRange != nil && (dto.DurationRange.MinMinutes != nil || dto.DurationRange.MaxMinutes != nil) {
		criteria.DurationRange = &domain.DurationRange{
			MinMinutes: dto.DurationRange.MinMinutes,
			MaxMinutes: dto.DurationRange.MaxMinutes,
		}
	}

	return criteria
}

// ToDomainSortKey converts a sort token to domain.SortKey.
// Unknown tokens fall back to the best-value ordering.
func ToDomainSortKey(sortBy string) domain.SortKey {
	key, err := domain.ParseSortKey(sortBy)
	if err != nil {
		return domain.DefaultSortKey()
	}
	return key
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchRequest, paging PagingConfig) usecase.SearchOptions {
	size := req.PageSize
	if size <= 0 {
		size = paging.DefaultSize
	}
	if size <= 0 {
		size = usecase.DefaultPageSize
	}

	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortKey: ToDomainSortKey(req.SortBy),
		Page: domain.PageRequest{
			Size:  size,
			Index: req.Page,
		},
	}
}
