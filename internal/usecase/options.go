package usecase

import "github.com/tripnest/storefront/internal/domain"

// DefaultPageSize is the page size used when a request does not specify one.
const DefaultPageSize = 10

// SearchOptions contains the per-request view over a fetched result set.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterCriteria

	// SortKey specifies how to order the results (default: best value ascending)
	SortKey domain.SortKey

	// Page selects the slice of sorted results to return
	Page domain.PageRequest
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		SortKey: domain.DefaultSortKey(),
		Page:    domain.PageRequest{Size: DefaultPageSize},
	}
}
