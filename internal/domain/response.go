package domain

// SearchResult is the response for one vertical search: one page of the filtered,
// sorted result set plus the sidebar facets and execution metadata.
type SearchResult[T any] struct {
	// Query echoes the normalized search query
	Query SearchQuery `json:"query"`

	// SortKey is the ordering that was applied
	SortKey SortKey `json:"sortKey"`

	// Page contains the requested slice of results
	Page Page[T] `json:"page"`

	// Facets lists the cheapest price per category value, for "from ₹X" labels
	Facets []Facet `json:"facets"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`
}

// Facet is the lowest price among items carrying one category value.
// MinPrice is nil when no item with a valid price carries the value.
type Facet struct {
	Axis     string   `json:"axis"`
	Value    string   `json:"value"`
	Count    int      `json:"count"`
	MinPrice *float64 `json:"minPrice"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the size of the fetched result set before filtering
	TotalResults int `json:"totalResults"`

	// FilteredResults is the number of items left after filtering
	FilteredResults int `json:"filteredResults"`

	// SourcesQueried lists the sources that were asked for results
	SourcesQueried []string `json:"sourcesQueried"`

	// SourcesFailed lists the sources that failed or timed out
	SourcesFailed []string `json:"sourcesFailed"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`

	// CacheHit indicates whether the result set came from the cache
	CacheHit bool `json:"cacheHit"`
}

// NewSearchResult creates a SearchResult and fills derived metadata counts.
func NewSearchResult[T any](query SearchQuery, key SortKey, page Page[T], facets []Facet, metadata SearchMetadata) SearchResult[T] {
	if page.Items == nil {
		page.Items = []T{}
	}
	if facets == nil {
		facets = []Facet{}
	}
	if metadata.SourcesQueried == nil {
		metadata.SourcesQueried = []string{}
	}
	if metadata.SourcesFailed == nil {
		metadata.SourcesFailed = []string{}
	}
	metadata.FilteredResults = page.Total

	return SearchResult[T]{
		Query:    query,
		SortKey:  key,
		Page:     page,
		Facets:   facets,
		Metadata: metadata,
	}
}
