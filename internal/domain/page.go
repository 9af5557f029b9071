package domain

// PageRequest selects one page of a result set. Index is zero-based; Size must be positive.
type PageRequest struct {
	Size  int `json:"size"`
	Index int `json:"index"`
}

// Page is one slice of an ordered result set.
type Page[T any] struct {
	// Items holds the page contents; never nil
	Items []T `json:"items"`

	// HasMore is true when a later page holds at least one item
	HasMore bool `json:"hasMore"`

	// Index and Size echo the request
	Index int `json:"index"`
	Size  int `json:"size"`

	// Total is the length of the full result set being paged
	Total int `json:"total"`
}
