package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// Source supplies the raw result set of one vertical for a search query.
// Implementations may fail or return an empty slice; the engine only ever sees the resolved slice.
type Source[T any] interface {
	// Name returns the unique identifier of this source.
	Name() string

	// Fetch returns every item matching the query's route, city or destination.
	Fetch(ctx context.Context, query SearchQuery) ([]T, error)
}
