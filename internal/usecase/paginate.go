package usecase

import "github.com/tripnest/storefront/internal/domain"

// Paginate returns the slice [index*size, (index+1)*size) of items.
// HasMore is true when (index+1)*size < len(items).
// A non-positive size, a negative index or an index past the last page yields
// an empty page with HasMore false. Items are copied; the input is not retained.
func Paginate[T any](items []T, page domain.PageRequest) domain.Page[T] {
	result := domain.Page[T]{
		Items: []T{},
		Index: page.Index,
		Size:  page.Size,
		Total: len(items),
	}

	if page.Size <= 0 || page.Index < 0 {
		return result
	}

	// Compare against the page count first so index*size cannot overflow
	pages := (len(items) + page.Size - 1) / page.Size
	if page.Index >= pages {
		return result
	}

	start := page.Index * page.Size
	end := min(start+page.Size, len(items))

	result.Items = append(result.Items, items[start:end]...)
	result.HasMore = end < len(items)
	return result
}
