package utils

// Paginate returns page number `page` (1-based) of size `limit` from items.
// A page past the end yields an empty slice, never an error: the UI disables
// "Next" at the boundary instead of handling a failure.
func Paginate[T any](items []T, page, limit int) []T {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(totalItems / limit).
func TotalPages(totalItems, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}
