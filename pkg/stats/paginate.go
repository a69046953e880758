package stats

// DefaultPageSize is the number of matches shown per history page.
const DefaultPageSize = 10

// Page is a slice of an ordered list plus the page count of the whole list.
type Page[T any] struct {
	Subset     []T `json:"subset"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// TotalPages returns ceil(length / pageSize), at least one.
func TotalPages(length, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return max(1, (length+pageSize-1)/pageSize)
}

// Paginate returns the requested page of rows.
// Pages outside of the list give an empty subset, the caller decides how to navigate.
func Paginate[T any](rows []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	result := Page[T]{
		Subset:     []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(rows), pageSize),
	}

	if page < 1 {
		return result
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return result
	}
	end := min(start+pageSize, len(rows))

	result.Subset = rows[start:end]
	return result
}
