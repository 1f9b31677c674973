package paginator

import (
	"slices"
	"strings"
)

// Page is one page of rows plus the count across all pages.
type Page[T any] struct {
	Rows       []T   `json:"rows"`
	TotalCount int64 `json:"total_count"`
}

// PageCount is ceil(total / pageSize), or 0 when pageSize is not positive.
func PageCount(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// PageCount returns the number of pages for pageSize.
func (p Page[T]) PageCount(pageSize int) int {
	return PageCount(p.TotalCount, pageSize)
}

// PageFromSlice cuts one page out of an unpaginated slice. A page past the
// end is empty but still reports the full count.
func PageFromSlice[T any](items []T, filter FilterOptions) Page[T] {
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	page := Page[T]{Rows: []T{}, TotalCount: int64(len(items))}

	start := filter.Offset()
	if start >= len(items) {
		return page
	}
	page.Rows = items[start:min(start+filter.PageSize, len(items))]
	return page
}

// LocalPage searches, sorts and pages a list the API only returns whole.
// match receives the lowercased search text; compare is looked up by SortBy.
func LocalPage[T any](items []T, filter FilterOptions, match func(item T, search string) bool, compare map[string]func(a, b T) int) Page[T] {
	rows := make([]T, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, item := range items {
		if search == "" || match == nil || match(item, search) {
			rows = append(rows, item)
		}
	}

	if cmp, ok := compare[filter.SortBy]; ok {
		desc := filter.SortDirection.Normalize() == SortDesc
		slices.SortStableFunc(rows, func(a, b T) int {
			if desc {
				return cmp(b, a)
			}
			return cmp(a, b)
		})
	}

	return PageFromSlice(rows, filter)
}
