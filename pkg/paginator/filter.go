package paginator

import (
	"fmt"
	"strings"

	"github.com/aarondl/strmangle"
)

// SortDirection is the ordering applied to SortBy.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Normalize maps anything that is not "desc" to "asc".
func (d SortDirection) Normalize() SortDirection {
	if strings.EqualFold(string(d), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d.Normalize() == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// PageSizeOptions are the page sizes a listing screen offers.
var PageSizeOptions = []int{10, 20, 30, 40, 50}

const (
	// DefaultPage is the first page; pages are 1-indexed.
	DefaultPage = 1
	// DefaultPageSize is used when no or an unsupported page size is requested.
	DefaultPageSize = 10
)

// IsPageSizeAllowed reports whether n is one of PageSizeOptions.
func IsPageSizeAllowed(n int) bool {
	for _, o := range PageSizeOptions {
		if o == n {
			return true
		}
	}
	return false
}

// FilterOptions is the state driving one listing screen.
type FilterOptions struct {
	Page          int           `json:"page" form:"page"`
	PageSize      int           `json:"page_size" form:"page_size"`
	SortBy        string        `json:"sort_by,omitempty" form:"sort_by"`
	SortDirection SortDirection `json:"sort_direction,omitempty" form:"sort_direction"`
	Search        string        `json:"search,omitempty" form:"search"`
}

// DefaultFilter returns the state a listing screen starts from.
func DefaultFilter() FilterOptions {
	return FilterOptions{
		Page:          DefaultPage,
		PageSize:      DefaultPageSize,
		SortDirection: SortAsc,
	}
}

// Adjust normalizes a filter bound from user input.
func (f *FilterOptions) Adjust() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if !IsPageSizeAllowed(f.PageSize) {
		f.PageSize = DefaultPageSize
	}
	f.SortBy = strings.TrimSpace(f.SortBy)
	f.SortDirection = f.SortDirection.Normalize()
	f.Search = strings.TrimSpace(f.Search)
}

// SetPage moves to page n, clamped to [1, pageCount].
func (f FilterOptions) SetPage(n, pageCount int) FilterOptions {
	if pageCount < 1 {
		pageCount = 1
	}
	switch {
	case n < 1:
		n = 1
	case n > pageCount:
		n = pageCount
	}
	f.Page = n
	return f
}

// SetPageSize switches to page size n and goes back to the first page.
// Sizes outside PageSizeOptions leave the filter unchanged.
func (f FilterOptions) SetPageSize(n int) FilterOptions {
	if !IsPageSizeAllowed(n) {
		return f
	}
	f.PageSize = n
	f.Page = DefaultPage
	return f
}

// SetSearch replaces the search text and goes back to the first page.
// An empty string clears the search.
func (f FilterOptions) SetSearch(s string) FilterOptions {
	f.Search = strings.TrimSpace(s)
	f.Page = DefaultPage
	return f
}

// SetSort replaces the sort field and direction together.
func (f FilterOptions) SetSort(field string, dir SortDirection) FilterOptions {
	f.SortBy = strings.TrimSpace(field)
	f.SortDirection = dir.Normalize()
	return f
}

// HasSearch reports whether a search filter is active.
func (f FilterOptions) HasSearch() bool {
	return f.Search != ""
}

// Offset is the number of rows before the current page.
func (f FilterOptions) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Variables returns the GraphQL variables of a list query for orgID.
// The search variable is omitted when no search is active.
func (f FilterOptions) Variables(orgID string) map[string]any {
	vars := map[string]any{
		"organizationId": orgID,
		"page":           f.Page,
		"pageSize":       f.PageSize,
		"sortDirection":  string(f.SortDirection.Normalize()),
	}
	if f.SortBy != "" {
		vars["sortBy"] = graphQLField(f.SortBy)
	}
	if f.HasSearch() {
		vars["search"] = f.Search
	}
	return vars
}

// Key is a stable identifier of the filter, used for cache keys.
func (f FilterOptions) Key() string {
	return fmt.Sprintf("p=%d&s=%d&by=%s&dir=%s&q=%s",
		f.Page, f.PageSize, f.SortBy, f.SortDirection.Normalize(), strings.ToLower(f.Search))
}

// graphQLField accepts both snake_case and camelCase field names.
func graphQLField(field string) string {
	if !strings.Contains(field, "_") {
		return field
	}
	return strmangle.CamelCase(field)
}
