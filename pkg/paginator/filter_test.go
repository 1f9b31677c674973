package paginator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	for _, size := range PageSizeOptions {
		for _, total := range []int64{0, 1, 9, 10, 11, 49, 50, 51, 99, 100, 101, 1234} {
			want := int((total + int64(size) - 1) / int64(size))
			assert.Equalf(t, want, PageCount(total, size), "total=%d size=%d", total, size)
		}
	}
	assert.Equal(t, 0, PageCount(10, 0))
}

func TestFilterAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   FilterOptions
		want FilterOptions
	}{
		{
			name: "zero value",
			in:   FilterOptions{},
			want: FilterOptions{Page: 1, PageSize: 10, SortDirection: SortAsc},
		},
		{
			name: "unsupported page size",
			in:   FilterOptions{Page: 3, PageSize: 25, SortDirection: "DESC"},
			want: FilterOptions{Page: 3, PageSize: 10, SortDirection: SortDesc},
		},
		{
			name: "trims search and sort",
			in:   FilterOptions{Page: -2, PageSize: 50, SortBy: " name ", SortDirection: "sideways", Search: "  acme "},
			want: FilterOptions{Page: 1, PageSize: 50, SortBy: "name", SortDirection: SortAsc, Search: "acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Adjust()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetPageClamps(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, 3, f.SetPage(3, 5).Page)
	assert.Equal(t, 5, f.SetPage(9, 5).Page)
	assert.Equal(t, 1, f.SetPage(0, 5).Page)
	assert.Equal(t, 1, f.SetPage(4, 0).Page)

	moved := FilterOptions{Page: 1, PageSize: 20, SortBy: "name", SortDirection: SortDesc, Search: "x"}.SetPage(2, 4)
	assert.Equal(t, FilterOptions{Page: 2, PageSize: 20, SortBy: "name", SortDirection: SortDesc, Search: "x"}, moved)
}

func TestPageSizeAndSearchResetPage(t *testing.T) {
	for page := 1; page <= 7; page++ {
		start := FilterOptions{Page: page, PageSize: 10, SortDirection: SortAsc}

		for _, size := range PageSizeOptions {
			assert.Equal(t, 1, start.SetPageSize(size).Page)
			assert.Equal(t, size, start.SetPageSize(size).PageSize)
		}
		for _, s := range []string{"", "acme", "  "} {
			assert.Equal(t, 1, start.SetSearch(s).Page)
		}
	}
}

func TestSetPageSizeRejectsUnknownSize(t *testing.T) {
	start := FilterOptions{Page: 4, PageSize: 20, SortDirection: SortAsc}
	assert.Equal(t, start, start.SetPageSize(15))
}

func TestSetSearchEmptyClears(t *testing.T) {
	f := DefaultFilter().SetSearch("router")
	assert.True(t, f.HasSearch())

	f = f.SetSearch("")
	assert.False(t, f.HasSearch())
	_, ok := f.Variables("org-1")["search"]
	assert.False(t, ok)
}

func TestSetSortReplacesBoth(t *testing.T) {
	f := FilterOptions{Page: 2, PageSize: 10, SortBy: "name", SortDirection: SortDesc}.SetSort("price", SortAsc)
	assert.Equal(t, "price", f.SortBy)
	assert.Equal(t, SortAsc, f.SortDirection)
	assert.Equal(t, 2, f.Page)
}

func TestApply(t *testing.T) {
	f := FilterOptions{Page: 3, PageSize: 10, SortDirection: SortAsc}

	got, err := f.Apply(Action{Kind: ActionSetPage, Page: 4}, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Page)

	got, err = f.Apply(Action{Kind: ActionSetPageSize, PageSize: 30}, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 30, got.PageSize)

	got, err = f.Apply(Action{Kind: ActionSetSearch, Search: "kim"}, 6)
	require.NoError(t, err)
	assert.Equal(t, "kim", got.Search)
	assert.Equal(t, 1, got.Page)

	got, err = f.Apply(Action{Kind: ActionSetSort, SortBy: "createdAt", SortDirection: SortDesc}, 6)
	require.NoError(t, err)
	assert.Equal(t, "createdAt", got.SortBy)
	assert.Equal(t, SortDesc, got.SortDirection)

	_, err = f.Apply(Action{Kind: "explode"}, 6)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestVariables(t *testing.T) {
	f := FilterOptions{Page: 2, PageSize: 20, SortBy: "created_at", SortDirection: SortDesc, Search: "jane"}
	vars := f.Variables("org-9")

	assert.Equal(t, "org-9", vars["organizationId"])
	assert.Equal(t, 2, vars["page"])
	assert.Equal(t, 20, vars["pageSize"])
	assert.Equal(t, "createdAt", vars["sortBy"])
	assert.Equal(t, "desc", vars["sortDirection"])
	assert.Equal(t, "jane", vars["search"])

	vars = DefaultFilter().Variables("org-9")
	_, hasSort := vars["sortBy"]
	assert.False(t, hasSort)
}

func TestPageFromSlice(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	p := PageFromSlice(items, FilterOptions{Page: 3, PageSize: 10})
	assert.Equal(t, []int{20, 21, 22}, p.Rows)
	assert.Equal(t, int64(23), p.TotalCount)
	assert.Equal(t, 3, p.PageCount(10))
}

func TestLocalPage(t *testing.T) {
	names := []string{"Wanjiru", "amina", "Otieno", "Achieng", "Kamau"}
	match := func(s, q string) bool { return strings.Contains(strings.ToLower(s), q) }
	compare := map[string]func(a, b string) int{
		"name": func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) },
	}

	tests := []struct {
		name   string
		filter FilterOptions
		want   []string
		total  int64
	}{
		{name: "unsorted keeps order", filter: FilterOptions{Page: 1, PageSize: 10}, want: names, total: 5},
		{name: "sorted asc", filter: FilterOptions{Page: 1, PageSize: 2, SortBy: "name"}, want: []string{"Achieng", "amina"}, total: 5},
		{name: "sorted desc page 2", filter: FilterOptions{Page: 2, PageSize: 2, SortBy: "name", SortDirection: SortDesc}, want: []string{"Kamau", "amina"}, total: 5},
		{name: "search", filter: FilterOptions{Page: 1, PageSize: 10, Search: " AM"}, want: []string{"amina", "Kamau"}, total: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LocalPage(names, tt.filter, match, compare)
			assert.Equal(t, tt.want, p.Rows)
			assert.Equal(t, tt.total, p.TotalCount)
		})
	}
}

func TestPageFromSlicePastEnd(t *testing.T) {
	p := PageFromSlice([]string{"a", "b"}, FilterOptions{Page: 4})
	assert.Empty(t, p.Rows)
	assert.Equal(t, int64(2), p.TotalCount)
}
