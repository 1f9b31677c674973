package datatable

import (
	"bytes"
	"fmt"
	"testing"

	"isp-dashboard/pkg/paginator"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pkg struct {
	Name  string
	Price float64
}

var pkgColumns = []Column[pkg]{
	{Accessor: "name", Header: "Name", Value: func(p pkg) any { return p.Name }, Sortable: true},
	{Accessor: "price", Header: "Price", Cell: func(p pkg) string { return fmt.Sprintf("KES %.0f", p.Price) }},
	{Accessor: "actions", Header: "", Hidden: true},
}

func filterAt(page, size int) paginator.FilterOptions {
	f := paginator.DefaultFilter()
	f.Page = page
	f.PageSize = size
	return f
}

func TestRenderRows(t *testing.T) {
	view := Render(Props[pkg]{
		Data:       []pkg{{Name: "Basic", Price: 500}},
		TotalCount: 1,
		Columns:    pkgColumns,
		Filter:     filterAt(1, 10),
	})

	want := []Row{{
		Kind: RowData,
		Cells: []Cell{
			{Accessor: "name", Value: "Basic", Text: "Basic"},
			{Accessor: "price", Text: "KES 500"},
		},
	}}
	if diff := cmp.Diff(want, view.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, view.Headers, 2)
}

func TestRenderPlaceholders(t *testing.T) {
	empty := Render(Props[pkg]{Columns: pkgColumns, Filter: filterAt(1, 10)})
	require.Len(t, empty.Rows, 1)
	assert.Equal(t, Row{Kind: RowEmpty, Text: "No results.", Span: 2}, empty.Rows[0])

	loading := Render(Props[pkg]{Data: []pkg{{Name: "Basic"}}, Columns: pkgColumns, Filter: filterAt(1, 10), IsLoading: true})
	require.Len(t, loading.Rows, 1)
	assert.Equal(t, RowLoading, loading.Rows[0].Kind)
}

func TestPaginationEnablement(t *testing.T) {
	for _, size := range paginator.PageSizeOptions {
		for _, total := range []int64{0, 1, 9, 10, 11, 49, 50, 51, 137} {
			pageCount := paginator.PageCount(total, size)
			for page := 1; page <= max(pageCount, 1); page++ {
				view := Render(Props[pkg]{TotalCount: total, Columns: pkgColumns, Filter: filterAt(page, size)})
				p := view.Pagination
				name := fmt.Sprintf("size=%d total=%d page=%d", size, total, page)

				assert.Equal(t, int((total+int64(size)-1)/int64(size)), p.PageCount, name)
				assert.Equal(t, p.PageIndex < p.PageCount-1, p.CanNext, name)
				if pageCount > 0 {
					assert.Equal(t, p.PageIndex == pageCount-1, !p.CanNext, name)
				}
				assert.Equal(t, page > 1, p.CanPrevious, name)
			}
		}
	}
}

func TestPaginationFilters(t *testing.T) {
	view := Render(Props[pkg]{TotalCount: 45, Columns: pkgColumns, Filter: filterAt(2, 10)})
	p := view.Pagination

	require.NotNil(t, p.First)
	require.NotNil(t, p.Previous)
	require.NotNil(t, p.Next)
	require.NotNil(t, p.Last)
	assert.Equal(t, 1, p.First.Page)
	assert.Equal(t, 1, p.Previous.Page)
	assert.Equal(t, 3, p.Next.Page)
	assert.Equal(t, 5, p.Last.Page)

	for _, opt := range p.PageSizes {
		assert.Equal(t, 1, opt.Filter.Page)
		assert.Equal(t, opt.Size == 10, opt.Selected)
	}
}

func TestLoadingDisablesControls(t *testing.T) {
	view := Render(Props[pkg]{TotalCount: 45, Columns: pkgColumns, Filter: filterAt(2, 10), IsLoading: true})
	p := view.Pagination

	assert.False(t, p.CanPrevious)
	assert.False(t, p.CanNext)
	assert.Nil(t, p.Next)
	assert.Nil(t, view.Headers[0].Next)
	for _, opt := range p.PageSizes {
		assert.True(t, opt.Disabled)
	}
}

func TestHeaderSortToggle(t *testing.T) {
	view := Render(Props[pkg]{Columns: pkgColumns, Filter: filterAt(3, 10)})
	require.NotNil(t, view.Headers[0].Next)
	assert.Equal(t, "name", view.Headers[0].Next.SortBy)
	assert.Equal(t, paginator.SortAsc, view.Headers[0].Next.SortDirection)
	assert.Nil(t, view.Headers[1].Next)

	sorted := filterAt(1, 10).SetSort("name", paginator.SortAsc)
	view = Render(Props[pkg]{Columns: pkgColumns, Filter: sorted})
	assert.Equal(t, paginator.SortAsc, view.Headers[0].Sorted)
	assert.Equal(t, paginator.SortDesc, view.Headers[0].Next.SortDirection)
}

func TestSearchInput(t *testing.T) {
	s := NewSearchInput("")
	s.Type("jo")
	s.Sync("")
	assert.Equal(t, "jo", s.Value(), "unchanged external value keeps typing")

	action := s.Commit()
	assert.Equal(t, paginator.Action{Kind: paginator.ActionSetSearch, Search: "jo"}, action)

	s.Sync("")
	assert.Equal(t, "", s.Value())
}

func TestWritePDF(t *testing.T) {
	view := Render(Props[pkg]{
		Data:       []pkg{{Name: "Basic", Price: 500}, {Name: "A very long package name that will not fit in the column", Price: 1500}},
		TotalCount: 2,
		Columns:    pkgColumns,
		Filter:     filterAt(1, 10),
	})

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Packages", view))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
