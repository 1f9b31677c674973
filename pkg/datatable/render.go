package datatable

import (
	"fmt"

	"isp-dashboard/pkg/paginator"
)

// Render turns props into a View.
func Render[T any](props Props[T]) View {
	filter := props.Filter
	filter.Adjust()

	columns := visible(props.Columns)
	return View{
		Headers:    headers(columns, filter, props.IsLoading),
		Rows:       rows(columns, props.Data, props.IsLoading),
		Pagination: pagination(filter, props.TotalCount, props.IsLoading),
		Search:     filter.Search,
		Loading:    props.IsLoading,
	}
}

func visible[T any](columns []Column[T]) []Column[T] {
	out := make([]Column[T], 0, len(columns))
	for _, c := range columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func headers[T any](columns []Column[T], filter paginator.FilterOptions, loading bool) []Header {
	out := make([]Header, len(columns))
	for i, c := range columns {
		h := Header{
			Accessor: c.Accessor,
			Label:    c.Header,
			Sortable: c.Sortable,
		}
		if c.Sortable && filter.SortBy == c.Accessor {
			h.Sorted = filter.SortDirection.Normalize()
		}
		if c.Sortable && !loading {
			dir := paginator.SortAsc
			if h.Sorted == paginator.SortAsc {
				dir = paginator.SortDesc
			}
			next := filter.SetSort(c.Accessor, dir)
			h.Next = &next
		}
		out[i] = h
	}
	return out
}

func rows[T any](columns []Column[T], data []T, loading bool) []Row {
	switch {
	case loading:
		return []Row{{Kind: RowLoading, Text: LoadingText, Span: len(columns)}}
	case len(data) == 0:
		return []Row{{Kind: RowEmpty, Text: EmptyText, Span: len(columns)}}
	}

	out := make([]Row, len(data))
	for i, item := range data {
		cells := make([]Cell, len(columns))
		for j, c := range columns {
			cells[j] = renderCell(c, item)
		}
		out[i] = Row{Kind: RowData, Cells: cells}
	}
	return out
}

func renderCell[T any](c Column[T], item T) Cell {
	cell := Cell{Accessor: c.Accessor}
	if c.Value != nil {
		cell.Value = c.Value(item)
	}
	switch {
	case c.Cell != nil:
		cell.Text = c.Cell(item)
	case cell.Value != nil:
		cell.Text = fmt.Sprint(cell.Value)
	}
	return cell
}

func pagination(filter paginator.FilterOptions, total int64, loading bool) Pagination {
	pageCount := paginator.PageCount(total, filter.PageSize)
	pageIndex := filter.Page - 1

	p := Pagination{
		PageIndex:   pageIndex,
		PageCount:   pageCount,
		TotalCount:  total,
		CanPrevious: pageIndex > 0 && !loading,
		CanNext:     pageIndex < pageCount-1 && !loading,
	}
	if p.CanPrevious {
		p.First = ptr(filter.SetPage(1, pageCount))
		p.Previous = ptr(filter.SetPage(filter.Page-1, pageCount))
	}
	if p.CanNext {
		p.Next = ptr(filter.SetPage(filter.Page+1, pageCount))
		p.Last = ptr(filter.SetPage(pageCount, pageCount))
	}

	p.PageSizes = make([]PageSizeOption, len(paginator.PageSizeOptions))
	for i, size := range paginator.PageSizeOptions {
		p.PageSizes[i] = PageSizeOption{
			Size:     size,
			Selected: size == filter.PageSize,
			Disabled: loading,
			Filter:   filter.SetPageSize(size),
		}
	}
	return p
}

func ptr(f paginator.FilterOptions) *paginator.FilterOptions {
	return &f
}
