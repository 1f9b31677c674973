package datatable

import "isp-dashboard/pkg/paginator"

// Column describes how one field of T is shown. Columns are declared once per
// entity and never mutated.
type Column[T any] struct {
	Accessor string
	Header   string
	// Value returns the raw cell value; it is used when Cell is nil.
	Value    func(T) any
	Cell     func(T) string
	Sortable bool
	Hidden   bool
}

// Props is everything Render needs. Render never fetches.
type Props[T any] struct {
	Data       []T
	TotalCount int64
	Columns    []Column[T]
	Filter     paginator.FilterOptions
	IsLoading  bool
}

// RowKind distinguishes data rows from placeholder rows.
type RowKind string

const (
	RowData    RowKind = "data"
	RowEmpty   RowKind = "empty"
	RowLoading RowKind = "loading"
)

// View is a rendered table.
type View struct {
	Headers    []Header   `json:"headers"`
	Rows       []Row      `json:"rows"`
	Pagination Pagination `json:"pagination"`
	Search     string     `json:"search"`
	Loading    bool       `json:"loading"`
}

// Header is one column heading. Next is the filter a click emits; nil when the
// column is not sortable or the table is loading.
type Header struct {
	Accessor string                   `json:"accessor"`
	Label    string                   `json:"label"`
	Sortable bool                     `json:"sortable"`
	Sorted   paginator.SortDirection  `json:"sorted,omitempty"`
	Next     *paginator.FilterOptions `json:"next,omitempty"`
}

// Row is one table row. Placeholder rows carry Text and a single spanning cell.
type Row struct {
	Kind  RowKind `json:"kind"`
	Cells []Cell  `json:"cells,omitempty"`
	Text  string  `json:"text,omitempty"`
	Span  int     `json:"span,omitempty"`
}

// Cell is one rendered value.
type Cell struct {
	Accessor string `json:"accessor"`
	Value    any    `json:"value,omitempty"`
	Text     string `json:"text"`
}

// Pagination is the pager state. Navigation filters are nil when disabled.
type Pagination struct {
	PageIndex   int                      `json:"page_index"`
	PageCount   int                      `json:"page_count"`
	TotalCount  int64                    `json:"total_count"`
	CanPrevious bool                     `json:"can_previous"`
	CanNext     bool                     `json:"can_next"`
	First       *paginator.FilterOptions `json:"first,omitempty"`
	Previous    *paginator.FilterOptions `json:"previous,omitempty"`
	Next        *paginator.FilterOptions `json:"next,omitempty"`
	Last        *paginator.FilterOptions `json:"last,omitempty"`
	PageSizes   []PageSizeOption         `json:"page_sizes"`
}

// PageSizeOption is one entry of the page-size selector.
type PageSizeOption struct {
	Size     int                     `json:"size"`
	Selected bool                    `json:"selected"`
	Disabled bool                    `json:"disabled"`
	Filter   paginator.FilterOptions `json:"filter"`
}
