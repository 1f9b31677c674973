package listing

import (
	"context"
	"errors"
	"io"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/datatable"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

// ActionsAccessor is the accessor of the per-row edit/delete column.
// It is hidden from users without manage access.
const ActionsAccessor = "actions"

// ErrDenied is returned by Load when the caller may not view the screen.
var ErrDenied = errors.New("listing: access denied")

// Fetcher loads one page of T for an organization.
type Fetcher[T any] func(ctx context.Context, orgID string, filter paginator.FilterOptions) graphql.Result[paginator.Page[T]]

// Screen is a rendered listing screen.
type Screen struct {
	Table  datatable.View          `json:"table"`
	Filter paginator.FilterOptions `json:"filter"`
	Access permission.Access       `json:"access"`
}

// Container binds a fetcher to the table renderer for one entity.
type Container[T any] struct {
	columns []datatable.Column[T]
	fetch   Fetcher[T]
}

// New creates a Container.
func New[T any](columns []datatable.Column[T], fetch Fetcher[T]) *Container[T] {
	return &Container[T]{columns: columns, fetch: fetch}
}

// Load fetches the page described by filter and renders it. A filter past the
// last page, or past page 1 of an empty result, is clamped and fetched once
// more. Denied access never fetches.
func (c *Container[T]) Load(ctx context.Context, orgID string, filter paginator.FilterOptions, access permission.Access) (Screen, error) {
	if !access.CanView() {
		return Screen{Access: permission.AccessDenied}, ErrDenied
	}

	filter.Adjust()
	page, err := c.fetch(ctx, orgID, filter).Unwrap()
	if err != nil {
		return Screen{}, err
	}

	if pageCount := page.PageCount(filter.PageSize); filter.Page > max(pageCount, 1) {
		filter = filter.SetPage(pageCount, pageCount)
		if page, err = c.fetch(ctx, orgID, filter).Unwrap(); err != nil {
			return Screen{}, err
		}
	}

	view := datatable.Render(datatable.Props[T]{
		Data:       page.Rows,
		TotalCount: page.TotalCount,
		Columns:    c.columnsFor(access),
		Filter:     filter,
	})

	return Screen{Table: view, Filter: filter, Access: access}, nil
}

// Apply returns the filter after action, given the total the current page reported.
func (c *Container[T]) Apply(filter paginator.FilterOptions, action paginator.Action, totalCount int64) (paginator.FilterOptions, error) {
	filter.Adjust()
	return filter.Apply(action, paginator.PageCount(totalCount, filter.PageSize))
}

// Dispatch applies action and loads the resulting page.
func (c *Container[T]) Dispatch(ctx context.Context, orgID string, filter paginator.FilterOptions, action paginator.Action, totalCount int64, access permission.Access) (Screen, error) {
	next, err := c.Apply(filter, action, totalCount)
	if err != nil {
		return Screen{}, err
	}
	return c.Load(ctx, orgID, next, access)
}

// Export loads the page and writes it as a PDF titled title.
func (c *Container[T]) Export(ctx context.Context, w io.Writer, title, orgID string, filter paginator.FilterOptions, access permission.Access) error {
	screen, err := c.Load(ctx, orgID, filter, access)
	if err != nil {
		return err
	}
	return datatable.WritePDF(w, title, screen.Table)
}

func (c *Container[T]) columnsFor(access permission.Access) []datatable.Column[T] {
	if access.CanManage() {
		return c.columns
	}
	out := make([]datatable.Column[T], len(c.columns))
	copy(out, c.columns)
	for i := range out {
		if out[i].Accessor == ActionsAccessor {
			out[i].Hidden = true
		}
	}
	return out
}
