package listing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/datatable"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct{ ID string }

var columns = []datatable.Column[row]{
	{Accessor: "id", Header: "ID", Value: func(r row) any { return r.ID }, Sortable: true},
	{Accessor: ActionsAccessor, Header: "Actions", Cell: func(row) string { return "Edit | Delete" }},
}

type fakeFetcher struct {
	total int64
	calls []paginator.FilterOptions
	err   error
}

func (f *fakeFetcher) fetch(_ context.Context, _ string, filter paginator.FilterOptions) graphql.Result[paginator.Page[row]] {
	f.calls = append(f.calls, filter)
	if f.err != nil {
		return graphql.Failure[paginator.Page[row]](f.err)
	}
	start := int64(filter.Offset())
	var rows []row
	for i := start; i < f.total && i < start+int64(filter.PageSize); i++ {
		rows = append(rows, row{ID: string(rune('a' + i%26))})
	}
	return graphql.Success(paginator.Page[row]{Rows: rows, TotalCount: f.total})
}

func TestLoadDeniedNeverFetches(t *testing.T) {
	f := &fakeFetcher{total: 5}
	c := New(columns, f.fetch)

	screen, err := c.Load(context.Background(), "org", paginator.DefaultFilter(), permission.AccessDenied)
	assert.ErrorIs(t, err, ErrDenied)
	assert.Equal(t, permission.AccessDenied, screen.Access)
	assert.Empty(t, f.calls)
}

func TestLoadReadOnlyHidesActions(t *testing.T) {
	f := &fakeFetcher{total: 3}
	c := New(columns, f.fetch)

	screen, err := c.Load(context.Background(), "org", paginator.DefaultFilter(), permission.AccessReadOnly)
	require.NoError(t, err)
	require.Len(t, screen.Table.Headers, 1)
	assert.Equal(t, "id", screen.Table.Headers[0].Accessor)

	screen, err = c.Load(context.Background(), "org", paginator.DefaultFilter(), permission.AccessFull)
	require.NoError(t, err)
	assert.Len(t, screen.Table.Headers, 2)
}

func TestLoadClampsPastLastPage(t *testing.T) {
	f := &fakeFetcher{total: 25}
	c := New(columns, f.fetch)

	filter := paginator.DefaultFilter()
	filter.Page = 9
	screen, err := c.Load(context.Background(), "org", filter, permission.AccessFull)
	require.NoError(t, err)

	require.Len(t, f.calls, 2)
	assert.Equal(t, 3, screen.Filter.Page)
	assert.Equal(t, 2, screen.Table.Pagination.PageIndex)
	assert.False(t, screen.Table.Pagination.CanNext)
	assert.Len(t, screen.Table.Rows, 5)
}

func TestLoadEmptyResetsToFirstPage(t *testing.T) {
	f := &fakeFetcher{total: 0}
	c := New(columns, f.fetch)

	filter := paginator.DefaultFilter()
	filter.Page = 5
	screen, err := c.Load(context.Background(), "org", filter, permission.AccessFull)
	require.NoError(t, err)

	require.Len(t, f.calls, 2)
	assert.Equal(t, 1, f.calls[1].Page)
	assert.Equal(t, 1, screen.Filter.Page)
	assert.Equal(t, 0, screen.Table.Pagination.PageIndex)
	assert.False(t, screen.Table.Pagination.CanPrevious)
	assert.Empty(t, screen.Table.Rows)
}

func TestLoadError(t *testing.T) {
	f := &fakeFetcher{err: errors.New("upstream down")}
	c := New(columns, f.fetch)

	_, err := c.Load(context.Background(), "org", paginator.DefaultFilter(), permission.AccessFull)
	assert.EqualError(t, err, "upstream down")
}

func TestDispatch(t *testing.T) {
	f := &fakeFetcher{total: 45}
	c := New(columns, f.fetch)

	filter := paginator.DefaultFilter()
	filter.Page = 4

	screen, err := c.Dispatch(context.Background(), "org", filter,
		paginator.Action{Kind: paginator.ActionSetPageSize, PageSize: 20}, 45, permission.AccessFull)
	require.NoError(t, err)
	assert.Equal(t, 1, screen.Filter.Page)
	assert.Equal(t, 20, screen.Filter.PageSize)

	_, err = c.Dispatch(context.Background(), "org", filter, paginator.Action{Kind: "bogus"}, 45, permission.AccessFull)
	assert.ErrorIs(t, err, paginator.ErrUnknownAction)
}

func TestExport(t *testing.T) {
	f := &fakeFetcher{total: 2}
	c := New(columns, f.fetch)

	var buf bytes.Buffer
	require.NoError(t, c.Export(context.Background(), &buf, "Rows", "org", paginator.DefaultFilter(), permission.AccessReadOnly))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
