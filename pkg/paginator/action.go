package paginator

import "errors"

// ActionKind names a user interaction on a listing screen.
type ActionKind string

const (
	ActionSetPage     ActionKind = "set_page"
	ActionSetPageSize ActionKind = "set_page_size"
	ActionSetSearch   ActionKind = "set_search"
	ActionSetSort     ActionKind = "set_sort"
)

// ErrUnknownAction is returned by Apply for an unsupported ActionKind.
var ErrUnknownAction = errors.New("paginator: unknown action")

// Action is a filter-change event emitted by a table.
type Action struct {
	Kind          ActionKind    `json:"kind"`
	Page          int           `json:"page,omitempty"`
	PageSize      int           `json:"page_size,omitempty"`
	SortBy        string        `json:"sort_by,omitempty"`
	SortDirection SortDirection `json:"sort_direction,omitempty"`
	Search        string        `json:"search"`
}

// Apply returns the filter that results from action.
func (f FilterOptions) Apply(action Action, pageCount int) (FilterOptions, error) {
	switch action.Kind {
	case ActionSetPage:
		return f.SetPage(action.Page, pageCount), nil
	case ActionSetPageSize:
		return f.SetPageSize(action.PageSize), nil
	case ActionSetSearch:
		return f.SetSearch(action.Search), nil
	case ActionSetSort:
		return f.SetSort(action.SortBy, action.SortDirection), nil
	default:
		return f, ErrUnknownAction
	}
}
