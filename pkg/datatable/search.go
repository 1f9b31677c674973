package datatable

import "isp-dashboard/pkg/paginator"

// SearchInput buffers what the user types so it shows immediately, while the
// filter's search only changes on Commit.
type SearchInput struct {
	value    string
	external string
}

// NewSearchInput starts the buffer from the filter's current search.
func NewSearchInput(external string) *SearchInput {
	return &SearchInput{value: external, external: external}
}

// Type replaces the buffered text.
func (s *SearchInput) Type(v string) {
	s.value = v
}

// Value is the text to display.
func (s *SearchInput) Value() string {
	return s.value
}

// Commit returns the action that pushes the buffer into the filter.
func (s *SearchInput) Commit() paginator.Action {
	s.external = s.value
	return paginator.Action{Kind: paginator.ActionSetSearch, Search: s.value}
}

// Sync mirrors a new external value. An unchanged external value leaves
// in-progress typing alone.
func (s *SearchInput) Sync(external string) {
	if external == s.external {
		return
	}
	s.external = external
	s.value = external
}
