package datatable

const (
	EmptyText   = "No results."
	LoadingText = "Loading..."
	DateLayout  = "2006-01-02"
)
