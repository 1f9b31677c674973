package resource

// Document is one GraphQL operation and the root field holding its result.
type Document struct {
	Operation string
	Query     string
	Field     string
}

// Descriptor tells a Gateway how one entity type is read and written upstream.
// Documents left empty are not supported for that entity.
type Descriptor[T any] struct {
	Typename string
	List     Document
	Detail   Document
	Create   Document
	Update   Document
	Delete   Document
	ID       func(T) string
	// NoCache keeps single entities out of the cache. Every Detail hits the API.
	NoCache bool
}
