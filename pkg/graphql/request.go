package graphql

// Request is one named GraphQL document with its variables.
type Request struct {
	Operation string
	Query     string
	Variables map[string]any
}

// NewRequest creates a request for the named operation.
func NewRequest(operation, query string) *Request {
	return &Request{
		Operation: operation,
		Query:     query,
		Variables: make(map[string]any),
	}
}

// Var sets a variable and returns the request for chaining.
func (r *Request) Var(key string, value any) *Request {
	r.Variables[key] = value
	return r
}

// Vars sets every entry of vars.
func (r *Request) Vars(vars map[string]any) *Request {
	for k, v := range vars {
		r.Variables[k] = v
	}
	return r
}
