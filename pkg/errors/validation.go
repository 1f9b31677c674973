package errors

import "strings"

// ValidationError is one rejected field with the reasons it was rejected.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + strings.Join(e.Messages, ", ")
}

// ValidationErrorCollector gathers every rejected field of one form so the
// client can mark all of them at once. Insertion order is kept.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

// Add appends err and returns c for chaining. A second error for a field
// already present merges its messages into the first.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	for _, existing := range c.errors {
		if existing.Field == err.Field {
			existing.Messages = append(existing.Messages, err.Messages...)
			return c
		}
	}
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return c != nil && len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	var b strings.Builder
	for i, err := range c.errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Fields maps every rejected field to its first message.
func (c *ValidationErrorCollector) Fields() map[string]string {
	fields := make(map[string]string, len(c.errors))
	for _, err := range c.errors {
		if len(err.Messages) > 0 {
			fields[err.Field] = err.Messages[0]
		}
	}
	return fields
}
