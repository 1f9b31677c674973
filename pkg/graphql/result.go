package graphql

// Result is the outcome of one operation: either data or an error.
type Result[T any] struct {
	data T
	err  error
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure wraps err in a failed Result.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.err == nil
}

// Data returns the payload; the zero value on failure.
func (r Result[T]) Data() T {
	return r.data
}

// Err returns the failure, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns both halves.
func (r Result[T]) Unwrap() (T, error) {
	return r.data, r.err
}

// Map converts a successful Result with fn and passes failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Failure[U](r.err)
	}
	return Success(fn(r.data))
}
