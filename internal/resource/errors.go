package resource

import (
	"errors"

	"isp-dashboard/pkg/graphql"
)

var (
	ErrUnsupported = errors.New("resource: operation not supported")
	ErrMissingData = errors.New("resource: response has no data")
)

// IsNotFound reports whether err means the API returned no entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMissingData)
}

// NotFound replaces a missing-entity failure with notFound.
func NotFound[T any](res graphql.Result[T], notFound error) graphql.Result[T] {
	if IsNotFound(res.Err()) {
		return graphql.Failure[T](notFound)
	}
	return res
}
