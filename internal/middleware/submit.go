package middleware

import (
	"net/http"

	"isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/response"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errSubmissionInFlight = errors.NewHTTPError(http.StatusTooManyRequests, "A submission for this form is already in progress", http.StatusTooManyRequests)

// SubmitOnce rejects a mutation while the same user has an identical one in flight.
func (m Middleware) SubmitOnce() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := scope.GetScopeFromContext(ctx).UserID + " " + c.Request.Method + " " + c.Request.URL.Path

		if !m.guard.Begin(key) {
			m.l.Warnf(ctx, "Duplicate submission rejected | Path: %s", c.Request.URL.Path)
			response.HttpError(c, errSubmissionInFlight)
			c.Abort()
			return
		}
		defer m.guard.End(key)

		c.Next()
	}
}
