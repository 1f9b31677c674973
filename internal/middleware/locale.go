package middleware

import (
	"isp-dashboard/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale reads the "lang" header, falling back to Accept-Language, and stores
// the parsed language in the request context.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("lang")
		if header == "" {
			header = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(header))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
