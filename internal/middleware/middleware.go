package middleware

import (
	"strings"

	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/response"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "
	// tokenQuery carries the token on websocket upgrades, where browsers cannot set headers.
	tokenQuery = "token"
)

// Auth returns a middleware that validates JWT tokens and sets the payload,
// the caller scope and the raw token in context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString, ok := bearerToken(c)
		if !ok {
			m.l.Warnf(ctx, "Missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = log.WithFields(ctx, "user_id", sc.UserID)
		ctx = scope.SetTokenToContext(ctx, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if c.IsWebsocket() {
			token := strings.TrimSpace(c.Query(tokenQuery))
			return token, token != ""
		}
		return "", false
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	return token, token != ""
}
