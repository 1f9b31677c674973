package scope

import (
	"context"

	"isp-dashboard/internal/model"
)

type (
	scopeCtxKey struct{}
	tokenCtxKey struct{}
)

func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, scope)
}

// GetScopeFromContext returns the caller, or an anonymous scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	scope, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return scope
}

// SetTokenToContext stores the caller's bearer token so outgoing API calls can forward it.
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
