package permission

import (
	"context"
	"net/http"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/locale"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/response"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

// OrganizationLoader fetches an organization with its members and roles.
type OrganizationLoader interface {
	Organization(ctx context.Context, sc model.Scope, id string) (model.Organization, error)
}

// Gate builds middleware that decides access before any handler runs.
type Gate struct {
	l        log.Logger
	loader   OrganizationLoader
	notFound error
}

// NewGate creates a Gate. notFound is the loader's error for an unknown organization.
func NewGate(l log.Logger, loader OrganizationLoader, notFound error) Gate {
	return Gate{l: l, loader: loader, notFound: notFound}
}

type accessCtxKey struct{}

const (
	paramOrganizationID = "organizationId"
	ginAccessKey        = "permission.access"
	ginOrganizationKey  = "permission.organization"
	ginFeatureKey       = "permission.feature"
)

// Require resolves the caller's access to feature. Denied requests are answered
// with a placeholder and never reach the handler.
func (g Gate) Require(feature Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		org, ok := g.load(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		sc := scope.GetScopeFromContext(ctx)
		access := Resolve(org, sc.UserID, feature)
		if access == AccessDenied {
			g.l.Infof(ctx, "internal.permission.Gate.Require: user %s denied %s in %s", sc.UserID, feature.Name, org.ID)
			Deny(c, feature)
			return
		}

		g.grant(c, org, feature, access)
	}
}

// RequireMember lets any active member through with read-only access.
func (g Gate) RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		org, ok := g.load(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		sc := scope.GetScopeFromContext(ctx)
		if member, found := org.FindMember(sc.UserID); !found || !member.IsActive() {
			g.l.Infof(ctx, "internal.permission.Gate.RequireMember: user %s is not a member of %s", sc.UserID, org.ID)
			Deny(c, FeatureMembership)
			return
		}

		g.grant(c, org, FeatureMembership, AccessReadOnly)
	}
}

func (g Gate) load(c *gin.Context) (model.Organization, bool) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	org, err := g.loader.Organization(ctx, sc, c.Param(paramOrganizationID))
	if err != nil {
		if g.notFound != nil && err == g.notFound {
			response.Error(c, errors.NewHTTPError(http.StatusNotFound, "Organization not found", http.StatusNotFound), nil)
			c.Abort()
			return model.Organization{}, false
		}
		g.l.Errorf(ctx, "internal.permission.Gate.load.Organization: %v", err)
		response.Error(c, err, nil)
		c.Abort()
		return model.Organization{}, false
	}
	return org, true
}

func (g Gate) grant(c *gin.Context, org model.Organization, feature Feature, access Access) {
	c.Set(ginAccessKey, access)
	c.Set(ginFeatureKey, feature)
	c.Set(ginOrganizationKey, org)
	ctx := log.WithFields(c.Request.Context(), "organization_id", org.ID)
	c.Request = c.Request.WithContext(SetAccessToContext(ctx, access))
	c.Next()
}

// RequireManage rejects the request unless Require granted full access.
func RequireManage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AccessFromGin(c).CanManage() {
			feature, _ := c.Get(ginFeatureKey)
			name := ""
			if f, ok := feature.(Feature); ok {
				name = f.Name
			}
			response.Error(c, errors.NewPermissionError(response.PermissionErrorCode, name, string(AccessFull)), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Deny answers with the access-denied placeholder.
func Deny(c *gin.Context, feature Feature) {
	ctx := c.Request.Context()
	c.AbortWithStatusJSON(http.StatusForbidden, response.Resp{
		ErrorCode: http.StatusForbidden,
		Message:   locale.T(ctx, locale.MsgAccessDenied),
		Data: Placeholder{
			Feature: feature.Name,
			Title:   locale.T(ctx, locale.MsgAccessDenied),
			Hint:    locale.T(ctx, locale.MsgAccessDeniedHint),
		},
	})
}

// AccessFromGin returns the access stored by Require, AccessDenied when absent.
func AccessFromGin(c *gin.Context) Access {
	if v, ok := c.Get(ginAccessKey); ok {
		if a, ok := v.(Access); ok {
			return a
		}
	}
	return AccessDenied
}

// OrganizationFromGin returns the organization loaded by Require.
func OrganizationFromGin(c *gin.Context) (model.Organization, bool) {
	v, ok := c.Get(ginOrganizationKey)
	if !ok {
		return model.Organization{}, false
	}
	org, ok := v.(model.Organization)
	return org, ok
}

// SetAccessToContext stores access in ctx.
func SetAccessToContext(ctx context.Context, access Access) context.Context {
	return context.WithValue(ctx, accessCtxKey{}, access)
}

// AccessFromContext returns the access stored in ctx, AccessDenied when absent.
func AccessFromContext(ctx context.Context) Access {
	if a, ok := ctx.Value(accessCtxKey{}).(Access); ok {
		return a
	}
	return AccessDenied
}
