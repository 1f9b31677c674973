package permission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrganization() model.Organization {
	return model.Organization{
		ID: "org-1",
		Roles: []model.Role{
			{ID: "admin", Permissions: []string{model.PermViewPackages, model.PermManagePackages}},
			{ID: "viewer", Permissions: []string{model.PermViewPackages}},
			{ID: "nobody", Permissions: []string{}},
			{ID: "manage-only", Permissions: []string{model.PermManagePackages}},
		},
		Members: []model.Member{
			{UserID: "u-admin", RoleID: "admin", Status: model.MemberStatusActive},
			{UserID: "u-viewer", RoleID: "viewer", Status: model.MemberStatusActive},
			{UserID: "u-nobody", RoleID: "nobody", Status: model.MemberStatusActive},
			{UserID: "u-invited", RoleID: "admin", Status: model.MemberStatusInvited},
			{UserID: "u-orphan", RoleID: "deleted-role", Status: model.MemberStatusActive},
			{UserID: "u-manage-only", RoleID: "manage-only", Status: model.MemberStatusActive},
		},
	}
}

func TestResolve(t *testing.T) {
	org := testOrganization()

	tests := []struct {
		user string
		want Access
	}{
		{"u-admin", AccessFull},
		{"u-viewer", AccessReadOnly},
		{"u-nobody", AccessDenied},
		{"u-invited", AccessDenied},
		{"u-orphan", AccessDenied},
		{"u-manage-only", AccessDenied},
		{"stranger", AccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(org, tt.user, FeaturePackages))
		})
	}
}

func TestHasPermissionIsFlat(t *testing.T) {
	org := testOrganization()
	assert.True(t, HasPermission(org, "u-admin", model.PermManagePackages))
	assert.False(t, HasPermission(org, "u-admin", model.PermViewCustomers))
	assert.Equal(t, []string{model.PermViewPackages}, Granted(org, "u-viewer"))
	assert.Empty(t, Granted(org, "stranger"))
}

type fakeLoader struct {
	org   model.Organization
	err   error
	calls int
}

func (f *fakeLoader) Organization(context.Context, model.Scope, string) (model.Organization, error) {
	f.calls++
	return f.org, f.err
}

func newRouter(loader OrganizationLoader, userID string, listed *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
	})
	gate := NewGate(log.NewNop(), loader, errNotFound)
	g := r.Group("/api/v1/:organizationId/isp/packages", gate.Require(FeaturePackages))
	g.GET("", func(c *gin.Context) {
		*listed++
		c.JSON(http.StatusOK, gin.H{"access": AccessFromGin(c)})
	})
	g.DELETE("/:id", RequireManage(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

var errNotFound = errors.New("organization not found")

func TestGate(t *testing.T) {
	t.Run("denied renders placeholder without listing", func(t *testing.T) {
		listed := 0
		r := newRouter(&fakeLoader{org: testOrganization()}, "u-nobody", &listed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/org-1/isp/packages", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, listed)

		var body struct {
			Data Placeholder `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "packages", body.Data.Feature)
		assert.Equal(t, "Access denied", body.Data.Title)
	})

	t.Run("read only lists but cannot delete", func(t *testing.T) {
		listed := 0
		r := newRouter(&fakeLoader{org: testOrganization()}, "u-viewer", &listed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/org-1/isp/packages", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"access":"read_only"}`, w.Body.String())
		assert.Equal(t, 1, listed)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/org-1/isp/packages/p1", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)

		var body struct {
			Errors struct {
				Feature  string `json:"feature"`
				Required string `json:"required"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "packages", body.Errors.Feature)
		assert.Equal(t, "full", body.Errors.Required)
	})

	t.Run("full access deletes", func(t *testing.T) {
		listed := 0
		r := newRouter(&fakeLoader{org: testOrganization()}, "u-admin", &listed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/org-1/isp/packages/p1", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown organization", func(t *testing.T) {
		listed := 0
		r := newRouter(&fakeLoader{err: errNotFound}, "u-admin", &listed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope/isp/packages", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequireMember(t *testing.T) {
	tests := []struct {
		user string
		want int
	}{
		{"u-nobody", http.StatusOK},
		{"u-invited", http.StatusForbidden},
		{"stranger", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(func(c *gin.Context) {
				ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: tt.user})
				c.Request = c.Request.WithContext(ctx)
			})
			gate := NewGate(log.NewNop(), &fakeLoader{org: testOrganization()}, errNotFound)
			r.GET("/api/v1/:organizationId/ws", gate.RequireMember(), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"access": AccessFromGin(c)})
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/org-1/ws", nil))
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"access":"read_only"}`, w.Body.String())
			}
		})
	}
}
