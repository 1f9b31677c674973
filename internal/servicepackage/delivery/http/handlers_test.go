package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/resource"
	repoGraphql "isp-dashboard/internal/servicepackage/repository/graphql"
	"isp-dashboard/internal/servicepackage/usecase"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/response"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packageJSON = `{"id":"p1","name":"Basic 5G","downloadSpeed":10,"uploadSpeed":5,"price":500,"serviceType":"PPPOE","isActive":true}`

type staticLoader struct {
	org model.Organization
}

func (l staticLoader) Organization(context.Context, model.Scope, string) (model.Organization, error) {
	return l.org, nil
}

func newTestRouter(client *graphqltest.Client, perms ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	h := New(l, usecase.New(l, repo, form.NewValidator()), nil)

	org := model.Organization{
		ID:      "org-1",
		Roles:   []model.Role{{ID: "r1", Permissions: perms}},
		Members: []model.Member{{UserID: "u1", RoleID: "r1", Status: model.MemberStatusActive}},
	}
	gate := permission.NewGate(l, staticLoader{org: org}, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"})
		c.Request = c.Request.WithContext(ctx)
	})
	g := r.Group("/api/v1/:organizationId/isp/packages", gate.Require(permission.FeaturePackages))
	g.GET("", h.List)
	g.GET("/:packageId", h.Detail)
	g.POST("", permission.RequireManage(), h.Create)
	return r
}

func serve(r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   int
		wantErrors map[string]any
		wantCalls  int
	}{
		{
			name:       "valid package",
			body:       `{"name":"Basic 5G","downloadSpeed":10,"uploadSpeed":"5","price":500,"serviceType":"PPPOE"}`,
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "negative download speed",
			body:       `{"name":"Basic 5G","downloadSpeed":-1,"uploadSpeed":5,"price":500,"serviceType":"PPPOE"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   response.ValidationErrorCode,
			wantErrors: map[string]any{"downloadSpeed": "Download speed must be positive"},
		},
		{
			name:       "speed is not a number",
			body:       `{"name":"Basic 5G","downloadSpeed":"fast","uploadSpeed":5,"price":500,"serviceType":"PPPOE"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   12002,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().Respond("CreateISPPackage", `{"createISPPackage":`+packageJSON+`}`)
			r := newTestRouter(client, model.PermViewPackages, model.PermManagePackages)

			w, resp := serve(r, http.MethodPost, "/api/v1/org-1/isp/packages", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Len(t, client.CallsTo("CreateISPPackage"), tt.wantCalls)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, resp.ErrorCode)
			}
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, resp.Errors)
			}
			if tt.wantCalls > 0 {
				sent := graphqltest.Input(client.CallsTo("CreateISPPackage")[0])
				assert.Equal(t, "org-1", sent["organizationId"])
			}
		})
	}
}

func TestCreateReadOnly(t *testing.T) {
	client := graphqltest.New()
	r := newTestRouter(client, model.PermViewPackages)

	w, _ := serve(r, http.MethodPost, "/api/v1/org-1/isp/packages",
		`{"name":"Basic 5G","downloadSpeed":10,"uploadSpeed":5,"price":500,"serviceType":"PPPOE"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, client.Calls())
}

func TestListBindsQuery(t *testing.T) {
	client := graphqltest.New().
		Respond("GetISPPackages", `{"ispPackages":{"items":[`+packageJSON+`],"totalCount":21}}`)
	r := newTestRouter(client, model.PermViewPackages)

	w, _ := serve(r, http.MethodGet, "/api/v1/org-1/isp/packages?page=2&page_size=20&search=fibre&sort_by=download_speed&sort_direction=desc", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	calls := client.CallsTo("GetISPPackages")
	require.Len(t, calls, 1)
	assert.Equal(t, "org-1", calls[0].Variables["organizationId"])
	assert.Equal(t, 2, calls[0].Variables["page"])
	assert.Equal(t, 20, calls[0].Variables["pageSize"])
	assert.Equal(t, "fibre", calls[0].Variables["search"])
	assert.Equal(t, "downloadSpeed", calls[0].Variables["sortBy"])
}

func TestListWrongParams(t *testing.T) {
	client := graphqltest.New()
	r := newTestRouter(client, model.PermViewPackages)

	w, resp := serve(r, http.MethodGet, "/api/v1/org-1/isp/packages?page=two", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 12001, resp.ErrorCode)
	assert.Empty(t, client.Calls())
}

func TestDetailNotFound(t *testing.T) {
	client := graphqltest.New().Respond("GetISPPackage", `{"ispPackage":null}`)
	r := newTestRouter(client, model.PermViewPackages)

	w, resp := serve(r, http.MethodGet, "/api/v1/org-1/isp/packages/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 12003, resp.ErrorCode)
}
