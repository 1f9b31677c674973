package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/scope"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Authorization string
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

func newTestServer(t *testing.T, body string, got *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestRun(t *testing.T) {
	t.Run("forwards token and variables", func(t *testing.T) {
		var got capturedRequest
		srv := newTestServer(t, `{"data":{"ispPackages":{"totalCount":3}}}`, &got)
		defer srv.Close()

		reg := prometheus.NewRegistry()
		metrics := NewMetrics(reg)
		c, err := New(log.NewNop(), Config{Endpoint: srv.URL}, metrics)
		require.NoError(t, err)

		ctx := scope.SetTokenToContext(context.Background(), "abc")
		req := NewRequest("GetISPPackages", "query GetISPPackages { ispPackages { totalCount } }").
			Var("organizationId", "org-1")

		var resp struct {
			ISPPackages struct {
				TotalCount int64 `json:"totalCount"`
			} `json:"ispPackages"`
		}
		require.NoError(t, c.Run(ctx, req, &resp))

		assert.Equal(t, int64(3), resp.ISPPackages.TotalCount)
		assert.Equal(t, "Bearer abc", got.Authorization)
		assert.Equal(t, "org-1", got.Variables["organizationId"])
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("GetISPPackages", statusOK)))
	})

	t.Run("server error keeps message", func(t *testing.T) {
		var got capturedRequest
		srv := newTestServer(t, `{"errors":[{"message":"User is already a member of this organization"}]}`, &got)
		defer srv.Close()

		c, err := New(log.NewNop(), Config{Endpoint: srv.URL}, nil)
		require.NoError(t, err)

		var resp map[string]json.RawMessage
		err = c.Run(context.Background(), NewRequest("InviteMember", "mutation { x }"), &resp)
		require.Error(t, err)

		assert.Empty(t, got.Authorization)
		assert.Equal(t, "User is already a member of this organization", Message(err))
		assert.True(t, IsDuplicateInvitation(err))
	})
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := New(log.NewNop(), Config{}, nil)
	assert.ErrorIs(t, err, ErrEndpointRequired)
}
