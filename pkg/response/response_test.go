package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/locale"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(lang string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/org-1/isp/customers?page=2", strings.NewReader(`{"name":"Amina"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	ctx := locale.SetLocaleToContext(req.Context(), lang)
	ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: "u1", Username: "amina"})
	c.Request = req.WithContext(ctx)
	c.Params = gin.Params{{Key: "organizationId", Value: "org-1"}}
	return c, w
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{
			name:       "http error",
			err:        errors.NewHTTPError(11003, "Customer not found", http.StatusNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   11003,
			wantMsg:    "Customer not found",
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("load customer: %w", errors.NewHTTPError(11003, "Customer not found", http.StatusNotFound)),
			wantStatus: http.StatusNotFound,
			wantCode:   11003,
			wantMsg:    "Customer not found",
		},
		{
			name:       "validation collector is localized",
			lang:       locale.SW,
			err:        errors.NewValidationErrorCollector().Add(errors.NewValidationError(400, "name", "Name is required")),
			wantStatus: http.StatusBadRequest,
			wantCode:   ValidationErrorCode,
			wantMsg:    "Tafadhali sahihisha sehemu zilizoangaziwa",
		},
		{
			name:       "permission error",
			err:        errors.NewPermissionError(PermissionErrorCode, "packages", "full"),
			wantStatus: http.StatusForbidden,
			wantCode:   PermissionErrorCode,
			wantMsg:    "Access denied",
		},
		{
			name:       "unknown error is hidden",
			err:        stderrors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   InternalServerErrorCode,
			wantMsg:    "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.lang)
			Error(c, tt.err, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestRetryAfter(t *testing.T) {
	c, w := newContext("")
	base := errors.NewHTTPError(20004, "Reconnecting too often", http.StatusTooManyRequests)

	HttpError(c, base.WithRetryAfter(30*time.Second))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Zero(t, base.RetryAfter)
}

func TestPanicError(t *testing.T) {
	c, w := newContext("")
	PanicError(c, "index out of range", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBugReport(t *testing.T) {
	c, _ := newContext("")
	c.Header(requestIDHeader, "req-42")

	report := newBugReport(c, "boom", []string{"main.go:1 main"})

	assert.Contains(t, report, "Route   : POST /api/v1/org-1/isp/customers")
	assert.Contains(t, report, "Org     : org-1")
	assert.Contains(t, report, "User    : u1 (amina)")
	assert.Contains(t, report, "Request : req-42")
	assert.Contains(t, report, "Authorization: [redacted]")
	assert.NotContains(t, report, "secret-token")
	assert.Contains(t, report, `"name": "Amina"`)

	body, err := c.GetRawData()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Amina"}`, string(body), "body is restored for later readers")
}

func TestSplitMessageForDiscord(t *testing.T) {
	line := strings.Repeat("x", 1500) + "\n"
	chunks := splitMessageForDiscord(strings.Repeat(line, 6))
	require.Len(t, chunks, 3)
	for _, ch := range chunks {
		assert.LessOrEqual(t, len(ch), discordMaxMessageLen)
	}

	long := splitMessageForDiscord(strings.Repeat("y", discordMaxMessageLen*2+10))
	require.Len(t, long, 3)
	assert.Len(t, long[2], 10)
}
