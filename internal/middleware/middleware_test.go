package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"syscall"
	"testing"

	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/locale"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth(t *testing.T) {
	mgr := scope.New("test-secret")
	token, err := mgr.CreateToken(scope.Payload{UserID: "u1", Username: "jane"})
	require.NoError(t, err)

	mw := New(log.NewNop(), mgr, nil, nil)
	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		ctx := c.Request.Context()
		sc := scope.GetScopeFromContext(ctx)
		raw, _ := scope.GetTokenFromContext(ctx)
		c.String(http.StatusOK, sc.UserID+"|"+raw)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "u1|"+token, w.Body.String())
			}
		})
	}
}

func TestSubmitOnce(t *testing.T) {
	mw := New(log.NewNop(), scope.New("test-secret"), form.NewGuard(), nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	r := gin.New()
	r.POST("/customers", mw.SubmitOnce(), func(c *gin.Context) {
		close(entered)
		<-release
		c.Status(http.StatusCreated)
	})

	var wg sync.WaitGroup
	first := httptest.NewRecorder()
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/customers", nil))
	}()
	<-entered

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/customers", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusCreated, first.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(NewCORSConfig([]string{"https://app.example.com", "*.isp.test"})))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.org")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	assert.True(t, IsOriginAllowed("https://a.isp.test", []string{"*.isp.test"}))
	assert.False(t, IsOriginAllowed("", []string{"*"}))
}

func TestMetricsAndRequestID(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := New(log.NewNop(), scope.New("test-secret"), nil, NewMetrics(reg))

	r := gin.New()
	r.Use(mw.RequestID(), mw.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	assert.Equal(t, float64(1), testutil.ToFloat64(mw.metrics.requests.WithLabelValues(http.MethodGet, "/items/:id", "200")))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/boom", func(*gin.Context) { panic("tower offline") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBrokenPipe(t *testing.T) {
	pipe := &net.OpError{Op: "write", Err: os.NewSyscallError("write", syscall.EPIPE)}
	assert.True(t, brokenPipe(pipe))
	assert.False(t, brokenPipe(&net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}))
	assert.False(t, brokenPipe("tower offline"))
}

func TestLocale(t *testing.T) {
	mw := New(log.NewNop(), scope.New("test-secret"), nil, nil)
	r := gin.New()
	r.Use(mw.Locale())
	r.GET("/lang", func(c *gin.Context) { c.String(http.StatusOK, locale.GetLang(c.Request.Context())) })

	tests := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{name: "lang header", header: "lang", value: "sw", want: locale.SW},
		{name: "accept language", header: "Accept-Language", value: "fr-FR, sw-KE;q=0.8", want: locale.SW},
		{name: "nothing", want: locale.EN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/lang", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
