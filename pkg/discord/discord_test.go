package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", url: "https://discord.com/api/webhooks/123/abc", wantID: "123", wantToken: "abc"},
		{name: "trailing slash", url: "https://discord.com/api/webhooks/123/abc/", wantID: "123", wantToken: "abc"},
		{name: "surrounding spaces", url: "  https://discord.com/api/webhooks/1/t  ", wantID: "1", wantToken: "t"},
		{name: "wrong host", url: "https://example.com/api/webhooks/1/t", wantErr: true},
		{name: "missing token", url: "https://discord.com/api/webhooks/1", wantErr: true},
		{name: "empty id", url: "https://discord.com/api/webhooks//t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidWebhook)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(nil, "", Config{})
	assert.ErrorIs(t, err, errWebhookRequired)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*discordImpl, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	d := newImpl(nil, srv.URL, Config{RetryCount: 2, RetryDelay: 5 * time.Millisecond})
	var waits []time.Duration
	d.sleep = func(_ context.Context, wait time.Duration) error {
		waits = append(waits, wait)
		return nil
	}
	return d, &waits
}

func TestSendEmbed(t *testing.T) {
	var got webhookPayload
	d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := d.SendEmbed(context.Background(), MessageOptions{
		Type:      MessageTypeWarning,
		Title:     strings.Repeat("t", 300),
		Fields:    []EmbedField{{Name: "Note", Value: strings.Repeat("v", 2000)}},
		Timestamp: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	e := got.Embeds[0]
	assert.Equal(t, DefaultUsername, got.Username)
	assert.Equal(t, ColorYellow, e.Color)
	assert.Len(t, e.Title, maxTitleLen)
	assert.Len(t, e.Fields[0].Value, maxFieldValueLen)
	assert.Equal(t, "2026-03-01T08:00:00Z", e.Timestamp)
}

func TestSendEmbedTooLong(t *testing.T) {
	d, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("oversized embed must not be posted")
	})

	fields := make([]EmbedField, 8)
	for i := range fields {
		fields[i] = EmbedField{Name: "f", Value: strings.Repeat("x", 1000)}
	}
	err := d.SendEmbed(context.Background(), MessageOptions{Fields: fields})
	assert.ErrorIs(t, err, errEmbedTooLong)
}

func TestSendRetries(t *testing.T) {
	t.Run("honors rate limit wait", func(t *testing.T) {
		var calls atomic.Int32
		d, waits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"retry_after": 1.5}`))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, d.ReportBug(context.Background(), "boom"))
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, []time.Duration{1500 * time.Millisecond}, *waits)
	})

	t.Run("gives up after retry count", func(t *testing.T) {
		var calls atomic.Int32
		d, waits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		})

		err := d.ReportBug(context.Background(), "boom")
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.Len(t, *waits, 2)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		d, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		})

		var se *statusError
		err := d.ReportBug(context.Background(), "boom")
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusNotFound, se.status)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestRetryAfterCapped(t *testing.T) {
	se := &statusError{status: http.StatusTooManyRequests, body: `{"retry_after": 120}`}
	assert.Equal(t, maxRetryWait, retryAfter(se))
	assert.Zero(t, retryAfter(&statusError{status: http.StatusBadGateway}))
}
