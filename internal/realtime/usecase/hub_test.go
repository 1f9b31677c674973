package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T, cfg realtime.Config) (*implUseCase, *Metrics) {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	uc := New(log.NewNop(), cfg, metrics).(*implUseCase)
	uc.clock = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	go uc.Run()
	t.Cleanup(func() { _ = uc.Shutdown(context.Background()) })
	return uc, metrics
}

func testConn(uc *implUseCase, orgID, userID string) *Connection {
	return &Connection{
		hub:    uc.hub,
		orgID:  orgID,
		userID: userID,
		send:   make(chan []byte, sendBuffer),
		logger: log.NewNop(),
		done:   make(chan struct{}),
	}
}

func waitConnections(t *testing.T, uc *implUseCase, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return uc.hub.stats().ActiveConnections == n
	}, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Connection) realtime.NotificationOutput {
	t.Helper()
	select {
	case data := <-c.send:
		var out realtime.NotificationOutput
		require.NoError(t, json.Unmarshal(data, &out))
		return out
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return realtime.NotificationOutput{}
	}
}

func TestProcessMessageRoutesByOrganization(t *testing.T) {
	uc, metrics := newTestUseCase(t, realtime.Config{MaxConnections: 10, MaxConnsPerUser: 3})

	tab1 := testConn(uc, "org-1", "u1")
	tab2 := testConn(uc, "org-1", "u1")
	colleague := testConn(uc, "org-1", "u2")
	other := testConn(uc, "org-2", "u3")
	for _, c := range []*Connection{tab1, tab2, colleague, other} {
		uc.hub.register <- c
	}
	waitConnections(t, uc, 4)
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.connections))

	payload := `{"organization_id":"org-1","typename":"ISPCustomer","id":"c1","action":"updated"}`
	require.NoError(t, uc.ProcessMessage(context.Background(), realtime.ProcessMessageInput{
		Channel: realtime.Channel("org-1"),
		Payload: []byte(payload),
	}))

	for _, c := range []*Connection{tab1, tab2, colleague} {
		out := receive(t, c)
		assert.Equal(t, realtime.MessageTypeChange, out.Type)
		assert.Equal(t, "ISPCustomer", out.Payload.Typename)
		assert.Equal(t, model.ChangeUpdated, out.Payload.Action)
	}

	select {
	case <-other.send:
		t.Fatal("other organization received the change")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int64(3), uc.hub.stats().TotalMessagesSent)
}

func TestProcessMessageRejects(t *testing.T) {
	uc, _ := newTestUseCase(t, realtime.Config{MaxConnections: 10})

	tests := []struct {
		name    string
		input   realtime.ProcessMessageInput
		wantErr error
	}{
		{
			name:    "foreign channel",
			input:   realtime.ProcessMessageInput{Channel: "system:maintenance", Payload: []byte(`{}`)},
			wantErr: realtime.ErrInvalidChannel,
		},
		{
			name:    "not json",
			input:   realtime.ProcessMessageInput{Channel: realtime.Channel("org-1"), Payload: []byte(`nope`)},
			wantErr: realtime.ErrInvalidMessage,
		},
		{
			name:    "missing typename",
			input:   realtime.ProcessMessageInput{Channel: realtime.Channel("org-1"), Payload: []byte(`{"id":"c1"}`)},
			wantErr: realtime.ErrInvalidMessage,
		},
		{
			name:    "organization mismatch",
			input:   realtime.ProcessMessageInput{Channel: realtime.Channel("org-1"), Payload: []byte(`{"organization_id":"org-2","typename":"ISPTicket"}`)},
			wantErr: realtime.ErrOrganizationMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.ProcessMessage(context.Background(), tt.input), tt.wantErr)
		})
	}
}

func TestAdmitLimits(t *testing.T) {
	uc, _ := newTestUseCase(t, realtime.Config{MaxConnections: 3, MaxConnsPerUser: 2})

	uc.hub.register <- testConn(uc, "org-1", "u1")
	uc.hub.register <- testConn(uc, "org-1", "u1")
	waitConnections(t, uc, 2)

	err := uc.Admit(context.Background(), realtime.ConnectionInput{OrganizationID: "org-1", UserID: "u1"})
	assert.ErrorIs(t, err, realtime.ErrTooManyUserConns)

	// The same user in another organization has its own allowance.
	require.NoError(t, uc.Admit(context.Background(), realtime.ConnectionInput{OrganizationID: "org-2", UserID: "u1"}))

	uc.hub.register <- testConn(uc, "org-2", "u2")
	waitConnections(t, uc, 3)

	err = uc.Admit(context.Background(), realtime.ConnectionInput{OrganizationID: "org-2", UserID: "u9"})
	assert.ErrorIs(t, err, realtime.ErrMaxConnectionsReached)
}

func TestRegisterOverLimitIsClosed(t *testing.T) {
	uc, _ := newTestUseCase(t, realtime.Config{MaxConnections: 10, MaxConnsPerUser: 1})

	first := testConn(uc, "org-1", "u1")
	second := testConn(uc, "org-1", "u1")
	uc.hub.register <- first
	uc.hub.register <- second

	select {
	case <-second.done:
	case <-time.After(time.Second):
		t.Fatal("connection over the limit was not closed")
	}
	assert.Equal(t, 1, uc.hub.stats().ActiveConnections)
}

func TestUnregisterRemovesOrganization(t *testing.T) {
	uc, metrics := newTestUseCase(t, realtime.Config{MaxConnections: 10})

	c := testConn(uc, "org-1", "u1")
	uc.hub.register <- c
	waitConnections(t, uc, 1)

	uc.hub.unregister <- c
	waitConnections(t, uc, 0)

	_, open := <-c.send
	assert.False(t, open)
	assert.Zero(t, uc.hub.stats().ActiveOrganizations)
	assert.Zero(t, testutil.ToFloat64(metrics.connections))
}
