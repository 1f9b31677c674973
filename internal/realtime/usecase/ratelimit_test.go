package usecase

import (
	"context"
	"testing"
	"time"

	"isp-dashboard/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterSlidingWindow(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	r := newRateLimiter(2, time.Minute)
	r.now = func() time.Time { return now }

	assert.True(t, r.allow("u1"))
	now = now.Add(10 * time.Second)
	assert.True(t, r.allow("u1"))
	assert.False(t, r.allow("u1"))
	assert.True(t, r.allow("u2"), "limits are per user")

	now = now.Add(55 * time.Second)
	assert.True(t, r.allow("u1"), "first attempt left the window")
	assert.False(t, r.allow("u1"))

	now = now.Add(2 * time.Minute)
	r.prune()
	assert.Empty(t, r.attempts)
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		require.True(t, r.allow("u1"))
	}
	assert.Empty(t, r.attempts)
}

func TestAdmitConnectRate(t *testing.T) {
	uc, _ := newTestUseCase(t, realtime.Config{ConnectRate: 1, ConnectWindow: time.Minute})
	input := realtime.ConnectionInput{OrganizationID: "org-1", UserID: "u1"}

	require.NoError(t, uc.Admit(context.Background(), input))
	assert.ErrorIs(t, uc.Admit(context.Background(), input), realtime.ErrConnectRateExceeded)
}
