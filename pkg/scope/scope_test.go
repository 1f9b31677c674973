package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	m := New("test-secret")

	token, err := m.CreateToken(Payload{UserID: "user-1", Username: "jane", Email: "jane@example.com"})
	require.NoError(t, err)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "jane", payload.Username)

	sc := NewScope(payload)
	assert.Equal(t, "user-1", sc.UserID)
	assert.NotEmpty(t, sc.JTI)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := New("secret-a").CreateToken(Payload{UserID: "u"})
	require.NoError(t, err)

	_, err = New("secret-b").Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = New("secret-b").Verify("")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetTokenFromContext(ctx)
	assert.False(t, ok)

	ctx = SetTokenToContext(ctx, "abc")
	token, ok := GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestVerifyRejectsRefreshToken(t *testing.T) {
	m := New("test-secret")
	token, err := m.CreateToken(Payload{UserID: "u1", Refresh: true})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrRefreshToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := New("test-secret").(*implManager)
	m.now = func() time.Time { return time.Now().Add(-2 * DefaultTokenTTL) }
	token, err := m.CreateToken(Payload{UserID: "u1"})
	require.NoError(t, err)

	_, err = New("test-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestScopeContext(t *testing.T) {
	assert.True(t, GetScopeFromContext(context.Background()).IsAnonymous())

	ctx := SetScopeToContext(context.Background(), NewScope(Payload{UserID: "u1", Username: "jane"}))
	assert.Equal(t, "u1", GetScopeFromContext(ctx).UserID)
}
