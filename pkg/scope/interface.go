package scope

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrRefreshToken is returned when a refresh token is presented as an access token.
	ErrRefreshToken = errors.New("refresh token cannot authorize requests")
)

// DefaultTokenTTL is the lifetime CreateToken gives new tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Manager verifies the access tokens the dashboard forwards to the API.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a Manager for HS256 tokens signed with secretKey.
func New(secretKey string) Manager {
	if secretKey == "" {
		panic("scope: secret key cannot be empty")
	}
	return &implManager{secretKey: []byte(secretKey), ttl: DefaultTokenTTL, now: time.Now}
}
