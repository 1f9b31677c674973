package scope

import (
	"fmt"
	"strconv"
	"time"

	"isp-dashboard/internal/model"

	"github.com/golang-jwt/jwt"
)

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func (m *implManager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return m.secretKey, nil
}

// Verify parses token and returns its claims. Only unexpired access tokens
// that name a user are accepted.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, m.keyFunc)
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.Refresh {
		return Payload{}, ErrRefreshToken
	}
	if payload.UserID == "" && payload.Subject == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return payload, nil
}

// CreateToken signs payload for DefaultTokenTTL.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := m.now()
	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(m.ttl).Unix(),
		Id:        strconv.FormatInt(now.UnixNano(), 36),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   payload.UserID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secretKey)
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Email:    payload.Email,
		JTI:      payload.Id,
	}
}
