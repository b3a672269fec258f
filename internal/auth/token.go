package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Algorithm is the only accepted signing algorithm. Verification pins it
	// to block algorithm-confusion tokens.
	Algorithm = "HS256"

	// TokenType is the token_type value reported to login clients.
	TokenType = "bearer"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expiry, malformed input. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier checks an access token and returns the admin username it was
// issued to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenManager issues and verifies HS256 access tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager signing with secret. ttl <= 0 falls back
// to 60 minutes.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

var _ TokenVerifier = (*TokenManager)(nil)

// Issue signs a token whose subject is the admin username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token, returning its subject.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != Algorithm {
			return nil, fmt.Errorf("unexpected signing algorithm %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
