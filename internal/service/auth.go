package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	"cmsapi/internal/auth"
	"cmsapi/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords; login never says which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is the response body for a successful login.
type LoginResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles admin credential checks and session bookkeeping.
type AuthService interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout discards the session record for a token. The token itself stays
	// valid until expiry; this only updates bookkeeping.
	Logout(ctx context.Context, token string)
}

type authService struct {
	admins   repository.AdminRepository
	tokens   *auth.TokenManager
	sessions *auth.SessionSet
}

func NewAuthService(admins repository.AdminRepository, tokens *auth.TokenManager, sessions *auth.SessionSet) AuthService {
	return &authService{admins: admins, tokens: tokens, sessions: sessions}
}

// HashPassword returns the stored form of an admin password. Kept as
// sha256-hex to stay compatible with previously seeded credentials.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.tokens.Issue(admin.String("username"))
	if err != nil {
		return nil, err
	}
	s.sessions.Add(token)

	return &LoginResult{
		Success:     true,
		Message:     "Login successful",
		Username:    admin.String("username"),
		AccessToken: token,
		TokenType:   auth.TokenType,
	}, nil
}

func (s *authService) Logout(_ context.Context, token string) {
	s.sessions.Remove(token)
}
