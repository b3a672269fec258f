package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cmsapi/internal/auth"
	"cmsapi/internal/model"
	repoMocks "cmsapi/internal/repository/mocks"
)

func newAuthFixture() (*repoMocks.MockAdminRepository, *auth.SessionSet, AuthService) {
	mRepo := new(repoMocks.MockAdminRepository)
	sessions := auth.NewSessionSet()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return mRepo, sessions, NewAuthService(mRepo, tokens, sessions)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mRepo, sessions, svc := newAuthFixture()

		mRepo.On("FindByCredentials", ctx, "admin", HashPassword("s3cret")).
			Return(model.Record{"id": "a1", "username": "admin"}, nil)

		result, err := svc.Login(ctx, "admin", "s3cret")

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "admin", result.Username)
		assert.Equal(t, "bearer", result.TokenType)
		assert.NotEmpty(t, result.AccessToken)
		assert.True(t, sessions.Contains(result.AccessToken))
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo, sessions, svc := newAuthFixture()

		mRepo.On("FindByCredentials", ctx, "admin", HashPassword("wrong")).
			Return(nil, sql.ErrNoRows)

		_, err := svc.Login(ctx, "admin", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, 0, sessions.Len())
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	mRepo, sessions, svc := newAuthFixture()

	mRepo.On("FindByCredentials", ctx, "admin", HashPassword("s3cret")).
		Return(model.Record{"username": "admin"}, nil)

	result, err := svc.Login(ctx, "admin", "s3cret")
	assert.NoError(t, err)

	svc.Logout(ctx, result.AccessToken)
	assert.False(t, sessions.Contains(result.AccessToken))
}

func TestHashPassword(t *testing.T) {
	// sha256("admin123"), precomputed.
	assert.Equal(t,
		"240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		HashPassword("admin123"))
}
