package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (model.Record, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}
