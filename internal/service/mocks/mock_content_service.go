package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, res *model.Resource, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, res, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, res *model.Resource, filter repository.Filter, page, pageSize int) (*repository.Page, error) {
	args := m.Called(ctx, res, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page), args.Error(1)
}

func (m *MockContentService) ListAll(ctx context.Context, res *model.Resource, filter repository.Filter) ([]model.Record, error) {
	args := m.Called(ctx, res, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, res *model.Resource, id string) (model.Record, error) {
	args := m.Called(ctx, res, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, res *model.Resource, id string, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, res, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, res *model.Resource, id string) error {
	args := m.Called(ctx, res, id)
	return args.Error(0)
}
