package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, res *model.Resource, doc model.Record) (model.Record, error) {
	args := m.Called(ctx, res, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, res *model.Resource, filter repository.Filter, page, pageSize int) (*repository.Page, error) {
	args := m.Called(ctx, res, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page), args.Error(1)
}

func (m *MockContentRepository) ListAll(ctx context.Context, res *model.Resource, filter repository.Filter, limit int) ([]model.Record, error) {
	args := m.Called(ctx, res, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockContentRepository) FindByID(ctx context.Context, res *model.Resource, id string) (model.Record, error) {
	args := m.Called(ctx, res, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, res *model.Resource, id string, fields model.Record) (int64, error) {
	args := m.Called(ctx, res, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) Upsert(ctx context.Context, res *model.Resource, insertDoc, fields model.Record) error {
	args := m.Called(ctx, res, insertDoc, fields)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, res *model.Resource, id string) (bool, error) {
	args := m.Called(ctx, res, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) Search(ctx context.Context, res *model.Resource, query string, limit int) ([]model.Record, error) {
	args := m.Called(ctx, res, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockContentRepository) Count(ctx context.Context, res *model.Resource, filter repository.Filter) (int, error) {
	args := m.Called(ctx, res, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockContentRepository) DistinctCount(ctx context.Context, res *model.Resource, field string, filter repository.Filter) (int, error) {
	args := m.Called(ctx, res, field, filter)
	return args.Int(0), args.Error(1)
}
