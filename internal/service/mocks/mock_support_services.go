package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
	"cmsapi/internal/storage"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, types []string) (*service.SearchResult, error) {
	args := m.Called(ctx, query, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Basic(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

func (m *MockStatsService) Extended(ctx context.Context) (*service.ExtendedStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtendedStats), args.Error(1)
}

func (m *MockStatsService) Config(ctx context.Context) (*service.StatsConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatsConfig), args.Error(1)
}

func (m *MockStatsService) UpdateConfig(ctx context.Context, payload model.Record) (*service.StatsConfig, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatsConfig), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, section string, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, section, r, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) Open(ctx context.Context, path string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, path)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockMediaService) RemoveImage(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
