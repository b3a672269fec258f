package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
	repoMocks "cmsapi/internal/repository/mocks"
)

func TestStatsService_Basic(t *testing.T) {
	ctx := context.Background()
	active := repository.Filter{}.Eq("status", "Active")

	t.Run("with config document", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewStatsService(mRepo)

		mRepo.On("Count", ctx, model.Programs, active).Return(6, nil)
		mRepo.On("DistinctCount", ctx, model.Programs, "partnerUniversity", active).Return(4, nil)
		mRepo.On("ListAll", ctx, model.StatsConfigResource, repository.Filter{}.Eq("key", "stats"), 1).
			Return([]model.Record{{"key": "stats", "studentsExchanged": float64(175)}}, nil)

		stats, err := svc.Basic(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 6, stats.TotalPrograms)
		assert.Equal(t, 4, stats.PartnerUniversities)
		assert.Equal(t, 175, stats.StudentsExchanged)
		assert.Equal(t, 12, stats.Countries)
	})

	t.Run("defaults when config missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewStatsService(mRepo)

		mRepo.On("Count", ctx, model.Programs, active).Return(0, nil)
		mRepo.On("DistinctCount", ctx, model.Programs, "partnerUniversity", active).Return(0, nil)
		mRepo.On("ListAll", ctx, model.StatsConfigResource, mock.Anything, 1).
			Return([]model.Record{}, nil)

		stats, err := svc.Basic(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 150, stats.StudentsExchanged)
	})
}

func TestStatsService_Extended(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockContentRepository)
	svc := NewStatsService(mRepo)

	active := repository.Filter{}.Eq("status", "Active")
	mRepo.On("Count", ctx, model.Programs, active).Return(6, nil)
	mRepo.On("DistinctCount", ctx, model.Programs, "partnerUniversity", active).Return(4, nil)
	mRepo.On("ListAll", ctx, model.StatsConfigResource, mock.Anything, 1).
		Return([]model.Record{}, nil)
	mRepo.On("Count", ctx, model.Events, repository.Filter(nil)).Return(3, nil)
	mRepo.On("Count", ctx, model.Partnerships, active).Return(2, nil)
	mRepo.On("Count", ctx, model.News, repository.Filter(nil)).Return(9, nil)
	mRepo.On("Count", ctx, model.Team, repository.Filter(nil)).Return(5, nil)

	stats, err := svc.Extended(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.ActivePartnerships)
	assert.Equal(t, 250, stats.InternationalStudents)
	assert.Equal(t, 9, stats.NewsArticles)
	assert.Equal(t, 5, stats.TeamMembers)
}

func TestStatsService_UpdateConfig(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockContentRepository)
	svc := NewStatsService(mRepo)

	mRepo.On("Upsert", ctx, model.StatsConfigResource,
		mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("key") == "stats" && doc.Has("createdAt")
		}),
		mock.MatchedBy(func(fields model.Record) bool {
			return fields["studentsExchanged"] == float64(200) &&
				!fields.Has("unknown") && fields.Has("updatedAt")
		})).Return(nil)
	mRepo.On("ListAll", ctx, model.StatsConfigResource, mock.Anything, 1).
		Return([]model.Record{{"studentsExchanged": float64(200)}}, nil)

	cfg, err := svc.UpdateConfig(ctx, model.Record{
		"studentsExchanged": float64(200),
		"unknown":           "dropped",
	})

	assert.NoError(t, err)
	assert.Equal(t, 200, cfg.StudentsExchanged)
	mRepo.AssertExpectations(t)
}
