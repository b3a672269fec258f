package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cmsapi/internal/model"
	repoMocks "cmsapi/internal/repository/mocks"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("fans out in fixed order", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, model.Programs, "zurich", 5).
			Return([]model.Record{{"id": "p1", "title": "ETH Exchange", "description": "Semester abroad"}}, nil)
		mRepo.On("Search", ctx, model.News, "zurich", 5).
			Return([]model.Record{{"id": "n1", "title": "Zurich MoU signed", "summary": "New agreement"}}, nil)
		mRepo.On("Search", ctx, model.Events, "zurich", 5).
			Return([]model.Record{}, nil)
		mRepo.On("Search", ctx, model.Partnerships, "zurich", 5).
			Return([]model.Record{{"id": "pt1", "partnerName": "ETH Zurich", "details": "Dual degree"}}, nil)

		result, err := svc.Search(ctx, "zurich", nil)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, "program", result.Results[0].Type)
		assert.Equal(t, "news", result.Results[1].Type)
		assert.Equal(t, "partnership", result.Results[2].Type)
		assert.Equal(t, "/student-mobility/programs/p1", result.Results[0].URL)
		mRepo.AssertExpectations(t)
	})

	t.Run("narrows to requested sections", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, model.News, "visit", 5).
			Return([]model.Record{{"id": "n1", "title": "Delegation visit"}}, nil)

		result, err := svc.Search(ctx, "visit", []string{"news"})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		mRepo.AssertNotCalled(t, "Search", ctx, model.Programs, "visit", 5)
	})

	t.Run("sections use collection names", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, model.Programs, "zurich", 5).
			Return([]model.Record{{"id": "p1", "title": "ETH Exchange"}}, nil)

		result, err := svc.Search(ctx, "zurich", []string{"programs"})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "program", result.Results[0].Type)
		mRepo.AssertNotCalled(t, "Search", ctx, model.News, "zurich", 5)
	})

	t.Run("query too short", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		_, err := svc.Search(ctx, " z ", nil)

		assert.ErrorIs(t, err, ErrQueryTooShort)
		mRepo.AssertNotCalled(t, "Search")
	})

	t.Run("length counts runes, not bytes", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		_, err := svc.Search(ctx, "é", nil)
		assert.ErrorIs(t, err, ErrQueryTooShort)

		for _, res := range model.Searchable {
			mRepo.On("Search", ctx, res, "éé", 5).Return([]model.Record{}, nil)
		}
		result, err := svc.Search(ctx, "éé", nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		mRepo.AssertExpectations(t)
	})

	t.Run("truncates descriptions and falls back to the row id", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewSearchService(mRepo)

		long := strings.Repeat("a", 300)
		mRepo.On("Search", ctx, model.Programs, "abroad", 5).
			Return([]model.Record{{model.InternalIDField: "42", "title": "Old record", "description": long}}, nil)

		result, err := svc.Search(ctx, "abroad", []string{"programs"})

		assert.NoError(t, err)
		hit := result.Results[0]
		assert.Equal(t, "42", hit.ID)
		assert.Equal(t, 200, len(hit.Description))
		assert.Equal(t, "/student-mobility/programs/42", hit.URL)
	})
}
