package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
	repoMocks "cmsapi/internal/repository/mocks"
)

func validProgram() model.Record {
	return model.Record{
		"title":             "Exchange Semester",
		"description":       "One semester abroad at a partner university.",
		"partnerUniversity": "ETH Zurich",
		"duration":          "6 months",
		"eligibility":       "Third-year students, GPA 3.0 or above",
		"deadline":          "March 15",
		"applicationLink":   "https://example.org/apply",
	}
}

func TestContentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Create", ctx, model.Programs, mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("id") != "" &&
				doc.String("createdAt") != "" &&
				doc.String("createdAt") == doc.String("updatedAt")
		})).Return(model.Record{"id": "gen-id", model.InternalIDField: "1"}, nil)

		rec, err := svc.Create(ctx, model.Programs, validProgram())

		assert.NoError(t, err)
		assert.Equal(t, "gen-id", rec["id"])
		assert.NotContains(t, rec, model.InternalIDField)
		mRepo.AssertExpectations(t)
	})

	t.Run("gallery stamps uploadDate only", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Create", ctx, model.Gallery, mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("uploadDate") != "" && !doc.Has("createdAt") && !doc.Has("updatedAt")
		})).Return(model.Record{"id": "g1"}, nil)

		_, err := svc.Create(ctx, model.Gallery, model.Record{
			"title":    "Campus visit",
			"category": "Visits",
			"image":    "/gallery/x.jpg",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("news defaults date to now", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Create", ctx, model.News, mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("date") != ""
		})).Return(model.Record{"id": "n1"}, nil)

		_, err := svc.Create(ctx, model.News, model.Record{
			"title":    "MoU with ETH Zurich",
			"content":  "A new exchange agreement was signed today.",
			"category": "MoU",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("news keeps an explicit date", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Create", ctx, model.News, mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("date") == "2025-06-01T00:00:00"
		})).Return(model.Record{"id": "n2"}, nil)

		_, err := svc.Create(ctx, model.News, model.Record{
			"title":    "Delegation visit",
			"content":  "A delegation from Oxford visited the campus.",
			"category": "Announcement",
			"date":     "2025-06-01T00:00:00",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("contact defaults status and stamps createdAt only", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Create", ctx, model.Contacts, mock.MatchedBy(func(doc model.Record) bool {
			return doc.String("status") == model.ContactStatusNew &&
				doc.String("createdAt") != "" && !doc.Has("updatedAt")
		})).Return(model.Record{"id": "c1", "status": "New"}, nil)

		_, err := svc.Create(ctx, model.Contacts, model.Record{
			"firstName": "Lena",
			"lastName":  "Fischer",
			"email":     "lena@example.org",
			"subject":   "Campus visit",
			"message":   "We would like to arrange a delegation visit.",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		_, err := svc.Create(ctx, model.Programs, model.Record{"title": "x"})

		assert.ErrorIs(t, err, ErrValidation)
		mRepo.AssertNotCalled(t, "Create")
	})
}

func TestContentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps page and pageSize", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("List", ctx, model.News, repository.Filter(nil), 1, 50).
			Return(&repository.Page{Items: []model.Record{}, Page: 1, PageSize: 50}, nil)

		_, err := svc.List(ctx, model.News, nil, 0, 500)

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("defaults pageSize", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("List", ctx, model.News, repository.Filter(nil), 2, 10).
			Return(&repository.Page{Items: []model.Record{}, Page: 2, PageSize: 10}, nil)

		_, err := svc.List(ctx, model.News, nil, 2, 0)

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("normalizes contact status on read", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("List", ctx, model.Contacts, repository.Filter(nil), 1, 50).
			Return(&repository.Page{Items: []model.Record{
				{"id": "c1", "status": "read"},
				{"id": "c2"},
			}}, nil)

		page, err := svc.List(ctx, model.Contacts, nil, 1, 50)

		assert.NoError(t, err)
		assert.Equal(t, "Read", page.Items[0]["status"])
		assert.Equal(t, "New", page.Items[1]["status"])
	})
}

func TestContentService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("FindByID", ctx, model.Programs, "p1").
			Return(model.Record{"id": "p1", model.InternalIDField: "9"}, nil)

		rec, err := svc.Get(ctx, model.Programs, "p1")

		assert.NoError(t, err)
		assert.Equal(t, "p1", rec["id"])
		assert.NotContains(t, rec, model.InternalIDField)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("FindByID", ctx, model.Programs, "missing").
			Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, model.Programs, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		_, err := svc.Get(ctx, model.Programs, "")

		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestContentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("drops nil fields and stamps updatedAt", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Update", ctx, model.Programs, "p1", mock.MatchedBy(func(fields model.Record) bool {
			return !fields.Has("description") &&
				fields.String("title") == "New title" &&
				fields.String("updatedAt") != ""
		})).Return(int64(1), nil)
		mRepo.On("FindByID", ctx, model.Programs, "p1").
			Return(model.Record{"id": "p1", "title": "New title"}, nil)

		rec, err := svc.Update(ctx, model.Programs, "p1", model.Record{
			"title":       "New title",
			"description": nil,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New title", rec["title"])
		mRepo.AssertExpectations(t)
	})

	t.Run("news drops empty strings too", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Update", ctx, model.News, "n1", mock.MatchedBy(func(fields model.Record) bool {
			return !fields.Has("author") && fields.String("title") == "Updated"
		})).Return(int64(1), nil)
		mRepo.On("FindByID", ctx, model.News, "n1").
			Return(model.Record{"id": "n1", "title": "Updated"}, nil)

		_, err := svc.Update(ctx, model.News, "n1", model.Record{
			"title":  "Updated",
			"author": "   ",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("zero modified reports not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Update", ctx, model.Programs, "missing", mock.Anything).
			Return(int64(0), nil)

		_, err := svc.Update(ctx, model.Programs, "missing", model.Record{"title": "x"})

		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("gallery returns current record on no-op", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Update", ctx, model.Gallery, "g1", mock.Anything).
			Return(int64(0), nil)
		mRepo.On("FindByID", ctx, model.Gallery, "g1").
			Return(model.Record{"id": "g1", "title": "Same"}, nil)

		rec, err := svc.Update(ctx, model.Gallery, "g1", model.Record{"title": "Same"})

		assert.NoError(t, err)
		assert.Equal(t, "Same", rec["title"])
	})

	t.Run("gallery all fields dropped skips the write", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("FindByID", ctx, model.Gallery, "g1").
			Return(model.Record{"id": "g1"}, nil)

		_, err := svc.Update(ctx, model.Gallery, "g1", model.Record{"title": nil})

		assert.NoError(t, err)
		mRepo.AssertNotCalled(t, "Update")
	})
}

func TestContentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existed", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Delete", ctx, model.Programs, "p1").Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, model.Programs, "p1"))
	})

	t.Run("missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockContentRepository)
		svc := NewContentService(mRepo)

		mRepo.On("Delete", ctx, model.Programs, "missing").Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, model.Programs, "missing"), ErrNotFound)
	})
}
