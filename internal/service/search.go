package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// ErrQueryTooShort rejects search queries under two characters.
var ErrQueryTooShort = errors.New("search query must be at least 2 characters")

const (
	searchPerTypeLimit = 5
	searchDescMax      = 200
)

// SearchHit is one normalized cross-collection search result.
type SearchHit struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SearchResult is the response envelope for global search.
type SearchResult struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
	Total   int         `json:"total"`
}

// SearchService fans a query out across the searchable collections.
type SearchService interface {
	// Search matches query against programs, news, events, and partnerships,
	// optionally narrowed to a subset of those collection names.
	Search(ctx context.Context, query string, sections []string) (*SearchResult, error)
}

type searchService struct {
	repo repository.ContentRepository
}

func NewSearchService(repo repository.ContentRepository) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) Search(ctx context.Context, query string, sections []string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil, ErrQueryTooShort
	}

	wanted := make(map[string]bool, len(sections))
	for _, sec := range sections {
		wanted[strings.ToLower(strings.TrimSpace(sec))] = true
	}

	hits := make([]SearchHit, 0)
	for _, res := range model.Searchable {
		if len(wanted) > 0 && !wanted[res.Name] {
			continue
		}
		items, err := s.repo.Search(ctx, res, query, searchPerTypeLimit)
		if err != nil {
			return nil, err
		}
		for _, rec := range items {
			hits = append(hits, toHit(res, rec))
		}
	}

	return &SearchResult{Query: query, Results: hits, Total: len(hits)}, nil
}

func toHit(res *model.Resource, rec model.Record) SearchHit {
	id := rec.String(res.IDField)
	if id == "" {
		// Legacy records without a logical id fall back to the row id so the
		// result still carries a stable reference.
		id = rec.String(model.InternalIDField)
	}
	return SearchHit{
		Type:        res.Search.Type,
		ID:          id,
		Title:       rec.String(res.Search.TitleField),
		Description: truncate(rec.String(res.Search.DescField), searchDescMax),
		URL:         res.Search.URLPrefix + id,
	}
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
