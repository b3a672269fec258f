package service

import (
	"context"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

const (
	statsConfigKey           = "stats"
	defaultStudentsExchanged = 150

	// Fixed counters the site advertises but the backend does not derive from
	// records yet.
	statCountries             = 12
	statInternationalStudents = 250
)

// StatsConfig is the admin-editable counter document.
type StatsConfig struct {
	StudentsExchanged int `json:"studentsExchanged"`
}

// Stats is the public counter set shown on the landing page.
type Stats struct {
	TotalPrograms       int `json:"totalPrograms"`
	PartnerUniversities int `json:"partnerUniversities"`
	StudentsExchanged   int `json:"studentsExchanged"`
	Countries           int `json:"countries"`
}

// ExtendedStats adds collection totals to the basic counters.
type ExtendedStats struct {
	Stats
	TotalEvents           int `json:"totalEvents"`
	ActivePartnerships    int `json:"activePartnerships"`
	InternationalStudents int `json:"internationalStudents"`
	NewsArticles          int `json:"newsArticles"`
	TeamMembers           int `json:"teamMembers"`
}

// StatsService aggregates live collection counts with the admin-editable
// counter document.
type StatsService interface {
	Basic(ctx context.Context) (*Stats, error)
	Extended(ctx context.Context) (*ExtendedStats, error)
	Config(ctx context.Context) (*StatsConfig, error)
	UpdateConfig(ctx context.Context, payload model.Record) (*StatsConfig, error)
}

type statsService struct {
	repo repository.ContentRepository
}

func NewStatsService(repo repository.ContentRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Basic(ctx context.Context) (*Stats, error) {
	active := repository.Filter{}.Eq("status", "Active")

	programs, err := s.repo.Count(ctx, model.Programs, active)
	if err != nil {
		return nil, err
	}
	universities, err := s.repo.DistinctCount(ctx, model.Programs, "partnerUniversity", active)
	if err != nil {
		return nil, err
	}
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalPrograms:       programs,
		PartnerUniversities: universities,
		StudentsExchanged:   cfg.StudentsExchanged,
		Countries:           statCountries,
	}, nil
}

func (s *statsService) Extended(ctx context.Context) (*ExtendedStats, error) {
	basic, err := s.Basic(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.Count(ctx, model.Events, nil)
	if err != nil {
		return nil, err
	}
	partnerships, err := s.repo.Count(ctx, model.Partnerships, repository.Filter{}.Eq("status", "Active"))
	if err != nil {
		return nil, err
	}
	news, err := s.repo.Count(ctx, model.News, nil)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.Count(ctx, model.Team, nil)
	if err != nil {
		return nil, err
	}

	return &ExtendedStats{
		Stats:                 *basic,
		TotalEvents:           events,
		ActivePartnerships:    partnerships,
		InternationalStudents: statInternationalStudents,
		NewsArticles:          news,
		TeamMembers:           team,
	}, nil
}

// Config returns the counter document, falling back to defaults when it was
// never written.
func (s *statsService) Config(ctx context.Context) (*StatsConfig, error) {
	items, err := s.repo.ListAll(ctx, model.StatsConfigResource, repository.Filter{}.Eq("key", statsConfigKey), 1)
	if err != nil {
		return nil, err
	}
	cfg := &StatsConfig{StudentsExchanged: defaultStudentsExchanged}
	if len(items) > 0 {
		if n, ok := items[0]["studentsExchanged"].(float64); ok {
			cfg.StudentsExchanged = int(n)
		}
	}
	return cfg, nil
}

// UpdateConfig merges non-nil payload fields into the counter document,
// creating it on first write.
func (s *statsService) UpdateConfig(ctx context.Context, payload model.Record) (*StatsConfig, error) {
	// Only the known counter survives; anything else in the payload is
	// dropped rather than persisted.
	fields := model.Record{}
	if v, ok := payload["studentsExchanged"]; ok && v != nil {
		fields["studentsExchanged"] = v
	}
	now := model.Now()
	fields["updatedAt"] = now

	insertDoc := fields.Clone()
	insertDoc["key"] = statsConfigKey
	insertDoc["createdAt"] = now

	if err := s.repo.Upsert(ctx, model.StatsConfigResource, insertDoc, fields); err != nil {
		return nil, err
	}
	return s.Config(ctx)
}
