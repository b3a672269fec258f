package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)

// ContentService implements the use cases shared by every content resource.
// Which collection an operation touches is selected by the resource
// descriptor, so handlers stay free of per-resource logic.
type ContentService interface {
	// Create validates the payload, assigns identity and timestamps, and
	// persists a new record.
	Create(ctx context.Context, res *model.Resource, payload model.Record) (model.Record, error)

	// List returns one page of records, clamping page and pageSize to the
	// resource's bounds.
	List(ctx context.Context, res *model.Resource, filter repository.Filter, page, pageSize int) (*repository.Page, error)

	// ListAll returns the resource's records without pagination, capped at its
	// list limit.
	ListAll(ctx context.Context, res *model.Resource, filter repository.Filter) ([]model.Record, error)

	// Get returns a single record by logical id.
	Get(ctx context.Context, res *model.Resource, id string) (model.Record, error)

	// Update validates the partial payload, filters it through the resource's
	// update policy, applies it, and returns the record's new state. A write
	// that changes nothing reports ErrNotFound unless the resource opts into
	// returning the current record.
	Update(ctx context.Context, res *model.Resource, id string, payload model.Record) (model.Record, error)

	// Delete removes a record by logical id.
	Delete(ctx context.Context, res *model.Resource, id string) error
}

type contentService struct {
	repo repository.ContentRepository
}

// NewContentService constructs a ContentService over the shared store.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) Create(ctx context.Context, res *model.Resource, payload model.Record) (model.Record, error) {
	doc, err := model.ValidateCreate(res, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if res.Defaults != nil {
		res.Defaults(doc)
	}
	if res.IDField == "id" {
		doc["id"] = uuid.New().String()
	} else if doc.String(res.IDField) == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrValidation, res.IDField)
	}

	now := model.Now()
	switch res.Timestamps {
	case model.FullTimestamps:
		doc["createdAt"] = now
		doc["updatedAt"] = now
	case model.UploadDateOnly:
		doc["uploadDate"] = now
	case model.CreatedOnly:
		doc["createdAt"] = now
	}

	stored, err := s.repo.Create(ctx, res, doc)
	if err != nil {
		return nil, err
	}
	return s.view(res, stored), nil
}

func (s *contentService) List(ctx context.Context, res *model.Resource, filter repository.Filter, page, pageSize int) (*repository.Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = res.DefaultPageSize
	}
	if pageSize > res.MaxPageSize {
		pageSize = res.MaxPageSize
	}

	result, err := s.repo.List(ctx, res, filter, page, pageSize)
	if err != nil {
		return nil, err
	}
	for i, rec := range result.Items {
		result.Items[i] = s.view(res, rec)
	}
	return result, nil
}

func (s *contentService) ListAll(ctx context.Context, res *model.Resource, filter repository.Filter) ([]model.Record, error) {
	items, err := s.repo.ListAll(ctx, res, filter, res.ListLimit)
	if err != nil {
		return nil, err
	}
	for i, rec := range items {
		items[i] = s.view(res, rec)
	}
	return items, nil
}

func (s *contentService) Get(ctx context.Context, res *model.Resource, id string) (model.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, res, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.view(res, rec), nil
}

func (s *contentService) Update(ctx context.Context, res *model.Resource, id string, payload model.Record) (model.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	fields, err := model.ValidateUpdate(res, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields = res.Update.Apply(fields)
	if res.Timestamps == model.FullTimestamps {
		fields["updatedAt"] = model.Now()
	}

	// The policy can drop every field. Nothing to write, so answer the way a
	// zero-modified write would.
	if len(fields) == 0 {
		if res.ReturnCurrentOnNoop {
			return s.Get(ctx, res, id)
		}
		return nil, ErrNotFound
	}

	modified, err := s.repo.Update(ctx, res, id, fields)
	if err != nil {
		return nil, err
	}
	if modified == 0 && !res.ReturnCurrentOnNoop {
		// Missing record and no-op write are indistinguishable here; both
		// report not found.
		return nil, ErrNotFound
	}
	return s.Get(ctx, res, id)
}

func (s *contentService) Delete(ctx context.Context, res *model.Resource, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	existed, err := s.repo.Delete(ctx, res, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

// view shapes a stored record for responses: the internal row id never leaves
// the service, and the resource's read normalization is applied.
func (s *contentService) view(res *model.Resource, rec model.Record) model.Record {
	delete(rec, model.InternalIDField)
	if res.Normalize != nil {
		res.Normalize(rec)
	}
	return rec
}
