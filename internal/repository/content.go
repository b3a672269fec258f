package repository

import (
	"context"

	"cmsapi/internal/model"
)

// ContentRepository is the store boundary shared by every resource
// collection. Implementations are strictly persistence: no id generation, no
// timestamp stamping, no update-policy filtering; that is the service layer.
//
// All lookups go through the resource's logical id field; the store's own row
// key is surfaced only as the auxiliary _id field on returned records.
type ContentRepository interface {
	// Create persists doc as a new document and returns the stored record
	// including the internal id.
	Create(ctx context.Context, res *model.Resource, doc model.Record) (model.Record, error)

	// List returns one page of records matching filter, with the total count
	// taken against the same filter before pagination. Count and fetch are two
	// separate store operations, not a snapshot pair.
	List(ctx context.Context, res *model.Resource, filter Filter, page, pageSize int) (*Page, error)

	// ListAll returns up to limit records matching filter in the resource's
	// default order, without pagination bookkeeping.
	ListAll(ctx context.Context, res *model.Resource, filter Filter, limit int) ([]model.Record, error)

	// FindByID returns the record with the given logical id, or sql.ErrNoRows.
	FindByID(ctx context.Context, res *model.Resource, id string) (model.Record, error)

	// Update merges fields into the stored document and reports how many
	// documents actually changed (0 when the record is missing or every field
	// already held the given value).
	Update(ctx context.Context, res *model.Resource, id string, fields model.Record) (int64, error)

	// Upsert merges fields into the document whose logical id matches
	// insertDoc's, inserting insertDoc when no such document exists.
	Upsert(ctx context.Context, res *model.Resource, insertDoc, fields model.Record) error

	// Delete removes the record and reports whether one existed.
	Delete(ctx context.Context, res *model.Resource, id string) (bool, error)

	// Search returns up to limit records with a case-insensitive substring
	// match in any of the resource's search fields.
	Search(ctx context.Context, res *model.Resource, query string, limit int) ([]model.Record, error)

	// Count returns the number of records matching filter.
	Count(ctx context.Context, res *model.Resource, filter Filter) (int, error)

	// DistinctCount returns the number of distinct values of field among
	// records matching filter.
	DistinctCount(ctx context.Context, res *model.Resource, field string, filter Filter) (int, error)
}

// Page is the uniform pagination envelope returned by every list operation.
type Page struct {
	Items      []model.Record `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// CondOp is a filter comparison operator.
type CondOp int

const (
	// OpEq matches a field's text value exactly.
	OpEq CondOp = iota
	// OpTrue matches a boolean field that is true.
	OpTrue
	// OpGte matches a field at or after the given value (text comparison;
	// stored timestamps are fixed-width so this is chronological).
	OpGte
)

// Condition is one field constraint.
type Condition struct {
	Field string
	Op    CondOp
	Value string
}

// Filter is a conjunction of conditions.
type Filter []Condition

// Eq appends an equality condition.
func (f Filter) Eq(field, value string) Filter {
	return append(f, Condition{Field: field, Op: OpEq, Value: value})
}

// True appends a boolean-is-true condition.
func (f Filter) True(field string) Filter {
	return append(f, Condition{Field: field, Op: OpTrue})
}

// Gte appends an at-or-after condition.
func (f Filter) Gte(field, value string) Filter {
	return append(f, Condition{Field: field, Op: OpGte, Value: value})
}
