package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// ContentPostgres implements repository.ContentRepository on PostgreSQL.
// Every collection is a table of (seq BIGSERIAL, doc JSONB); all queries
// address documents through JSONB field expressions, so one implementation
// serves every resource in the registry. Table and field names come from the
// static registry, never from request input.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates the shared content repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentRepository = (*ContentPostgres)(nil)

func fieldExpr(field string) string {
	return fmt.Sprintf("doc->>'%s'", field)
}

func sortExpr(res *model.Resource) string {
	s := res.Sort
	if s.Field == "" {
		return "seq"
	}
	expr := fieldExpr(s.Field)
	if s.Numeric {
		expr = fmt.Sprintf("(%s)::numeric", fieldExpr(s.Field))
	}
	if s.Desc {
		expr += " DESC"
	}
	return expr
}

// whereClause renders filter into SQL starting at placeholder $next.
func whereClause(filter repository.Filter, next int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for _, c := range filter {
		switch c.Op {
		case repository.OpTrue:
			conds = append(conds, fmt.Sprintf("(%s)::boolean IS TRUE", fieldExpr(c.Field)))
		case repository.OpGte:
			conds = append(conds, fmt.Sprintf("%s >= $%d", fieldExpr(c.Field), next))
			args = append(args, c.Value)
			next++
		default:
			conds = append(conds, fmt.Sprintf("%s = $%d", fieldExpr(c.Field), next))
			args = append(args, c.Value)
			next++
		}
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Create inserts the document and returns it with the internal row id attached.
func (r *ContentPostgres) Create(ctx context.Context, res *model.Resource, doc model.Record) (model.Record, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	q := fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1) RETURNING seq`, res.Collection)
	var seq int64
	if err := r.db.QueryRowContext(ctx, q, b).Scan(&seq); err != nil {
		return nil, err
	}
	out := doc.Clone()
	out[model.InternalIDField] = strconv.FormatInt(seq, 10)
	return out, nil
}

// FindByID fetches a single record by its logical id field.
func (r *ContentPostgres) FindByID(ctx context.Context, res *model.Resource, id string) (model.Record, error) {
	q := fmt.Sprintf(`SELECT seq, doc FROM %s WHERE %s = $1`, res.Collection, fieldExpr(res.IDField))
	return scanRecord(r.db.QueryRowContext(ctx, q, id))
}

// List counts matching documents, then fetches the requested page. The two
// store round trips are not snapshot-consistent; concurrent writes may skew
// total against the returned slice.
func (r *ContentPostgres) List(ctx context.Context, res *model.Resource, filter repository.Filter, page, pageSize int) (*repository.Page, error) {
	where, args := whereClause(filter, 1)

	qCount := strings.TrimSpace(fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, res.Collection, where))
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	n := len(args)
	qList := strings.TrimSpace(fmt.Sprintf(`SELECT seq, doc FROM %s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		res.Collection, where, sortExpr(res), n+1, n+2))
	listArgs := append(append([]any{}, args...), pageSize, (page-1)*pageSize)

	items, err := r.queryRecords(ctx, qList, listArgs...)
	if err != nil {
		return nil, err
	}
	return &repository.Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// ListAll fetches up to limit records in default order without pagination.
func (r *ContentPostgres) ListAll(ctx context.Context, res *model.Resource, filter repository.Filter, limit int) ([]model.Record, error) {
	where, args := whereClause(filter, 1)
	q := strings.TrimSpace(fmt.Sprintf(`SELECT seq, doc FROM %s %s ORDER BY %s LIMIT $%d`,
		res.Collection, where, sortExpr(res), len(args)+1))
	return r.queryRecords(ctx, q, append(append([]any{}, args...), limit)...)
}

// Update merges fields into the document. The @> guard makes rows-affected
// match the count of documents that actually changed, mirroring the store
// contract list/update callers rely on: 0 means missing record or no-op.
func (r *ContentPostgres) Update(ctx context.Context, res *model.Resource, id string, fields model.Record) (int64, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("marshal update: %w", err)
	}
	q := fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE %s = $1 AND NOT (doc @> $2::jsonb)`,
		res.Collection, fieldExpr(res.IDField))
	result, err := r.db.ExecContext(ctx, q, id, b)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Upsert merges fields into the document carrying insertDoc's logical id,
// inserting insertDoc when it does not exist yet. Requires the collection's
// unique logical-id index as conflict target.
func (r *ContentPostgres) Upsert(ctx context.Context, res *model.Resource, insertDoc, fields model.Record) error {
	ib, err := json.Marshal(insertDoc)
	if err != nil {
		return fmt.Errorf("marshal insert document: %w", err)
	}
	ub, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}
	q := fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1) ON CONFLICT ((%s)) DO UPDATE SET doc = %s.doc || $2::jsonb`,
		res.Collection, fieldExpr(res.IDField), res.Collection)
	_, err = r.db.ExecContext(ctx, q, ib, ub)
	return err
}

// Delete removes the record and reports whether one existed.
func (r *ContentPostgres) Delete(ctx context.Context, res *model.Resource, id string) (bool, error) {
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, res.Collection, fieldExpr(res.IDField))
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Search matches query as a case-insensitive substring in any of the
// resource's search fields.
func (r *ContentPostgres) Search(ctx context.Context, res *model.Resource, query string, limit int) ([]model.Record, error) {
	if res.Search == nil {
		return nil, fmt.Errorf("resource %s is not searchable", res.Name)
	}
	ors := make([]string, 0, len(res.Search.Fields))
	for _, f := range res.Search.Fields {
		ors = append(ors, fmt.Sprintf("%s ILIKE $1", fieldExpr(f)))
	}
	q := fmt.Sprintf(`SELECT seq, doc FROM %s WHERE (%s) LIMIT $2`, res.Collection, strings.Join(ors, " OR "))
	return r.queryRecords(ctx, q, "%"+escapeLike(query)+"%", limit)
}

// Count returns the number of records matching filter.
func (r *ContentPostgres) Count(ctx context.Context, res *model.Resource, filter repository.Filter) (int, error) {
	where, args := whereClause(filter, 1)
	q := strings.TrimSpace(fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, res.Collection, where))
	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// DistinctCount returns the number of distinct values of field among records
// matching filter.
func (r *ContentPostgres) DistinctCount(ctx context.Context, res *model.Resource, field string, filter repository.Filter) (int, error) {
	where, args := whereClause(filter, 1)
	q := strings.TrimSpace(fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s %s`, fieldExpr(field), res.Collection, where))
	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ContentPostgres) queryRecords(ctx context.Context, q string, args ...any) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var (
			seq int64
			raw []byte
		)
		if err := rows.Scan(&seq, &raw); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(seq, raw)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.Record, error) {
	var (
		seq int64
		raw []byte
	)
	if err := row.Scan(&seq, &raw); err != nil {
		return nil, err
	}
	return decodeRecord(seq, raw)
}

func decodeRecord(seq int64, raw []byte) (model.Record, error) {
	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	rec[model.InternalIDField] = strconv.FormatInt(seq, 10)
	return rec, nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied search input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
