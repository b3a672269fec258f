package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// AdminPostgres implements repository.AdminRepository on the admins
// collection table.
type AdminPostgres struct {
	db *sql.DB
}

func NewAdminPostgres(db *sql.DB) *AdminPostgres {
	return &AdminPostgres{db: db}
}

var _ repository.AdminRepository = (*AdminPostgres)(nil)

// FindByCredentials returns the admin whose username and stored password hash
// both match, or sql.ErrNoRows. The hash comparison happens in the store so
// plaintext never leaves the service layer.
func (r *AdminPostgres) FindByCredentials(ctx context.Context, username, passwordHash string) (model.Record, error) {
	q := fmt.Sprintf(`SELECT seq, doc FROM %s WHERE doc->>'username' = $1 AND doc->>'password' = $2`,
		model.Admins.Collection)
	return scanRecord(r.db.QueryRowContext(ctx, q, username, passwordHash))
}
