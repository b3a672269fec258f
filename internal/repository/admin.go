package repository

import (
	"context"

	"cmsapi/internal/model"
)

// AdminRepository looks up admin users for credential checks. Admin records
// are created through the content repository (seeding); only the
// authentication path needs a dedicated query.
type AdminRepository interface {
	// FindByCredentials returns the admin with the given username and hashed
	// password, or sql.ErrNoRows when the pair does not match.
	FindByCredentials(ctx context.Context, username, passwordHash string) (model.Record, error)
}
