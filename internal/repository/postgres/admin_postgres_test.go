package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAdminPostgres_FindByCredentials(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAdminPostgres(db)
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"seq", "doc"}).
			AddRow(1, []byte(`{"id":"a1","username":"admin"}`))

		mock.ExpectQuery("SELECT seq, doc FROM admins WHERE doc->>'username' = (.+) AND doc->>'password' = ?").
			WithArgs("admin", "deadbeef").
			WillReturnRows(rows)

		rec, err := repo.FindByCredentials(ctx, "admin", "deadbeef")

		assert.NoError(t, err)
		assert.Equal(t, "admin", rec["username"])
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery("SELECT seq, doc FROM admins").
			WithArgs("admin", "wrong").
			WillReturnError(sql.ErrNoRows)

		rec, err := repo.FindByCredentials(ctx, "admin", "wrong")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, rec)
	})
}
