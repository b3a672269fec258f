package migration

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsapi/internal/model"
)

func TestBuildSteps(t *testing.T) {
	steps := buildSteps()

	names := make(map[string]bool, len(steps))
	for _, s := range steps {
		names[s.Name] = true
	}

	for _, res := range model.Collections {
		assert.True(t, names["create_table_"+res.Collection], res.Collection)
		assert.True(t, names["create_index_"+res.Collection+"_"+res.IDField], res.Collection)
	}

	// Searchable collections additionally get trigram indexes.
	assert.True(t, names["create_index_news_title_trgm"])
	assert.False(t, names["create_index_contacts_message_trgm"])
}

func TestEnsureMigratedSkipsExistingSchema(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT to_regclass").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, time.UTC, "localhost")
	require.NoError(t, err)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
