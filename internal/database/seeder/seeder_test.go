package seeder

import (
	"context"
	"testing"

	"jobmatch/internal/database/sqldb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSkillsSeeder(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery("information_schema.columns").
		WithArgs("skills").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name").AddRow("category").AddRow("created_at"))
	mock.ExpectBegin()
	for _, s := range skillCatalog {
		mock.ExpectExec("INSERT INTO skills").
			WithArgs(s.Name, string(s.Category)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err = Runner{Seeders: Defaults(), Log: zaptest.NewLogger(t)}.Run(context.Background(), sqldb.New(raw))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillsSeeder_UnmigratedSchema(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery("information_schema.columns").
		WithArgs("skills").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name"))

	err = Runner{Seeders: Defaults()}.Run(context.Background(), sqldb.New(raw))
	assert.ErrorContains(t, err, "missing column skills.category")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillCatalogCoversMappedCategories(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range skillCatalog {
		seen[string(s.Category)] = true
	}
	for _, c := range []string{"TECHNOLOGY", "BUSINESS", "DESIGN", "MARKETING", "OPERATIONS", "FINANCE",
		"CUSTOMER_SERVICE", "HOME_SERVICES", "MAINTENANCE", "HOSPITALITY", "SECURITY", "TRANSPORT"} {
		assert.True(t, seen[c], c)
	}
}
