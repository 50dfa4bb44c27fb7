package database_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"autoservice-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_AppliesPendingInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrations := fstest.MapFS{
		"002_add_widgets.sql":    {Data: []byte("CREATE TABLE widgets (id TEXT);")},
		"001_create_gadgets.sql": {Data: []byte("CREATE TABLE gadgets (id TEXT);")},
		"README.md":              {Data: []byte("ignored")},
	}

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM schema_migrations`).
		WithArgs("001_create_gadgets.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM schema_migrations`).
		WithArgs("002_add_widgets.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE widgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).WithArgs("002_add_widgets.sql").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	migrator := database.NewMigratorFromDB(db, migrations)
	require.NoError(t, migrator.Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, migrator.Close())
}

func TestMigrator_RollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrations := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT`).WithArgs("001_broken.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE oops`).WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = database.NewMigratorFromDB(db, migrations).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_broken.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_EmbeddedMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	for _, name := range []string{"001_create_snapshots.sql", "002_create_repair_events.sql"} {
		mock.ExpectQuery(`SELECT COUNT`).WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	require.NoError(t, database.NewMigratorFromDB(db, nil).Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
