package sqldataset

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAdapter(t *testing.T, dialect Dialect) (Adapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAdapter(db, dialect), mock
}

func TestColumnName(t *testing.T) {
	a, _ := newMockAdapter(t, SQLite3)
	name, err := a.ColumnName("age")
	require.NoError(t, err)
	assert.Equal(t, "age", name)

	_, err = a.ColumnName("id")
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
	_, err = a.ColumnName(`a"b`)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestWrite(t *testing.T) {
	a, mock := newMockAdapter(t, PostgreSQL)
	ds, err := dataset.New([]string{"outlook"}, "play", dataset.Table{{"sunny", "no"}, {"rainy", "yes"}})
	require.NoError(t, err)

	mock.ExpectExec(`DROP TABLE IF EXISTS "weather"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "weather" ("outlook" TEXT NOT NULL, "play" TEXT NOT NULL, "id" SERIAL PRIMARY KEY)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "weather" ("outlook", "play") VALUES ($1, $2), ($3, $4)`).
		WithArgs("sunny", "no", "rainy", "yes").
		WillReturnResult(sqlmock.NewResult(2, 2))

	require.NoError(t, Write(context.Background(), a, "weather", ds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteChunksInsertions(t *testing.T) {
	a, mock := newMockAdapter(t, SQLite3)
	ds := dataset.BuysComputer()

	mock.ExpectExec(`DROP TABLE IF EXISTS "customers"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "customers" ("age" TEXT NOT NULL, "income" TEXT NOT NULL, "student" TEXT NOT NULL, "credit_rating" TEXT NOT NULL, "buys_computer" TEXT NOT NULL, "id" INTEGER PRIMARY KEY AUTOINCREMENT)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	first := a.(*adapter).insertStatement("customers", ds.Columns(), MaxRowInsertionsPerStatement)
	mock.ExpectExec(first).WillReturnResult(sqlmock.NewResult(10, 10))
	last := a.(*adapter).insertStatement("customers", ds.Columns(), ds.Table.Count()-MaxRowInsertionsPerStatement)
	mock.ExpectExec(last).WillReturnResult(sqlmock.NewResult(14, 4))

	require.NoError(t, Write(context.Background(), a, "customers", ds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRead(t *testing.T) {
	a, mock := newMockAdapter(t, SQLite3)
	mock.ExpectQuery(`SELECT "outlook", "play" FROM "weather" ORDER BY "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"outlook", "play"}).
			AddRow("sunny", "no").
			AddRow("rainy", "yes"))

	ds, err := Read(context.Background(), a, "weather", []string{"outlook"}, "play")
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook"}, ds.Attributes)
	assert.Equal(t, "play", ds.Class)
	assert.Equal(t, dataset.Table{{"sunny", "no"}, {"rainy", "yes"}}, ds.Table)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadRejectsNullValues(t *testing.T) {
	a, mock := newMockAdapter(t, SQLite3)
	mock.ExpectQuery(`SELECT "outlook", "play" FROM "weather" ORDER BY "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"outlook", "play"}).AddRow(nil, "no"))

	_, err := Read(context.Background(), a, "weather", []string{"outlook"}, "play")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestReadEmptyTable(t *testing.T) {
	a, mock := newMockAdapter(t, SQLite3)
	mock.ExpectQuery(`SELECT "outlook", "play" FROM "weather" ORDER BY "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"outlook", "play"}))

	_, err := Read(context.Background(), a, "weather", []string{"outlook"}, "play")
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestReadValidatesNames(t *testing.T) {
	a, _ := newMockAdapter(t, SQLite3)
	tests := map[string]struct {
		table      string
		attributes []string
		class      string
	}{
		"empty table":       {"", []string{"a"}, "c"},
		"reserved column":   {"t", []string{"id"}, "c"},
		"duplicate columns": {"t", []string{"a", "a"}, "c"},
		"quoted table":      {`t"`, []string{"a"}, "c"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(context.Background(), a, tt.table, tt.attributes, tt.class)
			assert.True(t, errors.Is(err, errors.ErrConfiguration), "%v", err)
		})
	}
}
