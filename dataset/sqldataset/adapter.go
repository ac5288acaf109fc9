package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/errors"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows that are
inserted with a single insert command by the AddRows method of the
adapters. Adding more rows results in more insertion commands.
*/
const MaxRowInsertionsPerStatement = 10

/*
Adapter is an interface providing the methods needed to read and write
datasets on a database backend.
*/
type Adapter interface {
	ColumnName(string) (string, error)
	DropTable(ctx context.Context, table string) error
	CreateTable(ctx context.Context, table string, columns []string) error
	AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error)
	IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error
	Close() error
}

/*
Dialect holds what changes between the SQL databases supported by the
package: the definition of the autoincremented id column of every table
and the placeholder of the nth argument of a statement, starting on 1.
*/
type Dialect struct {
	IDColumn    string
	Placeholder func(n int) string
}

// SQLite3 is the dialect for SQLite3 databases.
var SQLite3 = Dialect{
	IDColumn:    `"id" INTEGER PRIMARY KEY AUTOINCREMENT`,
	Placeholder: func(int) string { return "?" },
}

// PostgreSQL is the dialect for PostgreSQL databases.
var PostgreSQL = Dialect{
	IDColumn:    `"id" SERIAL PRIMARY KEY`,
	Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
}

type adapter struct {
	db      *sql.DB
	dialect Dialect
}

/*
NewAdapter takes an open database handle and the dialect of the database
and returns an Adapter that works on it. Closing the adapter closes the
handle.
*/
func NewAdapter(db *sql.DB, dialect Dialect) Adapter {
	return &adapter{db, dialect}
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "id" {
		return "", errors.Wrapf(errors.ErrConfiguration, `'%s' is reserved and cannot be used as column name`, name)
	}
	if strings.ContainsAny(name, `"`) {
		return "", errors.Wrapf(errors.ErrConfiguration, `column name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

func (a *adapter) DropTable(ctx context.Context, table string) error {
	if _, err := a.db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)); err != nil {
		return errors.Wrapf(err, "dropping table %s", table)
	}
	return nil
}

func (a *adapter) CreateTable(ctx context.Context, table string, columns []string) error {
	var createStmtBuf bytes.Buffer
	fmt.Fprintf(&createStmtBuf, `CREATE TABLE IF NOT EXISTS "%s" (`, table)
	for _, c := range columns {
		fmt.Fprintf(&createStmtBuf, `"%s" TEXT NOT NULL, `, c)
	}
	createStmtBuf.WriteString(a.dialect.IDColumn)
	createStmtBuf.WriteString(")")
	if _, err := a.db.ExecContext(ctx, createStmtBuf.String()); err != nil {
		return errors.Wrapf(err, "ensuring table %s exists", table)
	}
	return nil
}

func (a *adapter) AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error) {
	if len(columns) == 0 {
		return 0, errors.Wrap(errors.ErrInvalidInput, "no columns to store")
	}
	for start := 0; start < len(rows); start += MaxRowInsertionsPerStatement {
		end := min(start+MaxRowInsertionsPerStatement, len(rows))
		chunk := rows[start:end]
		args := make([]interface{}, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if len(row) != len(columns) {
				return start, errors.Wrapf(errors.ErrInvalidInput, "row %d has %d fields, expected %d", start+i, len(row), len(columns))
			}
			for _, v := range row {
				args = append(args, v)
			}
		}
		if _, err := a.db.ExecContext(ctx, a.insertStatement(table, columns, len(chunk)), args...); err != nil {
			return start, errors.Wrapf(err, "inserting rows %d to %d", start, end-1)
		}
	}
	return len(rows), nil
}

func (a *adapter) insertStatement(table string, columns []string, count int) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `INSERT INTO "%s" ("%s") VALUES `, table, strings.Join(columns, `", "`))
	n := 1
	for i := 0; i < count; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for j := range columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(a.dialect.Placeholder(n))
			n++
		}
		buf.WriteString(")")
	}
	return buf.String()
}

func (a *adapter) IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error {
	query := fmt.Sprintf(`SELECT "%s" FROM "%s" ORDER BY "id"`, strings.Join(columns, `", "`), table)
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return errors.Wrapf(err, "scanning row %d", j)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			if !v.Valid {
				return errors.Wrapf(errors.ErrInvalidInput, "row %d has NULL value for column %s", j, columns[i])
			}
			row[i] = v.String
		}
		ok, err := lambda(j, row)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return rows.Err()
}

func (a *adapter) Close() error {
	return a.db.Close()
}
