/*
Package sqldataset reads datasets from and writes them to SQL database
tables through an Adapter.

A dataset is stored on a table with a TEXT column for every attribute and
one for the class, plus an autoincremented id column that keeps the rows
in insertion order.
*/
package sqldataset

import (
	"context"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
)

/*
Read takes a context, an adapter, the name of a table, the names of the
attribute columns and the name of the class column and returns the
dataset with the rows of the table in insertion order, or an error.
*/
func Read(ctx context.Context, a Adapter, table string, attributes []string, class string) (*dataset.Dataset, error) {
	columns, err := columnNames(a, table, append(append([]string(nil), attributes...), class))
	if err != nil {
		return nil, err
	}
	var t dataset.Table
	err = a.IterateOnRows(ctx, table, columns, func(_ int, row []string) (bool, error) {
		t = append(t, row)
		return true, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return dataset.New(attributes, class, t)
}

/*
Write takes a context, an adapter, the name of a table and a dataset,
replaces the table with a new one and adds the rows of the dataset to it.
It returns an error if any of this fails.
*/
func Write(ctx context.Context, a Adapter, table string, ds *dataset.Dataset) error {
	columns, err := columnNames(a, table, ds.Columns())
	if err != nil {
		return err
	}
	if err := a.DropTable(ctx, table); err != nil {
		return err
	}
	if err := a.CreateTable(ctx, table, columns); err != nil {
		return err
	}
	n, err := a.AddRows(ctx, table, columns, ds.Table)
	if err != nil {
		return errors.Wrapf(err, "writing table %s after %d rows", table, n)
	}
	return nil
}

func columnNames(a Adapter, table string, names []string) ([]string, error) {
	if table == "" {
		return nil, errors.Wrap(errors.ErrConfiguration, "empty table name")
	}
	if _, err := a.ColumnName(table); err != nil {
		return nil, errors.Wrap(err, "validating table name")
	}
	if err := dataset.CheckColumnNames(names); err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(names))
	for _, n := range names {
		c, err := a.ColumnName(n)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}
