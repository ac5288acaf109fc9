/*
Package dataset provides the tables of labeled examples trees are grown
from and tested against, along the names of their columns.
*/
package dataset

import (
	"github.com/pbanos/id3/errors"
)

/*
Dataset is a table together with the names of its columns: the
attributes, positionally aligned with the leading fields of every row,
and the class, naming the trailing label.
*/
type Dataset struct {
	Attributes []string
	Class      string
	Table      Table
}

/*
New takes a slice of attribute names, a class name and a table and returns
a dataset holding copies of them, or an error wrapping
errors.ErrInvalidInput if the table is empty or its rows do not have
len(attributes)+1 fields, or errors.ErrConfiguration if a column name is
repeated.
*/
func New(attributes []string, class string, t Table) (*Dataset, error) {
	ds := &Dataset{
		Attributes: append([]string(nil), attributes...),
		Class:      class,
		Table:      t.Clone(),
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

/*
Validate returns an error if the dataset column names are repeated or its
table does not have a field for each of them.
*/
func (ds *Dataset) Validate() error {
	if err := CheckColumnNames(append(append([]string(nil), ds.Attributes...), ds.Class)); err != nil {
		return err
	}
	return ds.Table.Validate(len(ds.Attributes) + 1)
}

// Columns returns the names of all columns, the class last.
func (ds *Dataset) Columns() []string {
	return append(append([]string(nil), ds.Attributes...), ds.Class)
}

/*
CheckColumnNames returns an error wrapping errors.ErrConfiguration if the
given names hold an empty or repeated name.
*/
func CheckColumnNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			return errors.Wrap(errors.ErrConfiguration, "empty column name")
		}
		if seen[n] {
			return errors.Wrapf(errors.ErrConfiguration, "duplicate column name %q", n)
		}
		seen[n] = true
	}
	return nil
}
