package dataset

import (
	"fmt"

	"github.com/pbanos/id3/errors"
)

/*
Table is a rectangular collection of rows of string values. The last
value of every row is its class label, the previous ones are the values
of its attributes in the order of the attribute list the table is used
with.

Tables have value semantics: no method modifies the receiver, and the
tables they return never share rows with it.
*/
type Table [][]string

/*
ValueCount holds a distinct value found on a column of a table and the
number of rows holding it.
*/
type ValueCount struct {
	Value string
	Count int
}

/*
Part is one of the subtables in which a table is partitioned by the
values of one of its columns.
*/
type Part struct {
	Value string
	Table Table
}

/*
Validate takes the expected width of the rows of the table and returns an
error wrapping errors.ErrInvalidInput if the table is empty or if any of
its rows has a different length.
*/
func (t Table) Validate(width int) error {
	if len(t) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "table has no rows")
	}
	for i, row := range t {
		if len(row) != width {
			return errors.Wrapf(errors.ErrInvalidInput, "row %d has %d fields, expected %d", i, len(row), width)
		}
	}
	return nil
}

// Count returns the number of rows in the table.
func (t Table) Count() int {
	return len(t)
}

// Width returns the length of the rows of the table, 0 if it is empty.
func (t Table) Width() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// ClassColumn returns the index of the class label column.
func (t Table) ClassColumn() int {
	return t.Width() - 1
}

/*
Values takes a column index and returns the distinct values on that
column in the order they are first found going through the rows.
*/
func (t Table) Values(col int) []string {
	counts := t.CountValues(col)
	values := make([]string, 0, len(counts))
	for _, vc := range counts {
		values = append(values, vc.Value)
	}
	return values
}

/*
CountValues takes a column index and returns the distinct values on that
column along the number of rows holding each of them, in the order the
values are first found going through the rows.
*/
func (t Table) CountValues(col int) []ValueCount {
	var result []ValueCount
	index := make(map[string]int)
	for _, row := range t {
		v := row[col]
		i, ok := index[v]
		if !ok {
			i = len(result)
			index[v] = i
			result = append(result, ValueCount{Value: v})
		}
		result[i].Count++
	}
	return result
}

// Labels returns the class labels of the rows of the table.
func (t Table) Labels() []string {
	col := t.ClassColumn()
	labels := make([]string, 0, len(t))
	for _, row := range t {
		labels = append(labels, row[col])
	}
	return labels
}

/*
Queries returns a copy of the rows of the table without their class
labels, ready to be classified.
*/
func (t Table) Queries() [][]string {
	col := t.ClassColumn()
	queries := make([][]string, 0, len(t))
	for _, row := range t {
		queries = append(queries, append([]string(nil), row[:col]...))
	}
	return queries
}

/*
SubsetWith takes a column index and a value and returns a new table with
the rows holding that value on that column, with the column removed. The
order of the rows and of the remaining columns is preserved.
*/
func (t Table) SubsetWith(col int, value string) Table {
	var result Table
	for _, row := range t {
		if row[col] == value {
			result = append(result, withoutColumn(row, col))
		}
	}
	return result
}

/*
Partition takes a column index and returns a part for each distinct value
on that column, in first-found order, holding the subset of rows with that
value and without the column. Parts are never empty.
*/
func (t Table) Partition(col int) []Part {
	var parts []Part
	index := make(map[string]int)
	for _, row := range t {
		v := row[col]
		i, ok := index[v]
		if !ok {
			i = len(parts)
			index[v] = i
			parts = append(parts, Part{Value: v})
		}
		parts[i].Table = append(parts[i].Table, withoutColumn(row, col))
	}
	return parts
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	result := make(Table, 0, len(t))
	for _, row := range t {
		result = append(result, append([]string(nil), row...))
	}
	return result
}

func (t Table) String() string {
	return fmt.Sprintf("[ %d ]", len(t))
}

func withoutColumn(row []string, col int) []string {
	result := make([]string, 0, len(row)-1)
	result = append(result, row[:col]...)
	return append(result, row[col+1:]...)
}
