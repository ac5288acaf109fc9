/*
Package csv reads datasets from and writes them to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
)

/*
ReadDataset takes an io.Reader for a CSV stream and optional metadata and
returns the dataset parsed from the stream or an error.

The header or first row of the CSV content names the columns. Without
metadata, the last column is taken as the class and the rest as the
attributes, in header order. With metadata, the header must name every
feature in it and nothing else, columns are rearranged to follow the
metadata order and every value must be valid for its feature.

Errors on the content of the stream wrap errors.ErrInvalidInput.
*/
func ReadDataset(reader io.Reader, md *feature.Metadata) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Wrap(errors.ErrInvalidInput, "reading header: empty CSV stream")
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "reading header: %v", err)
	}
	columns, order, err := parseHeader(header, md)
	if err != nil {
		return nil, err
	}
	var table dataset.Table
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "reading body: %v", err)
		}
		row := make([]string, len(order))
		for i, c := range order {
			row[i] = record[c]
		}
		if md != nil {
			if err := md.ValidRow(row); err != nil {
				return nil, errors.Wrapf(err, "parsing line %d", l)
			}
		}
		table = append(table, row)
	}
	return dataset.New(columns[:len(columns)-1], columns[len(columns)-1], table)
}

/*
ReadDatasetFromFilePath takes a filepath string and optional metadata,
opens the file the filepath points to and uses ReadDataset to return the
dataset read from it or an error. An empty filepath reads from STDIN.
*/
func ReadDatasetFromFilePath(filepath string, md *feature.Metadata) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening CSV file %s", filepath)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return ds, nil
}

/*
WriteDataset takes an io.Writer and a dataset and writes the dataset onto
the writer as CSV: a header with the attribute names and the class name,
followed by the rows of the table.
*/
func WriteDataset(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns()); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if err := cw.WriteAll(ds.Table); err != nil {
		return errors.Wrap(err, "writing rows")
	}
	return nil
}

/*
WriteDatasetToFilePath takes a filepath string and a dataset, creates the
file and writes the dataset on it with WriteDataset. An empty filepath
writes to STDOUT.
*/
func WriteDatasetToFilePath(filepath string, ds *dataset.Dataset) error {
	if filepath == "" {
		return WriteDataset(os.Stdout, ds)
	}
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "creating CSV file %s", filepath)
	}
	defer f.Close()
	if err := WriteDataset(f, ds); err != nil {
		return err
	}
	return f.Close()
}

// parseHeader returns the column names of the dataset and, for each, its index on the header.
func parseHeader(header []string, md *feature.Metadata) ([]string, []int, error) {
	if md == nil {
		if len(header) == 0 {
			return nil, nil, errors.Wrap(errors.ErrInvalidInput, "parsing header: no columns")
		}
		order := make([]int, len(header))
		for i := range order {
			order[i] = i
		}
		return header, order, nil
	}
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}
	columns := md.Columns()
	if len(header) != len(columns) {
		return nil, nil, errors.Wrapf(errors.ErrInvalidInput, "parsing header: got %d columns %v, expected %v", len(header), header, columns)
	}
	order := make([]int, 0, len(columns))
	for _, name := range columns {
		i, ok := positions[name]
		if !ok {
			return nil, nil, errors.Wrapf(errors.ErrInvalidInput, "parsing header: missing column for feature %s", name)
		}
		order = append(order, i)
	}
	return columns, order, nil
}
