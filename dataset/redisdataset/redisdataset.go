/*
Package redisdataset reads datasets from and writes them to Redis.

A dataset is stored under a key prefix on two lists: <prefix>:columns
holds the column names, the class last, and <prefix>:rows holds a
JSON-encoded array of strings for every row.
*/
package redisdataset

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"gopkg.in/redis.v5"
)

/*
Read takes a redis client and a key prefix and returns the dataset stored
under the prefix or an error.
*/
func Read(rc *redis.Client, prefix string) (*dataset.Dataset, error) {
	columns, err := rc.LRange(columnsKey(prefix), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading columns from redis key %q", columnsKey(prefix))
	}
	if len(columns) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "no columns stored under redis key %q", columnsKey(prefix))
	}
	rows, err := rc.LRange(rowsKey(prefix), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading rows from redis key %q", rowsKey(prefix))
	}
	t, err := decodeRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "reading rows from redis key %q", rowsKey(prefix))
	}
	return dataset.New(columns[:len(columns)-1], columns[len(columns)-1], t)
}

/*
Write takes a redis client, a key prefix and a dataset and stores the
dataset under the prefix, replacing whatever was stored there.
*/
func Write(rc *redis.Client, prefix string, ds *dataset.Dataset) error {
	rows, err := encodeRows(ds.Table)
	if err != nil {
		return err
	}
	columns := make([]interface{}, 0, len(ds.Attributes)+1)
	for _, c := range ds.Columns() {
		columns = append(columns, c)
	}
	if _, err := rc.Del(columnsKey(prefix), rowsKey(prefix)).Result(); err != nil {
		return errors.Wrapf(err, "deleting dataset with prefix %q from redis", prefix)
	}
	if _, err := rc.RPush(columnsKey(prefix), columns...).Result(); err != nil {
		return errors.Wrapf(err, "storing columns in redis key %q", columnsKey(prefix))
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := rc.RPush(rowsKey(prefix), rows...).Result(); err != nil {
		return errors.Wrapf(err, "storing rows in redis key %q", rowsKey(prefix))
	}
	return nil
}

func encodeRows(t dataset.Table) ([]interface{}, error) {
	rows := make([]interface{}, 0, len(t))
	for i, row := range t {
		data, err := json.Marshal(row)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding row %d", i)
		}
		rows = append(rows, string(data))
	}
	return rows, nil
}

func decodeRows(rows []string) (dataset.Table, error) {
	t := make(dataset.Table, 0, len(rows))
	for i, r := range rows {
		var row []string
		if err := json.Unmarshal([]byte(r), &row); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "decoding row %d: %v", i, err)
		}
		t = append(t, row)
	}
	return t, nil
}

func columnsKey(prefix string) string {
	return fmt.Sprintf("%s:columns", prefix)
}

func rowsKey(prefix string) string {
	return fmt.Sprintf("%s:rows", prefix)
}
