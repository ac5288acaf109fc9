package main

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/redisdataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	"go.uber.org/zap"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

const mongoDialTimeout = 10 * time.Second

type sourceKind int

const (
	csvSource sourceKind = iota
	sqlite3Source
	postgresqlSource
	mongodbSource
	redisSource
)

func (k sourceKind) String() string {
	switch k {
	case sqlite3Source:
		return "SQLite3"
	case postgresqlSource:
		return "PostgreSQL"
	case mongodbSource:
		return "MongoDB"
	case redisSource:
		return "Redis"
	}
	return "CSV"
}

/*
kindOf returns the kind of source a location points to: PostgreSQL,
MongoDB and Redis connection URLs, SQLite3 .db files or CSV for anything
else, including the empty location standing for STDIN or STDOUT.
*/
func kindOf(location string) sourceKind {
	switch {
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return postgresqlSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongodbSource
	case strings.HasPrefix(location, "redis://"):
		return redisSource
	case strings.HasSuffix(location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

/*
readDataset reads the dataset at location. CSV files take column names
from their header, and Redis stores them along the rows, but the rest of
sources need metadata to know which columns to read. When metadata is
given, the columns of the dataset follow its order and every row read is
validated against it.
*/
func readDataset(ctx context.Context, logger *zap.SugaredLogger, location, table string, md *feature.Metadata) (*dataset.Dataset, error) {
	kind := kindOf(location)
	if md == nil && kind != csvSource && kind != redisSource {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrConfiguration, "metadata is required to read a dataset from %v", kind),
			"set the metadata flag to a YAML file describing the features")
	}
	logger.Infow("reading dataset", "source", kind.String(), "location", redact(location), "table", table)
	var ds *dataset.Dataset
	var err error
	switch kind {
	case sqlite3Source, postgresqlSource:
		var a sqldataset.Adapter
		a, err = sqlAdapter(kind, location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		ds, err = sqldataset.Read(ctx, a, table, md.AttributeNames(), md.Class.Name())
	case mongodbSource:
		var session *mgo.Session
		session, err = mgo.DialWithTimeout(location, mongoDialTimeout)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to MongoDB")
		}
		defer session.Close()
		ds, err = mongodataset.Read(session, table, md.AttributeNames(), md.Class.Name())
	case redisSource:
		var rc *redis.Client
		rc, err = redisClient(location)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		ds, err = redisdataset.Read(rc, table)
	default:
		return csv.ReadDatasetFromFilePath(location, md)
	}
	if err == nil && md != nil {
		ds, err = conformRows(ds, md)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset from %v", kind)
	}
	return ds, nil
}

// writeDataset writes ds to the location, on the given table for database sources.
func writeDataset(ctx context.Context, logger *zap.SugaredLogger, location, table string, ds *dataset.Dataset) error {
	kind := kindOf(location)
	logger.Infow("writing dataset", "source", kind.String(), "location", redact(location), "table", table, "rows", ds.Table.Count())
	var err error
	switch kind {
	case sqlite3Source, postgresqlSource:
		var a sqldataset.Adapter
		a, err = sqlAdapter(kind, location)
		if err != nil {
			return err
		}
		defer a.Close()
		err = sqldataset.Write(ctx, a, table, ds)
	case mongodbSource:
		var session *mgo.Session
		session, err = mgo.DialWithTimeout(location, mongoDialTimeout)
		if err != nil {
			return errors.Wrap(err, "connecting to MongoDB")
		}
		defer session.Close()
		err = mongodataset.Write(session, table, ds)
	case redisSource:
		var rc *redis.Client
		rc, err = redisClient(location)
		if err != nil {
			return err
		}
		defer rc.Close()
		err = redisdataset.Write(rc, table, ds)
	default:
		return csv.WriteDatasetToFilePath(location, ds)
	}
	if err != nil {
		return errors.Wrapf(err, "writing dataset to %v", kind)
	}
	return nil
}

func sqlAdapter(kind sourceKind, location string) (sqldataset.Adapter, error) {
	if kind == postgresqlSource {
		return pgadapter.New(location)
	}
	return sqlite3adapter.New(location)
}

/*
redisClient takes a redis://[:password@]host:port[/db] URL and returns a
client for it.
*/
func redisClient(location string) (*redis.Client, error) {
	opts, err := redisOptions(location)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func redisOptions(location string) (*redis.Options, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "parsing redis URL: %v", err)
	}
	if u.Host == "" {
		return nil, errors.Wrap(errors.ErrConfiguration, "parsing redis URL: no host")
	}
	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfiguration, "parsing redis URL: invalid database %q", db)
		}
	}
	return opts, nil
}

/*
conformRows returns ds with its columns rearranged by name to follow the
metadata order, checking every row holds valid values for the metadata
features. Stored columns that do not match the metadata features are an
error wrapping errors.ErrConfiguration.
*/
func conformRows(ds *dataset.Dataset, md *feature.Metadata) (*dataset.Dataset, error) {
	stored := ds.Columns()
	positions := make(map[string]int, len(stored))
	for i, c := range stored {
		positions[c] = i
	}
	columns := md.Columns()
	if len(columns) != len(stored) {
		return nil, errors.Wrapf(errors.ErrConfiguration, "stored columns %v do not match metadata %v", stored, columns)
	}
	order := make([]int, 0, len(columns))
	for _, name := range columns {
		i, ok := positions[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrConfiguration, "stored columns %v do not match metadata %v", stored, columns)
		}
		order = append(order, i)
	}
	t := make(dataset.Table, 0, len(ds.Table))
	for r, row := range ds.Table {
		conformed := make([]string, len(order))
		for i, c := range order {
			conformed[i] = row[c]
		}
		if err := md.ValidRow(conformed); err != nil {
			return nil, errors.Wrapf(err, "row %d", r)
		}
		t = append(t, conformed)
	}
	return dataset.New(columns[:len(columns)-1], columns[len(columns)-1], t)
}
// redact hides the password of URL locations from logs.
func redact(location string) string {
	u, err := url.Parse(location)
	if err != nil || u.User == nil {
		return location
	}
	return u.Redacted()
}
