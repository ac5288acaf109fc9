/*
Package mongodataset reads datasets from and writes them to MongoDB
collections, storing one document per row with a field for every column.
*/
package mongodataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Read takes a MongoDB session, the name of a collection on the session's
default database, the names of the attribute fields and the name of the
class field and returns a dataset with a row for each document in the
collection, in insertion order, or an error.

Documents lacking any of the fields result in an error wrapping
errors.ErrInvalidInput.
*/
func Read(session *mgo.Session, collection string, attributes []string, class string) (*dataset.Dataset, error) {
	columns := append(append([]string(nil), attributes...), class)
	if err := checkFieldNames(collection, columns); err != nil {
		return nil, err
	}
	s := session.Copy()
	defer s.Close()
	var docs []bson.M
	if err := s.DB("").C(collection).Find(nil).Sort("$natural").All(&docs); err != nil {
		return nil, errors.Wrapf(err, "reading documents from collection %s", collection)
	}
	t := make(dataset.Table, 0, len(docs))
	for i, doc := range docs {
		row, err := documentRow(doc, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "reading document %d from collection %s", i, collection)
		}
		t = append(t, row)
	}
	return dataset.New(attributes, class, t)
}

/*
Write takes a MongoDB session, the name of a collection on the session's
default database and a dataset, removes every document in the collection
and inserts a document for each row of the dataset. It returns an error
if the removal or the insertion fails.
*/
func Write(session *mgo.Session, collection string, ds *dataset.Dataset) error {
	columns := ds.Columns()
	if err := checkFieldNames(collection, columns); err != nil {
		return err
	}
	docs := make([]interface{}, 0, len(ds.Table))
	for _, row := range ds.Table {
		docs = append(docs, rowDocument(row, columns))
	}
	s := session.Copy()
	defer s.Close()
	c := s.DB("").C(collection)
	if _, err := c.RemoveAll(nil); err != nil {
		return errors.Wrapf(err, "removing documents from collection %s", collection)
	}
	if err := c.Insert(docs...); err != nil {
		return errors.Wrapf(err, "inserting %d documents in collection %s", len(docs), collection)
	}
	return nil
}

func rowDocument(row, columns []string) bson.D {
	doc := make(bson.D, 0, len(columns))
	for i, c := range columns {
		doc = append(doc, bson.DocElem{Name: c, Value: row[i]})
	}
	return doc
}

func documentRow(doc bson.M, columns []string) ([]string, error) {
	row := make([]string, 0, len(columns))
	for _, c := range columns {
		v, ok := doc[c]
		if !ok || v == nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "missing field %q", c)
		}
		if s, ok := v.(string); ok {
			row = append(row, s)
			continue
		}
		row = append(row, fmt.Sprintf("%v", v))
	}
	return row, nil
}

func checkFieldNames(collection string, columns []string) error {
	if collection == "" {
		return errors.Wrap(errors.ErrConfiguration, "empty collection name")
	}
	if err := dataset.CheckColumnNames(columns); err != nil {
		return err
	}
	for _, c := range columns {
		if c == "_id" {
			return errors.Wrapf(errors.ErrConfiguration, "invalid column name %q: reserved collection field", c)
		}
		if strings.ContainsAny(c, ".$") {
			return errors.Wrapf(errors.ErrConfiguration, "invalid column name %q: contains reserved characters %q or %q", c, ".", "$")
		}
	}
	return nil
}
