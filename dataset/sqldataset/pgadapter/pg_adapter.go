/*
Package pgadapter provides an implementation of the Adapter interface in
the sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"

	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/errors"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

/*
New takes a PostgreSQL database connection URL and returns an Adapter that
works on the database or an error if the URL cannot be used to open it.
No connection is attempted until the adapter is used.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgresql database")
	}
	return sqldataset.NewAdapter(db, sqldataset.PostgreSQL), nil
}
