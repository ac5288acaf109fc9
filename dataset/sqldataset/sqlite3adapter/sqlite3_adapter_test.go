package sqlite3adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	defer a.Close()

	ds := dataset.BuysComputer()
	require.NoError(t, sqldataset.Write(ctx, a, "customers", ds))

	read, err := sqldataset.Read(ctx, a, "customers", ds.Attributes, ds.Class)
	require.NoError(t, err)
	assert.Equal(t, ds.Table, read.Table)
	assert.Equal(t, ds.Attributes, read.Attributes)
}

func TestWriteReplacesTable(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	defer a.Close()

	ds := dataset.BuysComputer()
	require.NoError(t, sqldataset.Write(ctx, a, "customers", ds))
	require.NoError(t, sqldataset.Write(ctx, a, "customers", ds))

	read, err := sqldataset.Read(ctx, a, "customers", ds.Attributes, ds.Class)
	require.NoError(t, err)
	assert.Equal(t, ds.Table, read.Table)
}
