package csv

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weather = `outlook,windy,play
sunny,no,no
rainy,yes,no
overcast,no,yes
`

func TestReadDatasetWithoutMetadata(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(weather), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "windy"}, ds.Attributes)
	assert.Equal(t, "play", ds.Class)
	assert.Equal(t, dataset.Table{{"sunny", "no", "no"}, {"rainy", "yes", "no"}, {"overcast", "no", "yes"}}, ds.Table)
}

func TestReadDatasetReordersColumnsByMetadata(t *testing.T) {
	md, err := feature.NewMetadata([]*feature.Feature{
		feature.New("windy", []string{"yes", "no"}),
		feature.New("outlook", []string{"sunny", "rainy", "overcast"}),
		feature.New("play", []string{"yes", "no"}),
	}, "play")
	require.NoError(t, err)
	ds, err := ReadDataset(strings.NewReader(weather), md)
	require.NoError(t, err)
	assert.Equal(t, []string{"windy", "outlook"}, ds.Attributes)
	assert.Equal(t, []string{"no", "sunny", "no"}, ds.Table[0])
}

func TestReadDatasetErrors(t *testing.T) {
	md := feature.BuysComputerMetadata()
	tests := map[string]struct {
		content string
		md      *feature.Metadata
	}{
		"empty stream":   {"", nil},
		"no rows":        {"a,b,class\n", nil},
		"ragged row":     {"a,class\nx,yes\nx,y,no\n", nil},
		"unknown header": {"age,income,student,rating,buys_computer\n", md},
		"invalid value": {
			"age,income,student,credit_rating,buys_computer\nteen,high,no,fair,no\n", md,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadDataset(strings.NewReader(tt.content), tt.md)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput), "%v", err)
		})
	}
}

func TestWriteAndReadDataset(t *testing.T) {
	ds := dataset.BuysComputer()
	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds))
	assert.True(t, strings.HasPrefix(buf.String(), "age,income,student,credit_rating,buys_computer\nyouth,high,no,fair,no\n"))

	path := filepath.Join(t.TempDir(), "buys_computer.csv")
	require.NoError(t, WriteDatasetToFilePath(path, ds))
	read, err := ReadDatasetFromFilePath(path, feature.BuysComputerMetadata())
	require.NoError(t, err)
	assert.Equal(t, ds, read)
}
