package dataset

import (
	"testing"

	"github.com/pbanos/id3/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weather = Table{
	{"sunny", "hot", "no"},
	{"rainy", "mild", "yes"},
	{"sunny", "mild", "yes"},
	{"overcast", "hot", "yes"},
	{"rainy", "cool", "no"},
}

func TestTableValidate(t *testing.T) {
	require.NoError(t, weather.Validate(3))

	err := Table{}.Validate(3)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	err = Table{{"a", "b", "c"}, {"a", "b"}}.Validate(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "row 1 has 2 fields, expected 3")
}

func TestTableValuesFirstFoundOrder(t *testing.T) {
	assert.Equal(t, []string{"sunny", "rainy", "overcast"}, weather.Values(0))
	assert.Equal(t, []string{"no", "yes"}, weather.Values(weather.ClassColumn()))
	assert.Equal(t, []ValueCount{{"hot", 2}, {"mild", 2}, {"cool", 1}}, weather.CountValues(1))
}

func TestTableSubsetWithRemovesColumn(t *testing.T) {
	sub := weather.SubsetWith(0, "sunny")
	assert.Equal(t, Table{{"hot", "no"}, {"mild", "yes"}}, sub)
	assert.Equal(t, 2, sub.Width())

	sub[0][0] = "changed"
	assert.Equal(t, "hot", weather[0][1], "subsets must not share rows with the original table")
}

func TestTablePartition(t *testing.T) {
	parts := weather.Partition(1)
	require.Len(t, parts, 3)
	assert.Equal(t, "hot", parts[0].Value)
	assert.Equal(t, Table{{"sunny", "no"}, {"overcast", "yes"}}, parts[0].Table)
	assert.Equal(t, "mild", parts[1].Value)
	assert.Equal(t, Table{{"rainy", "yes"}, {"sunny", "yes"}}, parts[1].Table)
	assert.Equal(t, "cool", parts[2].Value)
	assert.Equal(t, Table{{"rainy", "no"}}, parts[2].Table)
	for _, p := range parts {
		assert.Equal(t, p.Table, weather.SubsetWith(1, p.Value))
	}
}

func TestTableLabelsAndQueries(t *testing.T) {
	assert.Equal(t, []string{"no", "yes", "yes", "yes", "no"}, weather.Labels())
	queries := weather.Queries()
	require.Len(t, queries, 5)
	assert.Equal(t, []string{"sunny", "hot"}, queries[0])
	queries[0][0] = "changed"
	assert.Equal(t, "sunny", weather[0][0])
}

func TestNewDataset(t *testing.T) {
	ds, err := New([]string{"outlook", "temperature"}, "play", weather)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "temperature", "play"}, ds.Columns())

	_, err = New([]string{"outlook", "outlook"}, "play", weather)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))

	_, err = New([]string{"outlook"}, "play", weather)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestBuysComputer(t *testing.T) {
	ds := BuysComputer()
	require.NoError(t, ds.Validate())
	assert.Equal(t, 14, ds.Table.Count())
	assert.Equal(t, []ValueCount{{"no", 5}, {"yes", 9}}, ds.Table.CountValues(ds.Table.ClassColumn()))
}
