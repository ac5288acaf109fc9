package inputsample

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
	failOn    string
}

func (rr *recordingRequester) RequestValueFor(f *feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f *feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, fmt.Sprintf("%s=%s", f.Name(), v))
	if v == rr.failOn {
		return fmt.Errorf("giving up on %s", v)
	}
	return nil
}

func TestRead(t *testing.T) {
	rr := &recordingRequester{}
	input := "youth\nhuge\n high \nno\nfair\n"
	query, err := Read(strings.NewReader(input), feature.BuysComputerMetadata(), rr)
	require.NoError(t, err)
	assert.Equal(t, []string{"youth", "high", "no", "fair"}, query)
	assert.Equal(t, []string{"age", "income", "student", "credit_rating"}, rr.requested)
	assert.Equal(t, []string{"income=huge"}, rr.rejected)
}

func TestReadEOF(t *testing.T) {
	_, err := Read(strings.NewReader("youth\nhigh\n"), feature.BuysComputerMetadata(), &recordingRequester{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestReadRequesterError(t *testing.T) {
	rr := &recordingRequester{failOn: "teen"}
	_, err := Read(strings.NewReader("teen\n"), feature.BuysComputerMetadata(), rr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "giving up on teen")
}
