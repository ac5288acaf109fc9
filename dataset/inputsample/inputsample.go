/*
Package inputsample reads the attribute values of a query from an
io.Reader, one line per value.
*/
package inputsample

import (
	"bufio"
	"io"
	"strings"

	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
Read takes an io.Reader, the metadata of a dataset and a
FeatureValueRequester and returns a query with a value for each
attribute in the metadata, in metadata order.

Every value is requested with the FeatureValueRequester before reading
it. Lines are read from the reader, with surrounding whitespace trimmed,
until one holds a valid value for the feature. Lines with values that are
not valid are rejected with the RejectValueFor method of the requester.

Reaching the end of the reader before obtaining every value returns an
error wrapping errors.ErrInvalidInput.
*/
func Read(r io.Reader, md *feature.Metadata, fvr FeatureValueRequester) ([]string, error) {
	scanner := bufio.NewScanner(r)
	query := make([]string, 0, len(md.Attributes))
	for _, f := range md.Attributes {
		if err := fvr.RequestValueFor(f); err != nil {
			return nil, err
		}
		value, err := readValue(scanner, f, fvr)
		if err != nil {
			return nil, errors.Wrapf(err, "reading value for %s", f.Name())
		}
		query = append(query, value)
	}
	return query, nil
}

func readValue(scanner *bufio.Scanner, f *feature.Feature, fvr FeatureValueRequester) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if f.Valid(line) == nil {
			return line, nil
		}
		if err := fvr.RejectValueFor(f, line); err != nil {
			return "", err
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.Wrap(errors.ErrInvalidInput, "EOF when requesting value")
}
