/*
Package yaml provides methods to parse dataset metadata, the features
describing its columns, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with a feature specification in YAML
and returns the metadata parsed from it or an error.

The YAML is expected to be an object with a features property and an
optional class property. The value for features should be an object with
a property for each feature, in the positional order of the dataset
columns, whose value is the list of valid values for the feature (an
empty list accepts any value). The class property names the feature to
predict; when missing, the last feature is used.

	class: buys_computer
	features:
	  age: [youth, middle_aged, senior]
	  student: [yes, no]
	  buys_computer: [yes, no]

Values are taken verbatim, so unquoted yes and no remain strings.
*/
func ReadMetadata(md []byte) (*feature.Metadata, error) {
	ordered := struct {
		Class    string
		Features yaml.MapSlice
	}{}
	if err := yaml.Unmarshal(md, &ordered); err != nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "parsing yaml features: %v", err)
	}
	if len(ordered.Features) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "metadata has no feature information")
	}
	values := struct {
		Features map[string][]string
	}{}
	if err := yaml.Unmarshal(md, &values); err != nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "parsing yaml feature values: %v", err)
	}
	features := make([]*feature.Feature, 0, len(ordered.Features))
	for _, item := range ordered.Features {
		name := fmt.Sprintf("%v", item.Key)
		features = append(features, feature.New(name, values.Features[name]))
	}
	return feature.NewMetadata(features, ordered.Class)
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading features yaml file %s", filepath)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing features yaml file %s", filepath)
	}
	return metadata, nil
}
