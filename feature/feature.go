/*
Package feature describes the attributes of a dataset and its class: their
names and the values they may take.
*/
package feature

import (
	"fmt"

	"github.com/pbanos/id3/errors"
)

/*
Feature represents a property that can be observed and that can only take
a value among a finite set. A feature without available values accepts
any value.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings and
returns a feature with the given name and available values.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, append([]string(nil), availableValues...)}
}

// Name returns a string with the name of the feature
func (f *Feature) Name() string {
	return f.name
}

// AvailableValues returns a string slice with the values available for the feature
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

/*
Valid receives a value and returns nil if it is among the available values
of the feature or the feature has none, otherwise it returns an error
wrapping errors.ErrInvalidInput describing the reason.
*/
func (f *Feature) Valid(value string) error {
	if len(f.availableValues) == 0 {
		return nil
	}
	for _, av := range f.availableValues {
		if av == value {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInvalidInput, "feature %s got unknown value %q", f.name, value)
}

func (f *Feature) String() string {
	return f.name
}

/*
Metadata describes the columns of a dataset: its attribute features, in
the positional order rows follow, and its class feature.
*/
type Metadata struct {
	Attributes []*Feature
	Class      *Feature
}

/*
NewMetadata takes a slice of features and the name of the class feature
and returns metadata with the class feature and the rest of features as
attributes, in the same order. If the class name is empty, the last
feature is used as class. An error wrapping errors.ErrConfiguration is
returned if the class is not among the features or a name is repeated.
*/
func NewMetadata(features []*Feature, class string) (*Metadata, error) {
	if len(features) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "metadata has no features")
	}
	if class == "" {
		class = features[len(features)-1].Name()
	}
	md := &Metadata{}
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if seen[f.Name()] {
			return nil, errors.Wrapf(errors.ErrConfiguration, "feature %q is declared twice", f.Name())
		}
		seen[f.Name()] = true
		if f.Name() == class {
			md.Class = f
			continue
		}
		md.Attributes = append(md.Attributes, f)
	}
	if md.Class == nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "class feature %q is not defined", class)
	}
	return md, nil
}

// AttributeNames returns the names of the attribute features in order.
func (md *Metadata) AttributeNames() []string {
	names := make([]string, 0, len(md.Attributes))
	for _, f := range md.Attributes {
		names = append(names, f.Name())
	}
	return names
}

// Columns returns the names of all features, the class last.
func (md *Metadata) Columns() []string {
	return append(md.AttributeNames(), md.Class.Name())
}

/*
ValidQuery takes a query and returns an error if it does not hold a valid
value for each attribute feature, in order.
*/
func (md *Metadata) ValidQuery(query []string) error {
	if len(query) != len(md.Attributes) {
		return errors.Wrapf(errors.ErrInvalidInput, "query has %d values, expected %d", len(query), len(md.Attributes))
	}
	for i, f := range md.Attributes {
		if err := f.Valid(query[i]); err != nil {
			return err
		}
	}
	return nil
}

/*
ValidRow takes a labeled row and returns an error if it does not hold a
valid value for each attribute feature followed by a valid class value.
*/
func (md *Metadata) ValidRow(row []string) error {
	if len(row) != len(md.Attributes)+1 {
		return errors.Wrapf(errors.ErrInvalidInput, "row has %d values, expected %d", len(row), len(md.Attributes)+1)
	}
	if err := md.ValidQuery(row[:len(row)-1]); err != nil {
		return err
	}
	return md.Class.Valid(row[len(row)-1])
}

func (md *Metadata) String() string {
	return fmt.Sprintf("%v -> %v", md.Attributes, md.Class)
}

/*
BuysComputerMetadata returns the metadata for the dataset returned by
dataset.BuysComputer.
*/
func BuysComputerMetadata() *Metadata {
	return &Metadata{
		Attributes: []*Feature{
			New("age", []string{"youth", "middle_aged", "senior"}),
			New("income", []string{"low", "medium", "high"}),
			New("student", []string{"yes", "no"}),
			New("credit_rating", []string{"excellent", "fair"}),
		},
		Class: New("buys_computer", []string{"yes", "no"}),
	}
}
