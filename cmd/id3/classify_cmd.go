package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

const (
	onUnknownError    = "error"
	onUnknownMajority = "majority"
)

type stdoutFeatureValueRequester struct{}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [values...]",
		Short: "Classify a query",
		Long: `Grow a tree from a set of data and use it to classify a query given as
one value per attribute, in attribute order. Without values, they are
requested one by one on STDIN.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.validateClassifyFlags()
			if err != nil {
				exit(1, err)
			}
			ds, md, err := rootConfig.dataset(cmd.Context())
			if err != nil {
				exit(2, err)
			}
			t, err := rootConfig.grow(ds)
			if err != nil {
				exit(3, err)
			}
			query := args
			if len(query) == 0 {
				query, err = readQuery(md, ds)
				if err != nil {
					exit(4, err)
				}
			}
			label, err := rootConfig.classify(t, md, query)
			if err != nil {
				exit(5, err)
			}
			fmt.Println(label)
		},
	}
	addTrainingFlags(cmd)
	cmd.Flags().String("on-unknown", onUnknownError, "what to do when the query holds a value the tree has no branch for: error, or majority to answer with the majority class of the node")
	return cmd
}

func (rc *rootCmdConfig) validateClassifyFlags() error {
	if err := rc.validateTrainingFlags(); err != nil {
		return err
	}
	switch ou := rc.v.GetString("on-unknown"); ou {
	case onUnknownError, onUnknownMajority:
		return nil
	default:
		return errors.Wrapf(errors.ErrConfiguration, "unknown on-unknown policy %q, expected %s or %s", ou, onUnknownError, onUnknownMajority)
	}
}

/*
classify returns the class predicted by t for the query. With metadata,
the query values must be valid for their features. Values without a
branch are an error unless the on-unknown policy is majority, in which
case the majority class of the node where the lookup failed is returned.
*/
func (rc *rootCmdConfig) classify(t *tree.Tree, md *feature.Metadata, query []string) (string, error) {
	if len(query) != len(t.Attributes) {
		return "", errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidInput, "got %d values, expected %d", len(query), len(t.Attributes)),
			"provide a value for each of %v", t.Attributes)
	}
	if md != nil {
		if err := md.ValidQuery(query); err != nil {
			return "", errors.Wrap(err, "validating query")
		}
	}
	label, err := t.Classify(query)
	var ce *tree.ClassificationError
	if errors.As(err, &ce) && rc.v.GetString("on-unknown") == onUnknownMajority {
		rc.logger.Warnw("no branch for value, answering with the majority class", "attribute", ce.Attribute, "value", ce.Value, "label", ce.Fallback)
		return ce.Fallback, nil
	}
	return label, err
}

/*
readQuery requests a value for each attribute on STDIN. Without metadata,
the values found on the dataset are accepted.
*/
func readQuery(md *feature.Metadata, ds *dataset.Dataset) ([]string, error) {
	if md == nil {
		var err error
		md, err = metadataFromDataset(ds)
		if err != nil {
			return nil, err
		}
	}
	return inputsample.Read(os.Stdin, md, stdoutFeatureValueRequester{})
}

func (stdoutFeatureValueRequester) RequestValueFor(f *feature.Feature) error {
	if len(f.AvailableValues()) == 0 {
		fmt.Printf("Please provide the query's %s:\n", f.Name())
		return nil
	}
	fmt.Printf("Please provide the query's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	fmt.Printf("%q is not a valid value for the query's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	return nil
}
