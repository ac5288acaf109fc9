package main

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a set of data and test its performance against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.validateTestFlags()
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
			testDS, err := readDataset(cmd.Context(), rootConfig.logger, rootConfig.v.GetString("test-input"), rootConfig.v.GetString("test-table"), md)
			if err != nil {
				exit(4, err)
			}
			testDS, err = matchTree(testDS, t)
			if err != nil {
				exit(4, err)
			}
			rootConfig.logger.Infow("testing tree", "rows", testDS.Table.Count(), "workers", rootConfig.v.GetInt("workers"))
			successRate, errorCount, err := t.Test(cmd.Context(), testDS.Table, rootConfig.v.GetInt("workers"))
			if err != nil {
				exit(5, errors.Wrap(err, "testing tree"))
			}
			fmt.Printf("%f success rate, failed to classify %d samples\n", successRate, errorCount)
		},
	}
	addTrainingFlags(cmd)
	cmd.Flags().String("test-input", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis connection URL with the data to test the tree against (required)")
	cmd.Flags().String("test-table", defaultTable, "name of the table, collection or key prefix holding the test data on database inputs")
	cmd.Flags().Int("workers", tree.DefaultMaxConcurrency, "maximum number of rows classified concurrently")
	return cmd
}

func (rc *rootCmdConfig) validateTestFlags() error {
	if err := rc.validateTrainingFlags(); err != nil {
		return err
	}
	if rc.v.GetString("test-input") == "" {
		return errors.Wrap(errors.ErrConfiguration, "required test-input flag was not set")
	}
	if rc.v.GetInt("workers") < 1 {
		return errors.Wrapf(errors.ErrConfiguration, "workers must be positive, got %d", rc.v.GetInt("workers"))
	}
	return nil
}

/*
matchTree returns the test dataset with the class column of the tree and
checks its attributes are the ones the tree was grown with, in the same
order.
*/
func matchTree(ds *dataset.Dataset, t *tree.Tree) (*dataset.Dataset, error) {
	ds, err := withClass(ds, t.Class)
	if err != nil {
		return nil, err
	}
	if len(ds.Attributes) != len(t.Attributes) {
		return nil, errors.Wrapf(errors.ErrConfiguration, "test dataset attributes %v do not match tree attributes %v", ds.Attributes, t.Attributes)
	}
	for i, a := range t.Attributes {
		if ds.Attributes[i] != a {
			return nil, errors.Wrapf(errors.ErrConfiguration, "test dataset attributes %v do not match tree attributes %v", ds.Attributes, t.Attributes)
		}
	}
	return ds, nil
}
