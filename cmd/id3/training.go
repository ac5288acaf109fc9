package main

import (
	"context"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

const defaultTable = "samples"

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis connection URL with the training data (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("metadata", "m", "", "path to a YAML file with metadata describing the features on the input (required for database inputs)")
	cmd.Flags().StringP("table", "t", defaultTable, "name of the table, collection or key prefix holding the data on database inputs")
	cmd.Flags().StringP("class", "c", "", "name of the feature the tree should predict (defaults to the metadata class or the last input column)")
	cmd.Flags().Bool("sample", false, "use the built-in buys_computer dataset instead of reading an input")
}

func addTrainingFlags(cmd *cobra.Command) {
	addDatasetFlags(cmd)
	cmd.Flags().Int("max-depth", 0, "maximum depth of the grown tree, 0 for no limit")
}

func (rc *rootCmdConfig) validateDatasetFlags() error {
	if rc.v.GetBool("sample") && rc.v.GetString("input") != "" {
		return errors.Wrap(errors.ErrConfiguration, "cannot set both sample and input flags at the same time")
	}
	return nil
}

func (rc *rootCmdConfig) validateTrainingFlags() error {
	if err := rc.validateDatasetFlags(); err != nil {
		return err
	}
	if rc.v.GetInt("max-depth") < 0 {
		return errors.Wrapf(errors.ErrConfiguration, "max-depth must not be negative, got %d", rc.v.GetInt("max-depth"))
	}
	return nil
}

/*
metadata returns the metadata for the configured dataset: the built-in
one for the sample, the one read from the metadata file or nil if none is
set. The class flag, when set, overrides the class of the metadata.
*/
func (rc *rootCmdConfig) metadata() (*feature.Metadata, error) {
	var md *feature.Metadata
	if rc.v.GetBool("sample") {
		md = feature.BuysComputerMetadata()
	} else if path := rc.v.GetString("metadata"); path != "" {
		rc.logger.Infow("reading metadata", "file", path)
		var err error
		md, err = yaml.ReadMetadataFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	if md == nil {
		return nil, nil
	}
	return metadataWithClass(md, rc.v.GetString("class"))
}

// dataset returns the configured dataset along its metadata, which may be nil.
func (rc *rootCmdConfig) dataset(ctx context.Context) (*dataset.Dataset, *feature.Metadata, error) {
	md, err := rc.metadata()
	if err != nil {
		return nil, nil, err
	}
	var ds *dataset.Dataset
	if rc.v.GetBool("sample") {
		ds = dataset.BuysComputer()
	} else {
		ds, err = readDataset(ctx, rc.logger, rc.v.GetString("input"), rc.v.GetString("table"), md)
		if err != nil {
			return nil, nil, err
		}
	}
	ds, err = withClass(ds, rc.v.GetString("class"))
	if err != nil {
		return nil, nil, err
	}
	return ds, md, nil
}

// grow grows a tree from ds with the configured options.
func (rc *rootCmdConfig) grow(ds *dataset.Dataset) (*tree.Tree, error) {
	rc.logger.Infow("growing tree",
		"rows", ds.Table.Count(),
		"attributes", len(ds.Attributes),
		"class", ds.Class,
		"max-depth", rc.v.GetInt("max-depth"),
	)
	t, err := id3.GrowDataset(ds, id3.WithMaxDepth(rc.v.GetInt("max-depth")), id3.WithTracer(newTracer(rc.logger)))
	if err != nil {
		return nil, errors.Wrap(err, "growing the tree")
	}
	rc.logger.Infow("tree grown", "depth", t.Depth(), "leaves", t.Leaves())
	return t, nil
}

/*
metadataWithClass returns metadata with the given class feature, moving
the former class feature to the end of the attributes. An empty class
leaves the metadata unchanged.
*/
func metadataWithClass(md *feature.Metadata, class string) (*feature.Metadata, error) {
	if class == "" || class == md.Class.Name() {
		return md, nil
	}
	features := append(append([]*feature.Feature(nil), md.Attributes...), md.Class)
	return feature.NewMetadata(features, class)
}

/*
withClass returns a dataset with the given column as class, moving the
former class column to the end of the attributes. An empty class leaves
the dataset unchanged.
*/
func withClass(ds *dataset.Dataset, class string) (*dataset.Dataset, error) {
	if class == "" || class == ds.Class {
		return ds, nil
	}
	col := -1
	for i, a := range ds.Attributes {
		if a == class {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Wrapf(errors.ErrConfiguration, "class %q is not a column of the dataset", class)
	}
	attributes := append(without(ds.Attributes, col), ds.Class)
	t := make(dataset.Table, 0, len(ds.Table))
	for _, row := range ds.Table {
		label := row[len(row)-1]
		t = append(t, append(append(without(row[:len(row)-1], col), label), row[col]))
	}
	return dataset.New(attributes, class, t)
}

/*
metadataFromDataset returns metadata with a feature for every column of
ds, accepting the values found on the column.
*/
func metadataFromDataset(ds *dataset.Dataset) (*feature.Metadata, error) {
	features := make([]*feature.Feature, 0, len(ds.Attributes)+1)
	for i, name := range ds.Columns() {
		features = append(features, feature.New(name, ds.Table.Values(i)))
	}
	return feature.NewMetadata(features, ds.Class)
}

func without(values []string, i int) []string {
	result := make([]string, 0, len(values))
	result = append(result, values[:i]...)
	return append(result, values[i+1:]...)
}
