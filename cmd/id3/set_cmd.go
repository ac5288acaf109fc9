package main

import (
	"github.com/spf13/cobra"
)

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Convert sets of data",
		Long: `Read a set of data from an input and write it on an output, possibly of
another kind. Whatever the output held on the table, collection or key
prefix is replaced by the data read.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.validateDatasetFlags()
			if err != nil {
				exit(1, err)
			}
			ds, _, err := rootConfig.dataset(cmd.Context())
			if err != nil {
				exit(2, err)
			}
			err = writeDataset(cmd.Context(), rootConfig.logger, rootConfig.v.GetString("output"), rootConfig.v.GetString("output-table"), ds)
			if err != nil {
				exit(3, err)
			}
			rootConfig.logger.Infow("dataset written", "rows", ds.Table.Count())
		},
	}
	addDatasetFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis connection URL to write the data to (defaults to STDOUT, written as CSV)")
	cmd.Flags().String("output-table", defaultTable, "name of the table, collection or key prefix to write the data to on database outputs")
	return cmd
}
