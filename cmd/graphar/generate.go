package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <count>",
	Short: "Generate and ingest a synthetic dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("count must be an integer: %w", err)
		}
		ds, result, err := datasets.Generate(cmd.Context(), count)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("generated %q with %d records\n", ds.Name, result.RecordsKept)
		return nil
	},
}
