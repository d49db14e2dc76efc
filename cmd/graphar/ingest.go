package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"graphar/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Validate a JSON dataset file and add it to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, result, err := datasets.IngestFrom(cmd.Context(), "json_file",
			ingest.SourceConfig{"filePath": args[0]})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("ingested %q: shape %s, %d/%d records kept\n",
			ds.Name, result.Shape, result.RecordsKept, result.RecordsRead)
		return nil
	},
}
