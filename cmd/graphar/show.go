package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a dataset's header, fields and record count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := datasets.Get(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(map[string]any{
				"name":        ds.Name,
				"description": ds.Description,
				"source":      ds.SourceLocation,
				"fieldNames":  ds.FieldNames,
				"recordCount": len(ds.Records),
			})
		}
		fmt.Printf("Name:        %s\n", ds.Name)
		fmt.Printf("Description: %s\n", ds.Description)
		if ds.SourceLocation != "" {
			fmt.Printf("Source:      %s\n", ds.SourceLocation)
		}
		fmt.Printf("Fields:      %s\n", strings.Join(ds.FieldNames, ", "))
		fmt.Printf("Records:     %d\n", len(ds.Records))
		return nil
	},
}
