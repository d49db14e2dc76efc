package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the dataset catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := datasets.List()
		if jsonOutput {
			return printJSON(list)
		}
		if len(list) == 0 {
			fmt.Println("no datasets")
			return nil
		}
		printDatasetTable(list)
		return nil
	},
}
