package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"graphar/internal/domain"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printDatasetTable renders the catalog as an aligned table.
func printDatasetTable(list []*domain.Dataset) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tCREATED")
	for _, d := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Description, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}
