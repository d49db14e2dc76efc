package main

import (
	"github.com/spf13/cobra"

	mcpserver "graphar/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset and graph tools over MCP on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Follow external dataset edits while serving.
		if err := datasets.WatchCatalog(cmd.Context()); err != nil {
			return err
		}
		srv := mcpserver.New(mcpserver.Deps{
			Datasets: datasets,
			Graphs:   graphs,
		})
		return srv.ServeStdio()
	},
}
