package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"graphar/internal/scene"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(scene.Themes())
		}
		for _, t := range scene.Themes() {
			fmt.Printf("%s\t%s\n", t.ID, t.Name)
		}
		return nil
	},
}
