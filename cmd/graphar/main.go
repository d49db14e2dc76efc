package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graphar/internal/config"
	"graphar/internal/service"
	"graphar/internal/storage"
)

var (
	configPath string
	dataDir    string
	jsonOutput bool

	cfg      *config.Config
	datasets *service.DatasetService
	graphs   *service.GraphService
)

var rootCmd = &cobra.Command{
	Use:   "graphar",
	Short: "Dataset catalog and AR scatter-plot scene builder",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store, err := storage.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open dataset store: %w", err)
		}

		emitter := service.NoopEmitter{}
		datasets = service.NewDatasetService(store, emitter)
		graphs = service.NewGraphService(datasets, emitter)
		graphs.WholeDatasetSniffing = cfg.WholeDatasetSniffing
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.graphar/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "dataset directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
