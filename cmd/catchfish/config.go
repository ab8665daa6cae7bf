package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-the-fish/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in config as YAML. Save it to
~/.catchfish/configs/catchfish.yaml or ./configs/catchfish.yaml and edit it,
or pass it to play with --config.

Examples:
  catchfish config > ./configs/catchfish.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
