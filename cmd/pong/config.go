package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to ~/.pong/config.yaml
or ./configs/pong.yaml and edit it to change the defaults.

Example:
  pong config > ~/.pong/config.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		_, _ = os.Stdout.Write(config.DefaultYAML())
	},
}
