package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default street config",
	Long: `Print the built-in street configuration as YAML.

Save it, change what you like and pass it back with --config. Keys left
out of a custom file keep their default values.

Examples:
  bondi config > my-street.yaml
  bondi play --config my-street.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
