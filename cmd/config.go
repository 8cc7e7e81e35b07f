package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialise the configuration",
	Long: `Settings are layered, later files overriding earlier ones:
  1. Built-in defaults (CIDECT Design Guide 8)
  2. ~/.config/gohsjoint/config.yaml
  3. gohsjoint.yaml in the current or a parent directory
  4. The file given with --config

Subcommands:
  show  - Print the effective configuration
  init  - Write the defaults to ~/.config/gohsjoint/config.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the user configuration file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.NewLoader(logger).EnsureUserConfig()
		if err != nil {
			return err
		}
		fmt.Printf("User config: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
