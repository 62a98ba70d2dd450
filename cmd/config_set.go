package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prdhub/prdhub/internal/config"
)

var configSetCmd = &cobra.Command{
	Use:   "config:set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set writes a single configuration value to the active config file,
preserving comments and the order of existing keys.

Settable keys: default_repo, base_branch, registry_path, default_file,
log_file.

Examples:
  prdhub config:set default_repo acme/prd-registry
  prdhub config:set base_branch develop`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if _, err := os.Stat(path); err != nil {
			if writeErr := config.WriteDefaultConfig(path); writeErr != nil {
				return writeErr
			}
		}
		if err := config.SaveValue(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a default config file",
	Long: `Init creates .prdhub/config.yaml in the current directory with the
default settings and explanatory comments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".prdhub/config.yaml"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configInitCmd)
}
