// file: cmd/config.go
// version: 1.0.0
// guid: 2e9d7b50-6f18-4a3c-b7e4-0d8c1a5f9b62

package cmd

import (
	"fmt"

	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the current settings to a config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPathArg(args)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if err := config.SaveConfigToFile(path, config.AppConfig, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the effective settings, or those in a config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		if len(args) == 1 {
			loaded, err := config.LoadConfigFromFile(args[0])
			if err != nil {
				return err
			}
			cfg = loaded
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func configPathArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return config.DefaultConfigFilePath()
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
