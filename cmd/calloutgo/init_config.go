package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"calloutgo/pkg/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default config file and exit",
	Long:  "Writes the default configuration to --config. An existing file is left untouched.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.GenerateDefault(globalOpts.configPath); err != nil {
			return fmt.Errorf("failed to generate config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config file generated: %s\n", globalOpts.configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
}
