// Package main provides the calloutgo command line.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"calloutgo/pkg/version"
)

const defaultConfigPath = "configs/calloutgo.yaml"

var globalOpts struct {
	configPath string
	envFile    string
}

var rootCmd = &cobra.Command{
	Use:   "calloutgo",
	Short: "Audio callouts driven by vehicle telemetry",
	Long: `calloutgo watches a stream of vehicle telemetry and plays short audio
cues for flight events: altitude callouts on descent, orbit, escape,
docking, splashdown, touchdown and braking.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(globalOpts.envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalOpts.configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&globalOpts.envFile, "env-file", ".env", "Environment file loaded before the config")
}

// loadEnv reads KEY=value pairs into the process environment. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}
