// Package main is the entry point for the weekday range picker.
package main

import (
	"fmt"
	"os"

	"github.com/diegoclair/weekday-range-picker/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "picker",
		Short:         "Weekday range picker",
		Long:          `Pick a date range whose bounds fall on weekdays, from Slack or the command line, and see which days of it are weekends.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(classifyCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the .env file and environment variables.
func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
