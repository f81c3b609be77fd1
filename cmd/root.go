package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saladstik/schedulebuilder/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "schedulebuilder",
	Short:         "Enumerate and rank conflict-free course schedules",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
