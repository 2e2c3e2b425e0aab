package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cyranoaladin/nexus-scoring/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "nexus-scoring",
	Short: "Diagnostic scoring engine for the Nexus tutoring platform",
	Long: "nexus-scoring — converts student diagnostic payloads into normalized\n" +
		"performance indices, a tier recommendation, a trust score, weak-point\n" +
		"priorities, and rendering-ready structured results.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML policy file (overrides "+config.EnvConfigPath+")")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(versionCmd)
}
