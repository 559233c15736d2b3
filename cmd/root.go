package cmd

import (
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Digital SAT math practice in the terminal",
	Long:  "Prepdeck — a Bluebook-style terminal interface for practicing Digital SAT math, one question at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite progress file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Directory of question bank JSON files (overrides the embedded banks)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the progress file path using --db flag (highest
// priority), then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	return progress.DefaultDBPath()
}
