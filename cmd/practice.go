package cmd

import (
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [topic]",
	Short: "Start a practice session",
	Long:  "Start practicing. With a topic id the selector is skipped and the session opens directly.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topicID := ""
		if len(args) == 1 {
			topicID = args[0]
		}
		return runApp(cmd, topicID)
	},
}
