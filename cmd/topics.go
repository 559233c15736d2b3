package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/topic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the available topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		prov := provider.NewFileProvider(dataDir)

		for _, t := range topic.All() {
			records, err := prov.Questions(context.Background(), t.ID)
			if err != nil {
				fmt.Printf("%-16s %s (unavailable: %v)\n", t.ID, t.Name, err)
				continue
			}
			n := len(question.Normalize(records, t.ID))
			fmt.Printf("%-16s %s (%d questions)\n", t.ID, t.Name, n)
		}
		return nil
	},
}
