package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/topic"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <topic>",
	Short: "Delete saved progress for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := topic.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q (run `prepdeck topics` to list them)", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Delete all saved progress for %s? [y/N] ", t.Name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		db, err := progress.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
		defer db.Close()

		if err := progress.NewStore(db).Delete(context.Background(), t.ID); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}

		fmt.Printf("Progress for %s deleted.\n", t.Name)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
