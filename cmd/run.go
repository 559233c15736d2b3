package cmd

import (
	"fmt"

	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/provider"
	"github.com/abhisek/prepdeck/internal/screens/practice"
	"github.com/abhisek/prepdeck/internal/topic"
	"github.com/spf13/cobra"
)

// runApp opens the progress store, builds dependencies, and launches
// the TUI. A non-empty topicID skips the selector and starts practice
// directly.
func runApp(cmd *cobra.Command, topicID string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := progress.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open progress store: %w", err)
	}
	defer db.Close()

	dataDir, _ := cmd.Flags().GetString("data")
	prov := provider.NewFileProvider(dataDir)
	store := progress.NewStore(db)

	opts := app.Options{
		Provider: prov,
		Store:    store,
	}

	if topicID != "" {
		t, ok := topic.ByID(topicID)
		if !ok {
			return fmt.Errorf("unknown topic %q (run `prepdeck topics` to list them)", topicID)
		}
		opts.InitialScreen = practice.New(prov, store, t)
	}

	return app.Run(opts)
}
