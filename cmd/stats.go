package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Imaliure/adaptive-language-learning/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Attempts().Summary(context.Background())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Total == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Attempts:        %d\n", stats.Total)
		fmt.Printf("Correct:         %d (%.0f%%)\n", stats.Correct, stats.Accuracy()*100)
		fmt.Printf("Mean similarity: %.0f%%\n", stats.MeanSimilarity*100)
		fmt.Printf("Words revealed:  %d\n", stats.Reveals)
		return nil
	},
}
