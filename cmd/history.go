package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upskill-labs/upskill/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessment results",
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

		results, err := st.ResultRepo().Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No completed assessments yet.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s  %-28s score %3d  %d/%d correct\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				r.AssessmentTitle, r.Score,
				r.CorrectAnswers, r.TotalQuestions)
			for _, p := range r.RecommendedPaths {
				fmt.Printf("    path: %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of results to show")
}
