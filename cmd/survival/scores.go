package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-survival/internal/ledger"
	"github.com/vovakirdan/space-survival/internal/storage"
)

var (
	flagScoresJSON  bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top highscores",
	Long: `Display the top 5 highscores.

With --json the stored ledger is printed exactly as persisted.
With --reset every recorded highscore is deleted.

Examples:
  survival scores
  survival scores --json
  survival scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresJSON, "json", false, "Print the raw ledger JSON")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all highscores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening highscore database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresReset {
		if err := store.Delete(ledger.Key); err != nil {
			return err
		}
		fmt.Fprintln(out, "Highscores cleared.")
		return nil
	}

	if flagScoresJSON {
		rec, err := store.Lookup(ledger.Key)
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Fprintln(out, "[]")
			return nil
		}
		fmt.Fprintln(out, string(rec.Value))
		return nil
	}

	top, err := ledger.New(store, nil).Top(ledger.DisplayLimit)
	if err != nil {
		return fmt.Errorf("error retrieving highscores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Space Survival")
	fmt.Fprintln(out)

	if len(top) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'survival play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Accuracy", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "--------", "----")
	for i, e := range top {
		fmt.Fprintf(out, "  %-4d  %-8s  %-8s  %s\n", i+1, e.Score, e.Accuracy, e.Date)
	}

	if rec, err := store.Lookup(ledger.Key); err == nil && rec != nil && !rec.UpdatedAt.IsZero() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Last updated: %s\n", rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
