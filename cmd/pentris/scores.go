package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshMDonato/Pentris/internal/games/pentris"
	"github.com/JoshMDonato/Pentris/internal/registry"
	"github.com/JoshMDonato/Pentris/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best results for a variant, newest ties last.

Examples:
  pentris scores
  pentris scores pentris_relaxed --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := pentris.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'pentris list' to see them", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'pentris play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Lines", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-5d  %-12s  %s\n",
			i+1, e.Score, e.Level, e.Lines, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Best level: %d  Total lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel, stats.TotalLines)
	return nil
}
