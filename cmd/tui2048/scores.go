package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/registry"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode ("2048" when omitted).

Examples:
  tui2048 scores
  tui2048 scores 2048_endless --limit 20
  tui2048 scores --stats
  tui2048 scores 2048 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregated stats for every mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "2048"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !flagStats && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tui2048 list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagStats:
		err = printStats(store)
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s\n", registry.Title(gameID))
		}
	default:
		err = printScores(store, gameID)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tui2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Tile", "Moves", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "-----", "----")

	for i, entry := range scores {
		board := "-"
		if entry.Rows > 0 {
			board = fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5s  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, board, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if counts, err := store.TileCounts(gameID); err == nil && len(counts) > 0 {
		tiles := slices.Sorted(maps.Keys(counts))
		slices.Reverse(tiles)
		fmt.Print("Max tiles:")
		for _, tile := range tiles {
			fmt.Printf("  %d x%d", tile, counts[tile])
		}
		fmt.Println()
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-8s  %-6s  %-8s  %s\n", "Mode", "Runs", "Best", "Tile", "Avg", "Last played")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-5d  %-8d  %-6d  %-8.0f  %s\n",
			info.Title, st.GamesCount, st.HighScore, st.BestTile, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
