package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  racer scores racer
  racer scores racer --limit 25
  racer scores racer --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'racer list' to see available games.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", registry.Title(gameID))
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'racer play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Username
		if player == "" {
			player = entry.UserEmail
		}
		fmt.Printf("  %-4d  %-20s  %-8d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Players: %d\n", stats.HighScore, stats.GamesCount, stats.Players)
	}
}
