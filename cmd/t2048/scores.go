package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a variant (the configured one by default).

Examples:
  t2048 scores
  t2048 scores mini
  t2048 scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	variantID := cfg.Game.Variant
	if len(args) > 0 {
		variantID = args[0]
	}
	variant, err := t2048.VariantByID(variantID)
	if err != nil {
		fail("%v\nRun 't2048 variants' to see available variants.", err)
	}

	store := openStore(cfg)
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variant.ID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", variant.Name)
		return
	}

	scores, err := store.TopScores(variant.ID, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", variant.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "Rank", "Score", "Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "----", "-----", "----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-4s  %s\n", i+1, entry.Score, entry.MaxTile, won, dateStr)
	}

	stats, err := store.Stats(variant.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}
