// cmd/game/scores.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-tanchiki/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Run:   runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tanchiki")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tanchiki play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Stage", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Stage, entry.Outcome,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
