package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/storage"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last saved final score",
	Long: `Print the final score of the most recently finished session.

Examples:
  brickball last
  brickball last --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runLast,
}

func runLast(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, ok, err := store.LastScore(brickball.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving last score: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("No finished session yet.")
		return
	}

	fmt.Printf("%d\n", entry.Score)
	fmt.Printf("Finished %s (session %s)\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.SessionID)
}
