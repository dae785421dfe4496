package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/justinjohnso-itp/lane-courier/internal/storage"
)

var flagTop int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show persisted run history",
	Long: `Display the best recorded runs from the run database.

Examples:
  courier scores
  courier scores --top 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("240"))
	bestStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("57")).
		Bold(true)

	fmt.Println(titleStyle.Render("Lane Courier - Best Runs"))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'courier run' to record the first one.")
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(
		"  %-4s  %-8s  %-10s  %-6s  %-10s  %s",
		"Rank", "Score", "Deliveries", "Misses", "Distance", "Date")))

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10d  %-6d  %-10.1f  %s\n",
			i+1, r.Score, r.Deliveries, r.Misses, r.Distance, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil && best > 0 {
		fmt.Println(bestStyle.Render(fmt.Sprintf("Best: %d", best)))
	}
}
