package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/avelisk/systems-critical/internal/config"
	"github.com/avelisk/systems-critical/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, ordered by score.

Examples:
  syscrit scores
  syscrit scores --limit 25
  syscrit scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := settings.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded runs cleared.")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Systems Critical - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'syscrit play' to record the first one!")
		return
	}

	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Date", Width: 16},
	}
	rows := make([]table.Row, len(runs))
	for i, entry := range runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(entry.Score),
			strconv.Itoa(entry.Level),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	fmt.Println(t.View())

	best, err := store.BestScore()
	if err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}
}
