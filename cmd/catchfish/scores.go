package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catch-the-fish/internal/platform/tui"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and the fastest wins for a mode
(catchfish when omitted).

Examples:
  catchfish scores
  catchfish scores catchfish_endless
  catchfish scores --recent
  catchfish scores --tui
  catchfish scores catchfish_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent rounds instead")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score and round of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "catchfish"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catchfish list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores of %s\n", gameID)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	if flagScoresRecent {
		printRecent(store, gameID, game.Title())
		return
	}
	printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catchfish play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	wins, err := store.FastestWins(gameID, flagScoresLimit)
	if err == nil && len(wins) > 0 {
		fmt.Println()
		fmt.Println("Fastest Wins")
		fmt.Println()
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Time", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "----", "----")
		for i, r := range wins {
			fmt.Printf("  %-4d  %-12s  %-8s  %s\n", i+1, r.Player, fmt.Sprintf("%.1fs", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Scores: %d  |  Wins: %d  |  Losses: %d  |  Fish caught: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses, stats.TotalCaught)
	}
}

func printRecent(store *storage.Store, gameID, title string) {
	rounds, err := store.RecentRounds(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Recent Rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds played yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-9s  %5s  %7s  %s\n", "Date", "Player", "Outcome", "Score", "Caught", "Time")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-12s  %-9s  %5d  %7d  %.1fs\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Player, r.Outcome, r.Score, r.Catches, r.Duration)
	}
}
