package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/games/catchfish"
	"github.com/vovakirdan/catch-the-fish/internal/platform/tui"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (catchfish when omitted).

Controls:
  A/D, Left/Right    - Fly
  S, Down, Space     - Dive
  P/Esc              - Pause
  R                  - Restart (after the round ends)
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Longer time limit, slow fish, gentle progression
  normal - Default settings with progression
  hard   - Short time limit, fast fish
  fixed  - No progression, stays at the config's initial level

Examples:
  catchfish play
  catchfish play catchfish_endless
  catchfish play --difficulty hard
  catchfish play --config ./my-catchfish.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config and --difficulty to the game before creation.
func applyGameFlags() {
	catchfish.SetConfigPath(flagConfig)
	catchfish.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "catchfish"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catchfish list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := sessionLogger()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	publisher := openPublisher(logger)

	runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:     store,
		Publisher: publisher,
		Logger:    logger,
	})

	publisher.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
