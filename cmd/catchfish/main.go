// catchfish is a terminal game where a bird hunts a fish swimming across a lake.
//
// Usage:
//
//	catchfish list              - List game modes
//	catchfish play [mode]       - Play a mode (default: catchfish)
//	catchfish menu              - Pick modes interactively
//	catchfish serve             - Start SSH server for remote play
//	catchfish scores [mode]     - Show high scores and fastest wins
//	catchfish config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.catchfish/scores.db)
//	--log-level <level>    - debug, info, warn or error
//	--mqtt-broker <url>    - Publish game events to an MQTT broker
//	--mqtt-topic <root>    - Topic root for published events
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-the-fish/internal/telemetry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagMQTTBroker string
	flagMQTTTopic  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchfish",
	Short: "Catch the Fish - help a hungry bird in your terminal",
	Long: `Catch the Fish is a terminal game. A fish swims back and forth across
the lake; fly the bird above it and dive to catch it before time runs out.

Each catch scores a point, each missed time limit costs one. Reach the goal
to win, drop below zero and the round is lost.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and fastest wins
  config   - Print the default config

Examples:
  catchfish play
  catchfish play catchfish_endless --difficulty hard
  catchfish menu --mqtt-broker tcp://localhost:1883
  catchfish serve --ssh :2222
  catchfish scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catchfish/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagMQTTBroker, "mqtt-broker", "", "MQTT broker URL for game events (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&flagMQTTTopic, "mqtt-topic", telemetry.DefaultConfig().Topic, "MQTT topic root")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// sessionLogger returns a logger for local play. The terminal belongs to the
// game while it runs, so logs go to ~/.catchfish/catchfish.log.
// The returned close func is never nil.
func sessionLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "catchfish"), func() {}
	}
	dir := filepath.Join(home, ".catchfish")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "catchfish"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "catchfish.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "catchfish"), func() {}
	}
	return newLogger(f, "catchfish"), func() { f.Close() }
}

// openPublisher dials the MQTT broker when one is configured.
// Failures are logged and play continues without telemetry.
func openPublisher(logger *log.Logger) telemetry.Publisher {
	if flagMQTTBroker == "" {
		return telemetry.Nop{}
	}

	cfg := telemetry.DefaultConfig()
	cfg.Broker = flagMQTTBroker
	cfg.Topic = flagMQTTTopic

	pub, err := telemetry.Dial(cfg, logger)
	if err != nil {
		logger.Warn("telemetry disabled", "broker", flagMQTTBroker, "error", err)
		return telemetry.Nop{}
	}
	return pub
}
