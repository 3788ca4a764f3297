// pong is a two-paddle Pong for the terminal, a desktop window and SSH.
// Both paddles follow the pointer: the left half of the field steers Player 1,
// the right half Player 2. First to 5 wins.
//
// Usage:
//
//	pong play                - Play in the terminal (mouse steers the paddles)
//	pong window              - Play in a desktop window
//	pong serve               - Start SSH server for remote play
//	pong history             - Show finished matches
//	pong themes              - List color themes
//	pong config              - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Configuration file
//	--theme <id>       - Color theme (default: classic)
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.pong/matches.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagTheme    string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one pointer",
	Long: `Pong is a two-paddle ball game steered with the mouse. Moving the pointer
over the left half of the field moves Player 1's paddle, over the right half
Player 2's. Every return speeds the ball up; first to 5 points wins.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show finished matches
  themes   - List color themes
  config   - Print the default configuration

Examples:
  pong play
  pong play --theme midnight
  pong window --scale 2
  pong serve --ssh :2222
  pong history --plain`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", registry.DefaultTheme, "Color theme")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration file and applies the global flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Display.Theme = flagTheme
	}
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// mustLoadConfig loads the configuration and its theme or exits.
func mustLoadConfig(cmd *cobra.Command) (config.Config, registry.Palette) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	pal, err := registry.Get(cfg.Display.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitf("Run 'pong themes' to see available themes.\n")
	}
	return cfg, pal
}

// openStore opens the match history. Failure is logged and play continues
// without recording.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open match history", "error", err)
		return nil
	}
	return store
}

// playerName identifies the local player in the match history.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
