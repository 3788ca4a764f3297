package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/history"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	flagScale       float64
	flagWindowSound bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window with the field and a button bar (Start, Pause, Restart).
The mouse cursor steers the paddles.

Keys: Space/Enter start, P/Esc pause, R restart, Q quit.

Examples:
  pong window
  pong window --scale 2 --theme midnight`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", true, "Play sound cues")
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, pal := mustLoadConfig(cmd)
	if cmd.Flags().Changed("scale") {
		cfg.Window.Scale = flagScale
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagWindowSound
	}
	if err := cfg.Validate(); err != nil {
		exitf("Error: %v\n", err)
	}

	logger, closer, err := logging.New(cfg.Log, "pong", os.Stderr)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	recorder := history.NewRecorder(history.SaverFor(store), playerName(), logger)
	sound, stopSound := audio.Observer(cfg.Sound.Enabled, cfg.Sound.Volume, logger)
	defer stopSound()

	err = window.Run(window.Options{
		Palette:   pal,
		Scale:     cfg.Window.Scale,
		TickRate:  cfg.Display.TickRate,
		Logger:    logger,
		Observers: []pong.Observer{recorder.Observe, sound},
	})
	if err != nil {
		exitf("Error running window: %v\n", err)
	}
}
