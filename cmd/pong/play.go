package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/history"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal. The mouse steers the paddles.

Controls:
  Mouse        - Move the paddle on that half of the field
  Space/Enter  - Start or resume
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save the frame to ~/.pong/screenshots
  Ctrl+Y       - Copy the frame to the clipboard
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Logs go to --log-file only, because the game owns the terminal.

Examples:
  pong play
  pong play --theme mono --fps 30
  pong play --sound=false`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound cues")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, pal := mustLoadConfig(cmd)
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	logger, closer, err := logging.New(cfg.Log, "pong", io.Discard)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	recorder := history.NewRecorder(history.SaverFor(store), playerName(), logger)
	sound, stopSound := audio.Observer(cfg.Sound.Enabled, cfg.Sound.Volume, logger)
	defer stopSound()

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
	}
	err = tui.Run(rc, tui.Options{
		Palette:   pal,
		Logger:    logger,
		Observers: []pong.Observer{recorder.Observe, sound},
	})
	if err != nil {
		exitf("Error running game: %v\n", err)
	}
}
