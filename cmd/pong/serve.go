package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pong SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection plays its own match; sessions never share a game.
Finished matches are recorded in the server's history under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on :23234 with auto-generated key
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --host-key ./my_host_key  # Use specific host key
  pong serve --db ./matches.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, pal := mustLoadConfig(cmd)
	if cmd.Flags().Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closer, err := logging.New(cfg.Log, "pong-ssh", os.Stderr)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	serverCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.Server.IdleTimeout(),
		TickRate:    cfg.Display.TickRate,
		Palette:     pal,
	}
	if serverCfg.IdleTimeout == 0 {
		serverCfg.IdleTimeout = 30 * time.Minute
	}

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		exitf("Error creating server: %v\n", err)
	}

	fmt.Printf("Starting pong SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		exitf("Server error: %v\n", err)
	}
}
