package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the preset menu.
Runs are stored per-server under the SSH user name (everyone shares
the same scoreboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bondi/host_key

Examples:
  bondi serve                           # Listen on :23234 with auto-generated key
  bondi serve --ssh :2222               # Listen on port 2222
  bondi serve --host-key ./my_host_key  # Use specific host key
  bondi serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSpriteDir, "sprites", "", "Directory with a sprites.yaml override")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bondi-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = base
	cfg.Preset = preset
	cfg.TickRate = flagFPS
	cfg.SpriteDir = flagSpriteDir

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting Bondi Backpackers SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
