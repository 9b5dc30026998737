package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Pong SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own single-player match against the AI.
With --db, every session records into the same match history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neonpong/host_key

Examples:
  neonpong serve                           # Listen on :23234 with auto-generated key
  neonpong serve --ssh :2222               # Listen on port 2222
  neonpong serve --host-key ./my_host_key  # Use specific host key
  neonpong serve --db ./matches.db         # Record every session's matches

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", defaults.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

// serverConfig builds the server configuration from the flags.
func serverConfig() (tui.SSHServerConfig, error) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return tui.SSHServerConfig{}, err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg
	cfg.Difficulty = preset
	cfg.TickRate = flagFPS
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serverConfig()
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Neon Pong SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
