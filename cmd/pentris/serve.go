package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/JoshMDonato/Pentris/internal/games/pentris"
	"github.com/JoshMDonato/Pentris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pentris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the variant menu.
Scores are stored per-server (all players share the same leaderboard),
under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pentris/host_key

Examples:
  pentris serve                           # Listen on :23234
  pentris serve --ssh :2222               # Listen on port 2222
  pentris serve --host-key ./my_host_key  # Use specific host key
  pentris serve --idle-timeout 10m        # Drop idle players sooner

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle time before disconnecting a player")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if environ.SSHAddr != "" && !flags.Changed("ssh") {
		flagSSHAddr = environ.SSHAddr
	}
	if environ.HostKey != "" && !flags.Changed("host-key") {
		flagHostKey = environ.HostKey
	}
	if environ.IdleTimeout > 0 && !flags.Changed("idle-timeout") {
		flagIdleTimeout = environ.IdleTimeout
	}
	if environ.Config != "" {
		pentris.SetConfigPath(environ.Config)
	}

	serverLog := logger.WithPrefix("ssh")
	pentris.SetLogger(logger.WithPrefix("session"))

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		Logger:      serverLog,
	})
	if err != nil {
		return err
	}

	serverLog.Info("starting server", "addr", flagSSHAddr, "fps", flagFPS, "db", flagDBPath)
	serverLog.Info("press Ctrl+C to stop")
	return server.ListenAndServe()
}
