package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfit/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWarm        []int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the polyfit SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker menu.
Every session shares one engine, so shapes are enumerated once per size.
Scores are stored per server and the SSH user name is kept with each run.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.polyfit/host_key

Examples:
  polyfit serve                           # Listen on :23234
  polyfit serve --ssh :2222               # Listen on port 2222
  polyfit serve --host-key ./my_host_key  # Use specific host key
  polyfit serve --warm 3,4,5,6            # Enumerate sizes before accepting players

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntSliceVar(&flagWarm, "warm", nil, "Piece sizes to enumerate at start (default: the configured piece size)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sizes := flagWarm
	if len(sizes) == 0 {
		sizes = []int{appConfig.Game.PieceSize}
	}
	start := time.Now()
	if err := eng.Warm(sizes...); err != nil {
		return err
	}
	logger.Info("engine warmed", "sizes", sizes, "took", time.Since(start).Round(time.Millisecond))

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with", "cmd", "ssh localhost -p 23234", "address", cfg.Address)
	return server.ListenAndServe(cmd.Context())
}
