package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Publish the control interface on the message bus",
	Long: `Connect to the PulseAudio server and publish the control interface on
the message bus. Frontends can then list output profiles and sinks,
switch card profiles and change the default sink remotely.

The daemon runs until it receives SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bus, _ := cmd.Flags().GetString("bus")
		if bus == "" {
			bus = cfg.Bus
		}

		conn, err := pulse.Dial(cfg.Pulse.Server, cfg.Pulse.ClientName)
		if err != nil {
			return fmt.Errorf("failed to connect to audio server: %w", err)
		}

		engine := control.New(conn)
		defer engine.Close()

		srv := server.New(engine, bus)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}

		slog.Info("pulse-dbusctl running - press Ctrl+C to stop")

		// Handle interruption
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		// Wait for interrupt signal
		<-sigChan
		slog.Info("Shutting down...")

		return srv.Stop()
	},
}

func init() {
	serveCmd.Flags().String("bus", "", "message bus to publish on: system or session (overrides config)")
}
