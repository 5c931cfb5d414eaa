package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfg          *config.Config
	cfgFile      string
	verboseLevel int
)

var rootCmd = &cobra.Command{
	Use:   "pulse-dbusctl",
	Short: "Control PulseAudio profiles and sinks over the message bus",
	Long: `pulse-dbusctl publishes the mixer state of a PulseAudio server on the
message bus so that display-less frontends can switch card profiles and
move audio between outputs without linking against the native client
library.

The serve command runs the daemon. The remaining commands talk to the
audio server directly and are meant for inspection from a shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLogging(verboseLevel)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pulse-dbusctl/config.yaml)")
	rootCmd.PersistentFlags().IntVarP(&verboseLevel, "verbose", "v", 0, "verbose level: 0=configured log level, 1=debug")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(sinksCmd)
	rootCmd.AddCommand(setProfileCmd)
	rootCmd.AddCommand(setDefaultSinkCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures slog from the configured level, raised to debug
// by the verbose flag
func setupLogging(level int) {
	var slogLevel slog.Level
	switch {
	case level >= 1:
		slogLevel = slog.LevelDebug
	case cfg != nil:
		slogLevel = cfg.SlogLevel()
	default:
		slogLevel = slog.LevelInfo
	}

	// Configure text handler for clean terminal output
	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
