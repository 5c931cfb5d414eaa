package cmd

import (
	"fmt"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show audio server information",
	Long:  `Display name, version and host of the connected PulseAudio server together with the current default sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *control.Engine) error {
			info, err := engine.ServerInfo()
			if err != nil {
				return fmt.Errorf("failed to query server info: %w", err)
			}

			fmt.Printf("🎵 Audio Server\n")
			fmt.Printf("═══════════════════════════════════════\n\n")
			fmt.Printf("  • server: %s %s\n", info.Name, info.Version)
			fmt.Printf("  • host: %s@%s\n", info.Username, info.Hostname)
			fmt.Printf("  • default sink: %s\n", info.DefaultSink)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
