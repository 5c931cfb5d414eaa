package cmd

import (
	"fmt"
	"strings"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"

	"github.com/spf13/cobra"
)

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "List sinks and the current default",
	Long:  `List all sinks of the audio server with their volumes, mute state and active port, marking the current default sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *control.Engine) error {
			list, err := engine.ListSinks()
			if err != nil {
				return fmt.Errorf("failed to list sinks: %w", err)
			}
			printSinks(list)
			return nil
		})
	},
}

func printSinks(list control.SinkList) {
	fmt.Printf("🎵 Sinks (%d found)\n", len(list.Sinks))
	fmt.Printf("═══════════════════════════════════════\n\n")

	for _, s := range list.Sinks {
		marker := " "
		if s.Default {
			marker = "▶"
		}
		state := ""
		if s.Muted {
			state = " [muted]"
		}
		fmt.Printf("%s %s%s\n", marker, s.Description, state)
		fmt.Printf("   name: %s\n", s.Name)
		fmt.Printf("   index: %d, port: %s, volume: %s\n\n", s.Index, portStateLabel(s), volumeLabel(s.Volumes))
	}

	fmt.Printf("💡 Change the default with: pulse-dbusctl set-default-sink <name>\n")
}

func portStateLabel(s control.SinkStatus) string {
	if s.ActivePort == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", s.ActivePort.Name, s.ActivePort.Availability)
}

func volumeLabel(volumes []float64) string {
	if len(volumes) == 0 {
		return "n/a"
	}
	parts := make([]string, 0, len(volumes))
	for _, v := range volumes {
		parts = append(parts, fmt.Sprintf("%.0f%%", v*100))
	}
	return strings.Join(parts, " / ")
}
