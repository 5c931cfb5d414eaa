package cmd

import (
	"fmt"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List sound cards and their output profiles",
	Long:  `List all sound cards together with the output profiles that are available and provide at least one sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *control.Engine) error {
			cards, err := engine.ListOutputProfiles()
			if err != nil {
				return fmt.Errorf("failed to list output profiles: %w", err)
			}
			printCardProfiles(cards)
			return nil
		})
	},
}

func printCardProfiles(cards []control.CardProfiles) {
	fmt.Printf("🎵 Output Profiles (%d cards)\n", len(cards))
	fmt.Printf("═══════════════════════════════════════\n\n")

	for _, card := range cards {
		fmt.Printf("📋 %s\n", card.Description)
		fmt.Printf("   card: %s\n", card.Card)
		if len(card.Profiles) == 0 {
			fmt.Printf("   (no usable output profiles)\n\n")
			continue
		}
		for _, p := range card.Profiles {
			marker := " "
			if p.Name == card.ActiveProfile {
				marker = "▶"
			}
			fmt.Printf("  %s %s: %s\n", marker, p.Name, p.Description)
		}
		fmt.Println()
	}

	fmt.Printf("💡 Switch with: pulse-dbusctl set-profile <card> <profile>\n")
}
