package cmd

import (
	"fmt"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"

	"github.com/spf13/cobra"
)

var setProfileCmd = &cobra.Command{
	Use:   "set-profile [card-name] [profile-name]",
	Short: "Activate a profile on a sound card",
	Long: `Activate the given profile on a sound card. Card and profile are matched
by name, the same names the profiles command prints.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardName, profileName := args[0], args[1]

		return withEngine(func(engine *control.Engine) error {
			ok, err := engine.SetProfile(cardName, profileName)
			if err != nil {
				return fmt.Errorf("failed to set profile: %w", err)
			}
			if !ok {
				return fmt.Errorf("card '%s' or profile '%s' not found", cardName, profileName)
			}

			fmt.Printf("✅ Profile %s active on %s\n", profileName, cardName)
			return nil
		})
	},
}
