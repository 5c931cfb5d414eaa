package cmd

import (
	"fmt"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"

	"github.com/spf13/cobra"
)

var setDefaultSinkCmd = &cobra.Command{
	Use:   "set-default-sink [sink-name]",
	Short: "Make a sink the default and move running streams to it",
	Long: `Make the named sink the default output and move all currently playing
streams over to it. Streams that refuse to move are left where they are.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sinkName := args[0]

		return withEngine(func(engine *control.Engine) error {
			ok, err := engine.SetDefaultSink(sinkName)
			if err != nil {
				return fmt.Errorf("failed to set default sink: %w", err)
			}
			if !ok {
				return fmt.Errorf("sink '%s' not found or could not be made the default", sinkName)
			}

			fmt.Printf("✅ Default sink is now %s\n", sinkName)
			return nil
		})
	},
}
