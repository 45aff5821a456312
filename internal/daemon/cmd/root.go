// Package cmd defines the tintbard command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tintbar-io/tintbar/internal/daemon"
)

var foreground bool

var rootCmd = &cobra.Command{
	Use:   "tintbard",
	Short: "Tintbar taskbar styling daemon",
	Long:  "tintbard keeps every taskbar styled with the configured accent,\nreacting to maximised windows, the Start menu, and aero peek.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return daemon.Run(foreground)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run in foreground (no system tray)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
