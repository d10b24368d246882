// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-fleet-admin",
	Short: "GoFleet-Admin is a web-based operations portal for ground transportation",
	Long: `GoFleet-Admin is a web-based operations portal for ground transportation
providers that offers pricing and tax configuration, quoting, and a
partner-facing dashboard backed by a relational database.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
