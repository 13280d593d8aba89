package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "esgmate",
	Short: "ESG Mate landing page",
	Long: `esgmate serves the ESG Mate landing page or exports it as a static site.

Configuration is read from the environment and an optional .env file.

Use "esgmate [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
