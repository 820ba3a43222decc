package cli

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order manager, direct and command-dispatching",
	Long: `orders shows one order manager written two ways.

Commands:
  demo     - Run the sample orders through both managers
  run      - Run a YAML script of place/track/cancel steps
  version  - Show version information`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("orders version: %s\n", Version)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
