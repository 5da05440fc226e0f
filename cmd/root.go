package cmd

import (
	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var tokenFlag string

var rootCmd = &cobra.Command{
	Use:   "ipenrich [ip]",
	Short: "IP address enrichment from geolocation and registration data",
	Long: `ipenrich combines ipinfo.io geolocation data with RDAP registration
records into a single report.

Examples:
  ipenrich                  # Interactive launcher
  ipenrich 8.8.8.8          # One-shot report for an address
  ipenrich lookup 8.8.8.8   # Same, as an explicit subcommand`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runLookup(cmd, args)
		}
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "ipinfo.io API token (default: $IPINFO_TOKEN or config file)")
}

func Execute() error {
	return rootCmd.Execute()
}
