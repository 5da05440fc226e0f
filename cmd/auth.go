package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strutfield/ipenrich/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth <token>",
	Short: "Save an ipinfo.io API token to the config file",
	Long: `Save an ipinfo.io API token so lookups run authenticated.

Without a token the free tier still works, but with lower rate limits
and without the ASN, company, and privacy fields.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.IPInfoToken = args[0]
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		configPath, _ := config.GetConfigPath()
		fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
