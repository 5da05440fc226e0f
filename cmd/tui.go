package cmd

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/strutfield/ipenrich/internal/config"
	"github.com/strutfield/ipenrich/internal/eventlog"
	"github.com/strutfield/ipenrich/internal/lookup"
	"github.com/strutfield/ipenrich/internal/report"
	"github.com/strutfield/ipenrich/internal/tui/launcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive launcher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	token := config.ResolveToken(tokenFlag)
	client := lookup.DefaultClient(token)

	log := eventlog.Open(eventlog.DefaultPath)
	defer log.Close()

	return launcher.Run(launcher.Config{
		Transform:    enrichTransform(client),
		Log:          log,
		ChordTimeout: config.ChordTimeout,
	})
}

// enrichTransform is the form's submit handler: validate the input as an
// IP address, gather both lookups, and render the report as markdown.
func enrichTransform(client lookup.Client) launcher.Transform {
	return func(ctx context.Context, input string) (string, error) {
		if net.ParseIP(input) == nil {
			return "", fmt.Errorf("invalid IP address: %s", input)
		}
		return report.Gather(ctx, client, input).Markdown(), nil
	}
}
