package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strutfield/ipenrich/internal/config"
	"github.com/strutfield/ipenrich/internal/lookup"
	"github.com/strutfield/ipenrich/internal/report"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <ip>",
	Short: "Print a one-shot enrichment report for an IP address",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ip := args[0]
	if net.ParseIP(ip) == nil {
		return fmt.Errorf("invalid IP address: %s", ip)
	}

	token := config.ResolveToken(tokenFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := lookup.DefaultClient(token)
	return writeReport(ctx, cmd.OutOrStdout(), client, ip)
}

// writeReport gathers and prints the report; split out so tests can drive
// it with a mock client.
func writeReport(ctx context.Context, w io.Writer, client lookup.Client, ip string) error {
	r := report.Gather(ctx, client, ip)
	if errors.Is(r.GeoErr, context.Canceled) || errors.Is(r.RegErr, context.Canceled) {
		return errors.New("lookup interrupted")
	}
	fmt.Fprint(w, r.Text())
	return nil
}
