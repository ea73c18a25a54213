// Package cli wires the hednet-node commands: the live monitor, account
// inspection, config bootstrap, and the usual version/completion plumbing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the persistent --config override.
var configFlag string

// rootCmd is the base command for hednet-node.
var rootCmd = &cobra.Command{
	Use:   "hednet-node",
	Short: "Monitor a fleet of Hednet accounts from one terminal",
	Long: `hednet-node keeps one headless browser session open per Hednet
account, polls each dashboard for the points metric, and renders the
whole fleet as a live status table.

Accounts come from a CSV of email,password rows. Proxies are optional:
when a proxy list is present, accounts are assigned round-robin.

Examples:
  hednet-node init
  hednet-node monitor
  hednet-node monitor --accounts creds.csv --interval 30s
  hednet-node accounts`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors already carry their ✗ prefix and suggestion.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
