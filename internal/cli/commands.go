package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

// Command-specific flags
var (
	monitorAccountsFlag string
	monitorProxiesFlag  string
	monitorScriptFlag   string
	monitorIntervalFlag string
	monitorOnce         bool
	accountsProxiesFlag string
	initForce           bool
)

// monitorCmd starts the live fleet dashboard
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run all node sessions and show the live status table",
	Long: `Launch one headless browser session per account and poll every
dashboard for the points metric, rendering the fleet as a live table.

Each account gets its own row showing the assigned proxy, the latest
points value, the session status, and when it was last observed.
Failed sessions keep their failure reason on screen; healthy ones
keep polling until you quit.

Keyboard shortcuts:
  q / Ctrl+C  Quit and tear down all sessions
  r           Force refresh

Examples:
  hednet-node monitor
  hednet-node monitor --accounts creds.csv --proxies proxies.txt
  hednet-node monitor --interval 30s
  hednet-node monitor --once`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var interval time.Duration
		if monitorIntervalFlag != "" {
			parsed, err := time.ParseDuration(monitorIntervalFlag)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Invalid interval: %s", monitorIntervalFlag),
					"Use a valid duration like 15s, 30s, or 1m")
			}
			if parsed < time.Second {
				return errors.New(errors.ErrConfig,
					"Interval too short",
					"Minimum poll interval is 1s to avoid hammering the dashboard")
			}
			interval = parsed
		}

		return monitorCommand(monitorOptions{
			accounts: monitorAccountsFlag,
			proxies:  monitorProxiesFlag,
			script:   monitorScriptFlag,
			interval: interval,
			once:     monitorOnce,
		})
	},
}

// accountsCmd lists the configured accounts and their proxy assignments
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List configured accounts and proxy assignments",
	Long: `Parse the accounts CSV and proxy list, then print each account with
the proxy it would be assigned. Nothing is launched.

Useful for checking credentials files before starting the monitor.

Examples:
  hednet-node accounts
  hednet-node accounts --proxies proxies.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return accountsCommand(monitorAccountsFlag, accountsProxiesFlag)
	},
}

// initCmd creates a new .hednet.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .hednet.yaml configuration",
	Long: `Initialize a new hednet-node configuration file.

Creates a .hednet.yaml file in the current directory with sensible
defaults, guiding you through the dashboard URL and credential paths
with interactive prompts.

Examples:
  hednet-node init
  hednet-node init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for hednet-node.

Examples:
  # Bash
  hednet-node completion bash > /etc/bash_completion.d/hednet-node

  # Zsh
  hednet-node completion zsh > "${fpath[1]}/_hednet-node"

  # Fish
  hednet-node completion fish > ~/.config/fish/completions/hednet-node.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// monitor command flags
	monitorCmd.Flags().StringVar(&monitorAccountsFlag, "accounts", "", "path to accounts CSV (email,password)")
	monitorCmd.Flags().StringVar(&monitorProxiesFlag, "proxies", "", "path to proxy URL list")
	monitorCmd.Flags().StringVar(&monitorScriptFlag, "script", "", "path to a JS file injected once per session")
	monitorCmd.Flags().StringVar(&monitorIntervalFlag, "interval", "", "poll interval (e.g., 15s, 30s, 1m)")
	monitorCmd.Flags().BoolVar(&monitorOnce, "once", false, "print one snapshot and exit instead of the live table")

	// accounts command flags
	accountsCmd.Flags().StringVar(&monitorAccountsFlag, "accounts", "", "path to accounts CSV (email,password)")
	accountsCmd.Flags().StringVar(&accountsProxiesFlag, "proxies", "", "path to proxy URL list")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
