package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sabir1919/Hednet-node/internal/account"
	"github.com/sabir1919/Hednet-node/internal/proxy"
)

var (
	accountsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7D56F4")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#626262"))

	accountsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))
)

// accountsCommand parses the credential files and prints each account with
// the proxy it would be assigned. Nothing is launched.
func accountsCommand(accountsFlag, proxiesFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if accountsFlag != "" {
		cfg.Accounts = accountsFlag
	}
	if proxiesFlag != "" {
		cfg.Proxies = proxiesFlag
	}

	accounts, err := account.Load(cfg.Accounts)
	if err != nil {
		return err
	}

	proxies, err := proxy.LoadFile(cfg.Proxies)
	if err != nil {
		return err
	}

	fmt.Println(accountsHeaderStyle.Render(fmt.Sprintf("  %-4s %-32s %s", "#", "ACCOUNT", "PROXY")))
	for i, acct := range accounts {
		label := "N/A"
		if p := proxy.Assign(i, proxies); p != nil {
			label = p.Label()
		}
		fmt.Printf("  %-4d %-32s %s\n", i+1, acct.ID(), accountsMutedStyle.Render(label))
	}

	fmt.Println()
	summary := fmt.Sprintf("%d accounts, %d proxies", len(accounts), len(proxies))
	fmt.Println(accountsMutedStyle.Render(summary))

	return nil
}
