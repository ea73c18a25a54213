package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/sabir1919/Hednet-node/internal/config"
	"github.com/sabir1919/Hednet-node/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .hednet.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		dashboardURL := cfg.DashboardURL
		accountsPath := cfg.Accounts
		proxiesPath := cfg.Proxies
		relaunch := cfg.Relaunch

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Dashboard URL").
					Description("The Hednet dashboard each session navigates to").
					Value(&dashboardURL).
					Validate(func(s string) error {
						u, err := url.Parse(strings.TrimSpace(s))
						if err != nil || u.Scheme == "" || u.Host == "" {
							return fmt.Errorf("enter a full URL like https://app.hednet.io/dashboard")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Accounts CSV").
					Description("Path to email,password rows, one account per line").
					Placeholder("accounts.csv").
					Value(&accountsPath).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("accounts path is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Proxy list (optional)").
					Description("Path to proxy URLs, assigned round-robin; missing file means direct connections").
					Placeholder("proxies.txt").
					Value(&proxiesPath),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Relaunch failed sessions automatically?").
					Description("Off keeps the failure reason on screen until restart").
					Value(&relaunch),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --force with defaults")
		}

		cfg.DashboardURL = strings.TrimSpace(dashboardURL)
		cfg.Accounts = strings.TrimSpace(accountsPath)
		cfg.Proxies = strings.TrimSpace(proxiesPath)
		cfg.Relaunch = relaunch
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# hednet-node configuration
# Run 'hednet-node monitor' to start the fleet dashboard
# See: https://github.com/sabir1919/Hednet-node for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  hednet-node accounts  - Check parsed credentials")
	fmt.Println("  hednet-node monitor   - Start the fleet dashboard")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force bool) error {
	return Init(InitOptions{
		Overwrite: force,
	})
}
