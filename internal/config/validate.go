package config

import (
	"fmt"
	"net/url"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but hednet-node only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest release: https://github.com/sabir1919/Hednet-node/releases")
	}

	if err := validateDashboardURL(cfg.DashboardURL); err != nil {
		return err
	}

	if cfg.Accounts == "" {
		return errors.New(errors.ErrConfig,
			"No accounts file configured",
			"Set 'accounts' in .hednet.yaml or pass --accounts")
	}

	if err := validateIntervals(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the interval settings in your .hednet.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .hednet.yaml.")
	}

	return nil
}

func validateDashboardURL(raw string) error {
	if raw == "" {
		return errors.New(errors.ErrConfig,
			"No dashboard URL configured",
			"Set 'dashboard_url' in .hednet.yaml")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Dashboard URL '%s' isn't a valid URL", raw),
			"Use a full URL like https://app.hednet.io/dashboard")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Dashboard URL scheme '%s' isn't supported", u.Scheme),
			"Use http or https")
	}
	return nil
}

func validateIntervals(cfg *Config) error {
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive (got %v)", cfg.PollInterval)
	}
	if cfg.RenderInterval <= 0 {
		return fmt.Errorf("render_interval must be positive (got %v)", cfg.RenderInterval)
	}
	if cfg.NavTimeout <= 0 {
		return fmt.Errorf("nav_timeout must be positive (got %v)", cfg.NavTimeout)
	}
	if cfg.ExtractTimeout <= 0 {
		return fmt.Errorf("extract_timeout must be positive (got %v)", cfg.ExtractTimeout)
	}
	if cfg.SettleDelay < 0 {
		return fmt.Errorf("settle_delay can't be negative (got %v)", cfg.SettleDelay)
	}
	if cfg.Relaunch && cfg.RelaunchDelay < 0 {
		return fmt.Errorf("relaunch_delay can't be negative (got %v)", cfg.RelaunchDelay)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
