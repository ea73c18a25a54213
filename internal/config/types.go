package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultDashboardURL is the Hednet dashboard every node session polls.
const DefaultDashboardURL = "https://app.hednet.io/dashboard"

// Config represents the complete .hednet.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// DashboardURL is the page each browser session navigates to.
	DashboardURL string `yaml:"dashboard_url" mapstructure:"dashboard_url"`

	// Accounts is the path to the email,password CSV.
	Accounts string `yaml:"accounts" mapstructure:"accounts"`

	// Proxies is the path to the proxy URL list. Optional: when the file
	// is absent every node connects directly.
	Proxies string `yaml:"proxies" mapstructure:"proxies"`

	// Script is the path to an optional JS file injected once per session
	// after the dashboard loads.
	Script string `yaml:"script" mapstructure:"script"`

	// StateDir is where per-account session state files are written.
	StateDir string `yaml:"state_dir" mapstructure:"state_dir"`

	// PollInterval is the sleep between metric extractions.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// RenderInterval is how often the status table redraws.
	RenderInterval time.Duration `yaml:"render_interval" mapstructure:"render_interval"`

	// NavTimeout bounds dashboard navigation.
	NavTimeout time.Duration `yaml:"nav_timeout" mapstructure:"nav_timeout"`

	// ExtractTimeout bounds a single metric extraction.
	ExtractTimeout time.Duration `yaml:"extract_timeout" mapstructure:"extract_timeout"`

	// SettleDelay is the wait after navigation before the page is touched,
	// giving client-side rendering time to finish.
	SettleDelay time.Duration `yaml:"settle_delay" mapstructure:"settle_delay"`

	// Relaunch replaces a failed session with a fresh one after
	// RelaunchDelay. Off by default: a failed account keeps showing its
	// failure reason until restart.
	Relaunch      bool          `yaml:"relaunch" mapstructure:"relaunch"`
	RelaunchDelay time.Duration `yaml:"relaunch_delay" mapstructure:"relaunch_delay"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		DashboardURL:   DefaultDashboardURL,
		Accounts:       "accounts.csv",
		Proxies:        "proxies.txt",
		StateDir:       ".",
		PollInterval:   15 * time.Second,
		RenderInterval: time.Second,
		NavTimeout:     60 * time.Second,
		ExtractTimeout: 10 * time.Second,
		SettleDelay:    5 * time.Second,
		Relaunch:       false,
		RelaunchDelay:  time.Minute,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
