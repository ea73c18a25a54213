package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sabir1919/Hednet-node/internal/account"
	"github.com/sabir1919/Hednet-node/internal/config"
	"github.com/sabir1919/Hednet-node/internal/dashboard"
	"github.com/sabir1919/Hednet-node/internal/engine"
	"github.com/sabir1919/Hednet-node/internal/errors"
	"github.com/sabir1919/Hednet-node/internal/logger"
	"github.com/sabir1919/Hednet-node/internal/monitor"
	"github.com/sabir1919/Hednet-node/internal/proxy"
	"github.com/sabir1919/Hednet-node/internal/session"
)

// monitorOptions are the flag overrides applied on top of the config file.
type monitorOptions struct {
	accounts string
	proxies  string
	script   string
	interval time.Duration
	once     bool
}

// monitorCommand loads config and credentials, builds the fleet, and runs
// the dashboard until interrupted.
func monitorCommand(opts monitorOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	accounts, err := account.Load(cfg.Accounts)
	if err != nil {
		return err
	}

	proxies, err := proxy.LoadFile(cfg.Proxies)
	if err != nil {
		return err
	}

	script, err := loadScript(cfg.Script)
	if err != nil {
		return err
	}

	eng, err := engine.NewPlaywright()
	if err != nil {
		return err
	}
	defer eng.Close()

	orch, err := monitor.NewOrchestrator(
		accounts,
		proxies,
		eng,
		session.NewStore(cfg.StateDir),
		monitor.SessionConfig{
			DashboardURL:   cfg.DashboardURL,
			NavTimeout:     cfg.NavTimeout,
			ExtractTimeout: cfg.ExtractTimeout,
			SettleDelay:    cfg.SettleDelay,
			Script:         script,
		},
		monitor.WorkerConfig{
			PollInterval:  cfg.PollInterval,
			Relaunch:      cfg.Relaunch,
			RelaunchDelay: cfg.RelaunchDelay,
		},
		logger.Default(),
	)
	if err != nil {
		return err
	}

	// Interrupt tears down every session before exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.once {
		return dashboard.RunOnce(ctx, orch, os.Stdout)
	}
	return dashboard.Run(ctx, orch, cfg.RenderInterval)
}

// loadConfig resolves the config file, falling back to defaults when none
// exists and no explicit path was given.
func loadConfig() (*config.Config, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// applyOverrides layers command-line flags over the file config.
func applyOverrides(cfg *config.Config, opts monitorOptions) {
	if opts.accounts != "" {
		cfg.Accounts = opts.accounts
	}
	if opts.proxies != "" {
		cfg.Proxies = opts.proxies
	}
	if opts.script != "" {
		cfg.Script = opts.script
	}
	if opts.interval > 0 {
		cfg.PollInterval = opts.interval
	}
}

// loadScript reads the optional injection script. An unset path is fine;
// a set path that cannot be read is not.
func loadScript(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read script file: "+path,
			"Check the 'script' path in .hednet.yaml")
	}
	return string(data), nil
}
