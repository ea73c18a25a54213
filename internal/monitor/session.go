package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sabir1919/Hednet-node/internal/account"
	"github.com/sabir1919/Hednet-node/internal/engine"
	"github.com/sabir1919/Hednet-node/internal/errors"
	"github.com/sabir1919/Hednet-node/internal/logger"
	"github.com/sabir1919/Hednet-node/internal/proxy"
	"github.com/sabir1919/Hednet-node/internal/session"
)

// Phase is a NodeSession lifecycle phase.
type Phase int

const (
	PhaseLaunching Phase = iota
	PhaseAuthenticating
	PhasePolling
	PhaseClosed
	PhaseFailed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLaunching:
		return "launching"
	case PhaseAuthenticating:
		return "authenticating"
	case PhasePolling:
		return "polling"
	case PhaseClosed:
		return "closed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionConfig holds the per-session tunables.
type SessionConfig struct {
	DashboardURL   string
	NavTimeout     time.Duration
	ExtractTimeout time.Duration
	SettleDelay    time.Duration
	Script         string // optional script source, injected once
}

// NodeSession owns one account's browser session: launch, restore state,
// navigate, persist state, and repeated metric extraction. It never
// retries internally; on failure the engine handle is torn down and the
// owning worker decides what happens next.
type NodeSession struct {
	acct   account.Account
	prox   *proxy.Descriptor
	eng    engine.Engine
	states *session.Store
	cfg    SessionConfig
	log    logger.Logger

	browser engine.Browser
	page    engine.Page
	phase   Phase
}

// NewNodeSession creates a session for one account. prox may be nil for
// direct egress.
func NewNodeSession(acct account.Account, prox *proxy.Descriptor, eng engine.Engine, states *session.Store, cfg SessionConfig, log logger.Logger) *NodeSession {
	if log == nil {
		log = logger.Noop()
	}
	return &NodeSession{
		acct:   acct,
		prox:   prox,
		eng:    eng,
		states: states,
		cfg:    cfg,
		log:    log,
	}
}

// Phase returns the session's current lifecycle phase.
func (s *NodeSession) Phase() Phase {
	return s.phase
}

// Start walks the session from Launching through Authenticating into
// Polling. On any error the engine resources acquired so far are released
// and the session is left in PhaseFailed; the returned error carries a
// LAUNCH or NAV code so the worker can tag the status record.
func (s *NodeSession) Start(ctx context.Context) error {
	s.phase = PhaseLaunching

	opts := engine.LaunchOptions{
		Headless: true,
		Args:     engine.ChromiumArgs,
	}
	if s.prox != nil {
		opts.Proxy = &engine.ProxySettings{
			Server:   s.prox.Server(),
			Username: s.prox.Username,
			Password: s.prox.Password,
		}
	}

	browser, err := s.eng.Launch(ctx, opts)
	if err != nil {
		s.phase = PhaseFailed
		return errors.WrapWithCode(err, errors.ErrLaunch,
			"Browser failed to launch",
			"Check that the engine is installed and the proxy is reachable")
	}
	s.browser = browser

	s.phase = PhaseAuthenticating

	state, restored := s.states.Load(s.acct.ID())
	page, err := browser.NewContext(ctx, state)
	if err != nil {
		s.fail()
		return errors.WrapWithCode(err, errors.ErrLaunch,
			"Browser context failed to start", "")
	}
	s.page = page
	if restored {
		s.log.Debug("restored session state for %s", s.acct.ID())
	}

	if err := page.Navigate(ctx, s.cfg.DashboardURL, s.cfg.NavTimeout); err != nil {
		s.fail()
		return errors.WrapWithCode(err, errors.ErrNav,
			"Dashboard navigation failed",
			"The dashboard may be slow or the proxy unreachable")
	}

	// Let client-side rendering settle before touching the page.
	if s.cfg.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case <-time.After(s.cfg.SettleDelay):
		}
	}

	s.injectScript(ctx)
	s.persistState(ctx)

	s.phase = PhasePolling
	return nil
}

// injectScript runs the optional one-time script. Best-effort: failures
// are logged with a correlation id and never change session state.
func (s *NodeSession) injectScript(ctx context.Context) {
	if s.cfg.Script == "" {
		return
	}
	if _, err := s.page.Evaluate(ctx, s.cfg.Script); err != nil {
		s.log.Warn("script injection failed for %s (correlation_id: %s): %v",
			s.acct.ID(), uuid.NewString(), err)
	}
}

// persistState saves the context's refreshed auth state. Non-fatal: a
// failed save only costs the skip-login on the next restart.
func (s *NodeSession) persistState(ctx context.Context) {
	blob, err := s.page.State(ctx)
	if err != nil {
		s.log.Warn("state export failed for %s: %v", s.acct.ID(), err)
		return
	}
	if err := s.states.Save(s.acct.ID(), blob); err != nil {
		s.log.Warn("state save failed for %s: %v", s.acct.ID(), err)
	}
}

// Poll runs one metric extraction. Only valid in PhasePolling. A miss is
// not an error: the metric legitimately reads zero.
func (s *NodeSession) Poll(ctx context.Context) (int, bool) {
	return ExtractPoints(ctx, s.page, s.cfg.ExtractTimeout)
}

// Close tears down the session's engine resources. Safe to call in any
// phase and more than once. Leaves PhaseFailed intact so failure is still
// observable after teardown.
func (s *NodeSession) Close() {
	s.teardown()
	if s.phase != PhaseFailed {
		s.phase = PhaseClosed
	}
}

func (s *NodeSession) fail() {
	s.teardown()
	s.phase = PhaseFailed
}

func (s *NodeSession) teardown() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}
}
