// Package engine defines the rendering-engine capability the monitor core
// depends on, and provides a Playwright-backed implementation. The core
// never reaches past this surface: launch, isolated context seeded from a
// state blob, navigation, script evaluation, state export, and teardown.
package engine

import (
	"context"
	"time"
)

// ProxySettings configures the egress proxy for a launched browser.
type ProxySettings struct {
	Server   string // scheme://host:port, no credentials
	Username string
	Password string
}

// LaunchOptions configures a browser launch.
type LaunchOptions struct {
	Headless bool
	Args     []string
	Proxy    *ProxySettings // nil for direct egress
}

// Engine launches browser instances.
type Engine interface {
	Launch(ctx context.Context, opts LaunchOptions) (Browser, error)
}

// Browser is one launched browser instance. Close must be called on every
// exit path; it tears down the instance and any contexts created from it.
type Browser interface {
	// NewContext creates an isolated browsing context with a single page.
	// A non-nil state blob seeds the context with previously exported
	// authentication state.
	NewContext(ctx context.Context, state []byte) (Page, error)
	Close() error
}

// Page is a page within a browsing context.
type Page interface {
	// Navigate loads the given URL, bounded by timeout.
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// Evaluate runs a script against the page and returns its result.
	Evaluate(ctx context.Context, script string) (any, error)
	// State exports the context's persisted authentication state as an
	// opaque blob suitable for a later NewContext.
	State(ctx context.Context) ([]byte, error)
	Close() error
}

// ChromiumArgs are the launch flags used for every session.
var ChromiumArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
}
