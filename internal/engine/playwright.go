package engine

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

// PlaywrightEngine implements Engine on top of a Playwright-driven
// Chromium. One PlaywrightEngine is shared by all sessions; each Launch
// produces an independent browser process.
type PlaywrightEngine struct {
	pw *playwright.Playwright
}

var _ Engine = (*PlaywrightEngine)(nil)

// NewPlaywright starts the Playwright driver. Callers must Close the
// returned engine when done.
func NewPlaywright() (*PlaywrightEngine, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLaunch,
			"Failed to start the Playwright driver",
			"Run 'npx playwright install chromium' or 'playwright install' first")
	}
	return &PlaywrightEngine{pw: pw}, nil
}

// Close stops the Playwright driver. Browsers launched from this engine
// must be closed first.
func (e *PlaywrightEngine) Close() error {
	return e.pw.Stop()
}

// Launch starts a Chromium instance with the given options.
func (e *PlaywrightEngine) Launch(ctx context.Context, opts LaunchOptions) (Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     opts.Args,
	}
	if opts.Proxy != nil {
		p := &playwright.Proxy{Server: opts.Proxy.Server}
		if opts.Proxy.Username != "" {
			p.Username = playwright.String(opts.Proxy.Username)
		}
		if opts.Proxy.Password != "" {
			p.Password = playwright.String(opts.Proxy.Password)
		}
		launch.Proxy = p
	}

	browser, err := e.pw.Chromium.Launch(launch)
	if err != nil {
		return nil, err
	}
	return &playwrightBrowser{browser: browser}, nil
}

type playwrightBrowser struct {
	browser playwright.Browser
}

func (b *playwrightBrowser) NewContext(ctx context.Context, state []byte) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var opts playwright.BrowserNewContextOptions
	if len(state) > 0 {
		// Playwright seeds contexts from a file on disk; stage the blob
		// in a temp file that is removed once the context exists.
		tmp, err := os.CreateTemp("", "hednet-state-*.json")
		if err != nil {
			return nil, err
		}
		name := tmp.Name()
		defer os.Remove(name)
		if _, err := tmp.Write(state); err != nil {
			tmp.Close()
			return nil, err
		}
		if err := tmp.Close(); err != nil {
			return nil, err
		}
		opts.StorageStatePath = playwright.String(name)
	}

	bctx, err := b.browser.NewContext(opts)
	if err != nil {
		return nil, err
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, err
	}
	return &playwrightPage{context: bctx, page: page}, nil
}

func (b *playwrightBrowser) Close() error {
	return b.browser.Close()
}

type playwrightPage struct {
	context playwright.BrowserContext
	page    playwright.Page
}

func (p *playwrightPage) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (p *playwrightPage) Evaluate(ctx context.Context, script string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.page.Evaluate(script)
}

func (p *playwrightPage) State(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	state, err := p.context.StorageState()
	if err != nil {
		return nil, err
	}
	return json.Marshal(state)
}

func (p *playwrightPage) Close() error {
	return p.context.Close()
}
