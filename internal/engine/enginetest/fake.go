// Package enginetest provides test doubles for the engine package.
package enginetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sabir1919/Hednet-node/internal/engine"
)

// FakeEngine is an in-memory engine.Engine for tests. Behavior is
// configured through the exported fields; launched browsers and pages are
// recorded so tests can assert on teardown.
type FakeEngine struct {
	mu sync.Mutex

	// LaunchErr, when set, makes every Launch fail.
	LaunchErr error
	// ContextErr, when set, makes every NewContext fail.
	ContextErr error
	// NavigateErr, when set, makes every Navigate fail.
	NavigateErr error
	// NavigateDelay makes Navigate block for the given duration (or until
	// the context is cancelled) before returning.
	NavigateDelay time.Duration
	// EvaluateResult is returned by every Evaluate call.
	EvaluateResult any
	// EvaluateErr, when set, makes every Evaluate fail.
	EvaluateErr error
	// StateBlob is returned by every State call.
	StateBlob []byte

	browsers    []*FakeBrowser
	launchCalls int
}

var _ engine.Engine = (*FakeEngine)(nil)

// Launch records and returns a new FakeBrowser, or LaunchErr.
func (e *FakeEngine) Launch(ctx context.Context, opts engine.LaunchOptions) (engine.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.launchCalls++
	if e.LaunchErr != nil {
		return nil, e.LaunchErr
	}
	b := &FakeBrowser{engine: e, Opts: opts}
	e.browsers = append(e.browsers, b)
	return b, nil
}

// LaunchCalls returns how many times Launch was called, failures included.
func (e *FakeEngine) LaunchCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.launchCalls
}

// Browsers returns all browsers launched so far.
func (e *FakeEngine) Browsers() []*FakeBrowser {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*FakeBrowser, len(e.browsers))
	copy(out, e.browsers)
	return out
}

// AllClosed reports whether every launched browser has been closed.
func (e *FakeEngine) AllClosed() bool {
	for _, b := range e.Browsers() {
		if !b.IsClosed() {
			return false
		}
	}
	return true
}

// FakeBrowser is the browser half of the fake.
type FakeBrowser struct {
	engine *FakeEngine
	mu     sync.Mutex

	// Opts are the options this browser was launched with.
	Opts engine.LaunchOptions
	// SeededState is the blob passed to NewContext, nil if none.
	SeededState []byte

	pages  []*FakePage
	closed bool
}

func (b *FakeBrowser) NewContext(ctx context.Context, state []byte) (engine.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.engine.ContextErr != nil {
		return nil, b.engine.ContextErr
	}
	b.SeededState = state
	p := &FakePage{engine: b.engine}
	b.pages = append(b.pages, p)
	return p, nil
}

func (b *FakeBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for _, p := range b.pages {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
	}
	return nil
}

// IsClosed reports whether Close was called.
func (b *FakeBrowser) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// FakePage is the page half of the fake.
type FakePage struct {
	engine *FakeEngine
	mu     sync.Mutex

	// NavigatedTo records every URL passed to Navigate.
	NavigatedTo []string
	// Evaluated records every script passed to Evaluate.
	Evaluated []string

	closed bool
}

func (p *FakePage) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	p.mu.Lock()
	p.NavigatedTo = append(p.NavigatedTo, url)
	delay := p.engine.NavigateDelay
	navErr := p.engine.NavigateErr
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay >= timeout {
			return fmt.Errorf("navigation to %s exceeded %s", url, timeout)
		}
	}
	return navErr
}

func (p *FakePage) Evaluate(ctx context.Context, script string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Evaluated = append(p.Evaluated, script)
	if p.engine.EvaluateErr != nil {
		return nil, p.engine.EvaluateErr
	}
	return p.engine.EvaluateResult, nil
}

func (p *FakePage) State(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.engine.StateBlob, nil
}

func (p *FakePage) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (p *FakePage) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
