package monitor

import (
	"context"
	"sync"

	"github.com/sabir1919/Hednet-node/internal/account"
	"github.com/sabir1919/Hednet-node/internal/engine"
	"github.com/sabir1919/Hednet-node/internal/errors"
	"github.com/sabir1919/Hednet-node/internal/logger"
	"github.com/sabir1919/Hednet-node/internal/proxy"
	"github.com/sabir1919/Hednet-node/internal/session"
)

// Orchestrator pairs every account with its assigned proxy, runs one
// NodeWorker per account, and owns the StatusBoard the renderer reads.
type Orchestrator struct {
	accounts []account.Account
	proxies  []proxy.Descriptor
	board    *StatusBoard
	workers  []*NodeWorker
}

// NewOrchestrator builds the worker set. Fails only when the account list
// is empty; everything after startup is per-account and non-fatal.
func NewOrchestrator(accounts []account.Account, proxies []proxy.Descriptor, eng engine.Engine, states *session.Store, scfg SessionConfig, wcfg WorkerConfig, log logger.Logger) (*Orchestrator, error) {
	if len(accounts) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No accounts to monitor",
			"Add at least one email,password row to the accounts CSV")
	}
	if log == nil {
		log = logger.Noop()
	}

	board := NewStatusBoard(account.IDs(accounts))

	workers := make([]*NodeWorker, len(accounts))
	for i, acct := range accounts {
		prox := proxy.Assign(i, proxies)
		workers[i] = NewNodeWorker(acct, prox, eng, states, board, scfg, wcfg, log)
	}

	return &Orchestrator{
		accounts: accounts,
		proxies:  proxies,
		board:    board,
		workers:  workers,
	}, nil
}

// Run starts every worker and blocks until all of them return, which
// happens when the context is cancelled (or every session has failed with
// relaunch disabled).
func (o *Orchestrator) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, w := range o.workers {
		wg.Add(1)
		go func(w *NodeWorker) {
			defer wg.Done()
			w.Run(ctx)
		}(w)
	}
	wg.Wait()
}

// Snapshot returns the current record for every account in load order.
// Safe to call from any goroutine at any time; never blocks on workers.
func (o *Orchestrator) Snapshot() []StatusRecord {
	return o.board.Snapshot()
}

// ActiveCount returns how many accounts are currently polling.
func (o *Orchestrator) ActiveCount() int {
	return o.board.ActiveCount()
}

// Size returns the number of monitored accounts.
func (o *Orchestrator) Size() int {
	return o.board.Size()
}

// Assignment returns the proxy assigned to the account at the given load
// index, or nil for direct egress.
func (o *Orchestrator) Assignment(index int) *proxy.Descriptor {
	return proxy.Assign(index, o.proxies)
}
