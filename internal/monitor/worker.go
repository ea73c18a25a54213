package monitor

import (
	stderrors "errors"
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

// WorkerConfig holds the per-worker tunables.
type WorkerConfig struct {
	// PollInterval is the sleep between metric extractions.
	PollInterval time.Duration
	// Relaunch controls whether a failed session is replaced with a fresh
	// one. Off by default: a failed account keeps showing its failure
	// reason until restart.
	Relaunch bool
	// RelaunchDelay is the wait before a replacement session launches.
	RelaunchDelay time.Duration
}

// NodeWorker drives exactly one account's sessions for the process
// lifetime. Every outcome, success or failure, becomes a StatusRecord in
// the board slot this worker owns; nothing propagates upward.
type NodeWorker struct {
	acct  account.Account
	prox  *proxy.Descriptor
	board *StatusBoard
	cfg   WorkerConfig
	log   logger.Logger

	newSession func() *NodeSession
}

// NewNodeWorker creates a worker for one account.
func NewNodeWorker(acct account.Account, prox *proxy.Descriptor, eng engine.Engine, states *session.Store, board *StatusBoard, scfg SessionConfig, wcfg WorkerConfig, log logger.Logger) *NodeWorker {
	if log == nil {
		log = logger.Noop()
	}
	return &NodeWorker{
		acct:  acct,
		prox:  prox,
		board: board,
		cfg:   wcfg,
		log:   log,
		newSession: func() *NodeSession {
			return NewNodeSession(acct, prox, eng, states, scfg, log)
		},
	}
}

// Run drives sessions until the context is cancelled or a session fails
// with relaunch disabled. Blocking; callers run it in its own goroutine.
func (w *NodeWorker) Run(ctx context.Context) {
	for {
		w.runSession(ctx)

		if ctx.Err() != nil || !w.cfg.Relaunch {
			return
		}

		w.log.Info("relaunching session for %s in %s", w.acct.ID(), w.cfg.RelaunchDelay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.cfg.RelaunchDelay):
		}
	}
}

// runSession runs one full session lifecycle: start, poll until the
// context ends or the session dies, tear down. Panics from the engine
// surface as a session error record rather than killing the process.
func (w *NodeWorker) runSession(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			id := uuid.NewString()
			w.log.Error("worker panic for %s (correlation_id: %s): %v", w.acct.ID(), id, r)
			w.publish(StatusSessionError, 0, "internal error (correlation_id: "+id+")")
		}
	}()

	s := w.newSession()
	defer s.Close()

	if err := s.Start(ctx); err != nil {
		if ctx.Err() != nil || stderrors.Is(err, context.Canceled) {
			// Shutdown, not a session failure: no further records.
			return
		}
		w.publishFailure(err)
		return
	}

	for {
		// A pattern miss is not a failure: the record stays Active with
		// a zero metric, since the dashboard may legitimately read zero.
		points, _ := s.Poll(ctx)
		if ctx.Err() != nil {
			return
		}
		w.publish(StatusActive, points, "")

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.cfg.PollInterval):
		}
	}
}

// publishFailure converts a session error into its status record. The
// error code picks the tag; anything unrecognized is an unknown session
// error with the reason captured as free text.
func (w *NodeWorker) publishFailure(err error) {
	switch {
	case errors.IsCode(err, errors.ErrLaunch):
		w.publish(StatusLaunchError, 0, errors.Summary(err))
	case errors.IsCode(err, errors.ErrNav):
		w.publish(StatusNavigationTimeout, 0, errors.Summary(err))
	default:
		w.publish(StatusSessionError, 0, errors.Summary(err))
	}
	w.log.Warn("session failed for %s: %s", w.acct.ID(), errors.Summary(err))
}

func (w *NodeWorker) publish(status NodeStatus, points int, detail string) {
	w.board.Publish(StatusRecord{
		Account:  w.acct.ID(),
		Proxy:    w.proxyLabel(),
		Points:   points,
		Status:   status,
		Detail:   detail,
		Observed: time.Now(),
	})
}

func (w *NodeWorker) proxyLabel() string {
	if w.prox == nil {
		return ProxyNone
	}
	return w.prox.Label()
}
