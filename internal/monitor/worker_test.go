package monitor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabir1919/Hednet-node/internal/account"
	"github.com/sabir1919/Hednet-node/internal/engine/enginetest"
	"github.com/sabir1919/Hednet-node/internal/logger"
	"github.com/sabir1919/Hednet-node/internal/proxy"
	"github.com/sabir1919/Hednet-node/internal/session"
)

func newTestWorker(t *testing.T, eng *enginetest.FakeEngine, wcfg WorkerConfig) (*NodeWorker, *StatusBoard) {
	t.Helper()
	acct := account.Account{Email: "user@example.com", Password: "pw"}
	board := NewStatusBoard([]string{acct.ID()})
	states := session.NewStore(t.TempDir())
	w := NewNodeWorker(acct, nil, eng, states, board, testSessionConfig(), wcfg, logger.Noop())
	return w, board
}

func TestWorkerPublishesActiveRecords(t *testing.T) {
	eng := &enginetest.FakeEngine{EvaluateResult: float64(1234)}
	w, board := newTestWorker(t, eng, WorkerConfig{PollInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		rec, ok := board.Get("user@example.com")
		return ok && rec.Status == StatusActive
	}, time.Second, 5*time.Millisecond)

	rec, _ := board.Get("user@example.com")
	assert.Equal(t, 1234, rec.Points)
	assert.Equal(t, ProxyNone, rec.Proxy)
	assert.Empty(t, rec.Detail)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancellation")
	}
	assert.True(t, eng.AllClosed())
}

func TestWorkerExtractionMissStaysActive(t *testing.T) {
	// Evaluate returns null: the metric legitimately reads zero and the
	// node must not degrade to a failure state.
	eng := &enginetest.FakeEngine{EvaluateResult: nil}
	w, board := newTestWorker(t, eng, WorkerConfig{PollInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		rec, ok := board.Get("user@example.com")
		return ok && rec.Status == StatusActive
	}, time.Second, 5*time.Millisecond)

	rec, _ := board.Get("user@example.com")
	assert.Equal(t, 0, rec.Points)

	cancel()
	<-done
}

func TestWorkerLaunchFailureFinalRecord(t *testing.T) {
	eng := &enginetest.FakeEngine{LaunchErr: fmt.Errorf("chromium not found")}
	w, board := newTestWorker(t, eng, WorkerConfig{PollInterval: time.Minute})

	// Relaunch is off, so Run returns after the single failed session.
	w.Run(context.Background())

	rec, ok := board.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, StatusLaunchError, rec.Status)
	assert.Equal(t, 0, rec.Points)
	assert.Contains(t, rec.Detail, "Browser failed to launch")
}

func TestWorkerNavigationFailureFinalRecord(t *testing.T) {
	eng := &enginetest.FakeEngine{NavigateErr: fmt.Errorf("net::ERR_PROXY_CONNECTION_FAILED")}
	w, board := newTestWorker(t, eng, WorkerConfig{PollInterval: time.Minute})

	w.Run(context.Background())

	rec, ok := board.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, StatusNavigationTimeout, rec.Status)
	assert.True(t, eng.AllClosed())
}

func TestWorkerRelaunchReplacesFailedSession(t *testing.T) {
	eng := &enginetest.FakeEngine{LaunchErr: fmt.Errorf("transient")}
	w, _ := newTestWorker(t, eng, WorkerConfig{
		PollInterval:  time.Minute,
		Relaunch:      true,
		RelaunchDelay: time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	// Each loop iteration attempts a fresh launch.
	assert.Greater(t, eng.LaunchCalls(), 1)
}

func TestWorkerCancellationBeforeStartEmitsNothing(t *testing.T) {
	eng := &enginetest.FakeEngine{NavigateDelay: time.Second}
	w, board := newTestWorker(t, eng, WorkerConfig{PollInterval: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	w.Run(ctx)

	// Shutdown is not a failure: the seeded record is untouched.
	rec, ok := board.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, StatusConnecting, rec.Status)
}

func TestWorkerProxyLabelInRecords(t *testing.T) {
	eng := &enginetest.FakeEngine{LaunchErr: fmt.Errorf("refused")}
	acct := account.Account{Email: "user@example.com"}
	prox := &proxy.Descriptor{Scheme: "http", Host: "10.0.0.9", Port: 3128}
	board := NewStatusBoard([]string{acct.ID()})
	w := NewNodeWorker(acct, prox, eng, session.NewStore(t.TempDir()), board, testSessionConfig(), WorkerConfig{}, logger.Noop())

	w.Run(context.Background())

	rec, _ := board.Get("user@example.com")
	assert.Equal(t, "10.0.0.9:3128", rec.Proxy)
}
