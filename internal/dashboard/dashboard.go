// Package dashboard renders the fleet's status records as a live Bubble
// Tea table, redrawn on a fixed interval. Non-TTY output falls back to a
// single plain snapshot.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/sabir1919/Hednet-node/internal/monitor"
)

// Runner couples the dashboard's read side with the orchestrator's run loop.
type Runner interface {
	Snapshotter
	Run(ctx context.Context)
}

// Run starts the orchestrator in the background and the TUI in the
// foreground. Quitting the TUI cancels the orchestrator; Run returns once
// every worker has torn down. Non-TTY stdout gets a one-shot snapshot
// instead of the live table.
func Run(ctx context.Context, orch Runner, interval time.Duration) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return RunOnce(ctx, orch, os.Stdout)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(orch, interval, cancel)
	program := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan struct{})
	go func() {
		orch.Run(ctx)
		close(done)
	}()

	// External cancellation (signals) must also stop the TUI.
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-done
		return err
	}

	cancel()
	<-done
	return nil
}

// onceSettle is how long RunOnce waits for nodes still connecting before
// printing whatever the board holds.
const onceSettle = 90 * time.Second

// RunOnce runs the fleet until every node has reported something (or the
// settle window lapses), prints one snapshot, and shuts everything down.
func RunOnce(ctx context.Context, orch Runner, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		orch.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(onceSettle)
	for settling(orch) && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			cancel()
			<-done
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}

	fmt.Fprint(w, RenderSnapshot(orch.Snapshot()))
	cancel()
	<-done
	return nil
}

// settling reports whether any node is still in its initial connect.
func settling(orch Snapshotter) bool {
	for _, rec := range orch.Snapshot() {
		if rec.Status == monitor.StatusConnecting {
			return true
		}
	}
	return false
}

// RenderSnapshot formats records as a plain aligned table for non-TTY use.
func RenderSnapshot(records []monitor.StatusRecord) string {
	out := fmt.Sprintf("%-28s %-24s %-8s %-16s %s\n", "ACCOUNT", "PROXY", "POINTS", "STATUS", "LAST")
	for _, rec := range records {
		proxy := rec.Proxy
		if proxy == monitor.ProxyNone {
			proxy = "N/A"
		}
		last := "-"
		if !rec.Observed.IsZero() {
			last = rec.Observed.Format("15:04:05")
		}
		out += fmt.Sprintf("%-28s %-24s %-8d %-16s %s\n",
			rec.Account, proxy, rec.Points, rec.Status, last)
	}
	return out
}
