package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabir1919/Hednet-node/internal/monitor"
)

func init() {
	// Force a fixed color profile so rendered output is deterministic.
	lipgloss.SetColorProfile(termenv.Ascii)
}

// stubOrch is a canned Snapshotter/Runner for rendering tests.
type stubOrch struct {
	records []monitor.StatusRecord
}

func (s *stubOrch) Snapshot() []monitor.StatusRecord { return s.records }

func (s *stubOrch) ActiveCount() int {
	n := 0
	for _, rec := range s.records {
		if rec.Status == monitor.StatusActive {
			n++
		}
	}
	return n
}

func (s *stubOrch) Size() int { return len(s.records) }

func (s *stubOrch) Run(ctx context.Context) { <-ctx.Done() }

func testRecords() []monitor.StatusRecord {
	return []monitor.StatusRecord{
		{
			Account:  "a@x.com",
			Proxy:    "10.0.0.1:8080",
			Points:   1234,
			Status:   monitor.StatusActive,
			Observed: time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC),
		},
		{
			Account: "b@x.com",
			Proxy:   monitor.ProxyNone,
			Status:  monitor.StatusNavigationTimeout,
		},
		{
			Account: "c@x.com",
			Proxy:   monitor.ProxyNone,
			Status:  monitor.StatusConnecting,
		},
	}
}

func TestModelViewShowsAllAccounts(t *testing.T) {
	orch := &stubOrch{records: testRecords()}
	m := NewModel(orch, time.Second, nil)

	view := m.View()
	assert.Contains(t, view, "a@x.com")
	assert.Contains(t, view, "b@x.com")
	assert.Contains(t, view, "c@x.com")
	assert.Contains(t, view, "1234")
	assert.Contains(t, view, "Timeout/Error")
	assert.Contains(t, view, "connecting")
}

func TestModelViewHeaderCounts(t *testing.T) {
	orch := &stubOrch{records: testRecords()}
	m := NewModel(orch, time.Second, nil)

	view := m.View()
	assert.Contains(t, view, "3 nodes")
	assert.Contains(t, view, "1 active")
}

func TestModelProxyNoneShownAsNA(t *testing.T) {
	row := recordRow(monitor.StatusRecord{Account: "a@x.com", Proxy: monitor.ProxyNone})
	assert.Equal(t, "N/A", row[1])
}

func TestModelLastColumn(t *testing.T) {
	observed := time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC)
	row := recordRow(monitor.StatusRecord{Account: "a@x.com", Observed: observed})
	assert.Equal(t, "09:30:15", row[4])

	// No observation yet renders a dash.
	row = recordRow(monitor.StatusRecord{Account: "a@x.com"})
	assert.Equal(t, "-", row[4])
}

func TestModelQuitCancelsOrchestrator(t *testing.T) {
	cancelled := false
	orch := &stubOrch{records: testRecords()}
	m := NewModel(orch, time.Second, func() { cancelled = true })

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = newModel.(Model)

	assert.True(t, cancelled)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelTickRefreshes(t *testing.T) {
	orch := &stubOrch{records: testRecords()}
	m := NewModel(orch, time.Second, nil)

	orch.records[0].Points = 9999
	newModel, cmd := m.Update(tickMsg(time.Now()))
	m = newModel.(Model)

	assert.Contains(t, m.View(), "9999")
	require.NotNil(t, cmd, "tick must reschedule itself")
}

func TestRenderSnapshot(t *testing.T) {
	out := RenderSnapshot(testRecords())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ACCOUNT")
	assert.Contains(t, lines[1], "a@x.com")
	assert.Contains(t, lines[1], "1234")
	assert.Contains(t, lines[1], "09:30:15")
	assert.Contains(t, lines[2], "N/A")
	assert.Contains(t, lines[2], "Timeout/Error")
	assert.Contains(t, lines[3], "connecting")
}

func TestRunOnceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	orch := &stubOrch{records: []monitor.StatusRecord{
		{Account: "a@x.com", Status: monitor.StatusConnecting},
	}}
	err := RunOnce(ctx, orch, &buf)
	assert.Error(t, err)
}
