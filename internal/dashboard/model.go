package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sabir1919/Hednet-node/internal/monitor"
)

// Snapshotter is the read side of the orchestrator the dashboard renders.
type Snapshotter interface {
	Snapshot() []monitor.StatusRecord
	ActiveCount() int
	Size() int
}

// tickMsg drives the periodic table refresh.
type tickMsg time.Time

// Model is the Bubble Tea model for the live status table.
type Model struct {
	orch       Snapshotter
	table      table.Model
	interval   time.Duration
	cancelFunc context.CancelFunc
	quitting   bool
	lastUpdate time.Time
	width      int
	height     int
}

// NewModel creates a dashboard model refreshing at the given interval.
func NewModel(orch Snapshotter, interval time.Duration, cancelFunc context.CancelFunc) Model {
	t := table.New(
		table.WithColumns(tableColumns()),
		table.WithFocused(false),
		table.WithHeight(orch.Size()+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Background(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	m := Model{
		orch:       orch,
		table:      t,
		interval:   interval,
		cancelFunc: cancelFunc,
	}
	m.refresh()
	return m
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "Account", Width: 28},
		{Title: "Proxy", Width: 24},
		{Title: "Points", Width: 8},
		{Title: "Status", Width: 16},
		{Title: "Last", Width: 10},
	}
}

// Init returns the initial command for the model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancelFunc != nil {
				m.cancelFunc()
			}
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.refresh()
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tickCmd()
	}

	return m, nil
}

// refresh rebuilds the table rows from the current orchestrator snapshot.
func (m *Model) refresh() {
	records := m.orch.Snapshot()
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		rows[i] = recordRow(rec)
	}
	m.table.SetRows(rows)
	m.lastUpdate = time.Now()
}

// recordRow formats one status record as a table row.
func recordRow(rec monitor.StatusRecord) table.Row {
	proxy := rec.Proxy
	if proxy == monitor.ProxyNone {
		proxy = "N/A"
	}

	points := strconv.Itoa(rec.Points)
	if rec.Points > 0 {
		points = pointsStyle.Render(points)
	}

	var status string
	switch {
	case rec.Status == monitor.StatusActive:
		status = activeStyle.Render(rec.Status.String())
	case rec.Status == monitor.StatusConnecting:
		status = connectingStyle.Render(rec.Status.String())
	default:
		status = failedStyle.Render(rec.Status.String())
	}

	last := "-"
	if !rec.Observed.IsZero() {
		last = rec.Observed.Format("15:04:05")
	}

	return table.Row{rec.Account, proxy, points, status, last}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Hednet Nodes"))
	sb.WriteString(" ")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%d nodes | %d active | updated %s",
		m.orch.Size(), m.orch.ActiveCount(), m.lastUpdate.Format("15:04:05"))))
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")
	sb.WriteString(footerStyle.Render("r: refresh | q: quit"))

	return sb.String()
}

// tickCmd schedules the next refresh.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
