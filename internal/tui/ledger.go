package tui

import (
	"fmt"
	"strings"
	"time"

	"saker/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LedgerModel is the recent-activity ledger screen model
type LedgerModel struct {
	queryService *service.QueryService
	entries      []service.LedgerEntry
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewLedgerModel creates a new ledger model
func NewLedgerModel(qs *service.QueryService, width, height int) LedgerModel {
	m := LedgerModel{
		queryService: qs,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the ledger screen
func (m LedgerModel) Init() tea.Cmd {
	return m.loadLedger
}

type ledgerLoadedMsg struct {
	entries []service.LedgerEntry
	err     error
}

func (m LedgerModel) loadLedger() tea.Msg {
	entries, err := m.queryService.GetLedger(time.Now())
	return ledgerLoadedMsg{entries: entries, err: err}
}

// Update handles messages
func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.entries != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadLedger
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the ledger screen
func (m LedgerModel) View() string {
	if m.loading {
		return "\n  Loading ledger..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m LedgerModel) renderContent() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("Training Ledger - last %d days", service.LedgerDays)))
	lines = append(lines, "")

	if len(m.entries) == 0 {
		lines = append(lines, statusStyle.Render("  Nothing logged in this window."))
		return strings.Join(lines, "\n")
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-8s  %-9s  %-18s  %-24s  %s",
		"Date", "Type", "Session", "Detail", "Load"))
	lines = append(lines, header)

	for _, e := range m.entries {
		tagStyle := successStyle
		if e.Tag == "Strength" {
			tagStyle = lipgloss.NewStyle().Foreground(primaryColor)
		}

		row := fmt.Sprintf("%-8s  %s  %-18s  %-24s  %s",
			e.Date.Format("Jan 02"),
			tagStyle.Render(fmt.Sprintf("%-9s", e.Tag)),
			truncate(e.Title, 18),
			e.Detail,
			statusColor(e.Load).Render(e.Load),
		)
		lines = append(lines, tableRowStyle.Render(row))
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Load key: Light < Medium < High (by tonnage for lifts, duration for cardio)"))

	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
