package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Training ledger"},
		{"3", "Race prep"},
		{"4", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Close help"},
	})
	sections = append(sections, navSection)

	dashSection := m.renderSection("Dashboard / Ledger", []keyHelp{
		{"r", "Refresh data"},
		{"j / k", "Scroll the ledger"},
	})
	sections = append(sections, dashSection)

	raceSection := m.renderSection("Race Prep", []keyHelp{
		{"h / l", "Change reference distance"},
		{"+ / -", "Adjust reference time"},
		{"r", "Reset to best recorded effort"},
	})
	sections = append(sections, raceSection)

	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	sections = append(sections, m.renderMetricsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"ACWR", "Acute (7d) vs chronic (28d) daily load. 0.8-1.3 is the productive band."},
		{"Monotony", "Mean / stddev of daily load. High = same stress every day, little recovery."},
		{"Interference", "Runs scheduled within 48h before or 24h after leg days."},
		{"CTL (Fitness)", "Long exponential average (42d) of combined load."},
		{"ATL (Fatigue)", "Short exponential average (7d) of combined load."},
		{"TSB (Form)", "CTL - ATL. Positive = fresh, deeply negative = run down."},
		{"Readiness", "Mean of consistency, both load ratios, and taper sub-scores."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
