package tui

import (
	"fmt"
	"strings"

	"saker/internal/analysis"
	"saker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultRefMinutes seeds the predictor when no recorded effort exists
// for a reference distance.
var defaultRefMinutes = map[string]float64{
	"5K":            25,
	"10K":           52,
	"Half Marathon": 115,
	"Marathon":      240,
}

// RaceModel is the race-prep screen model
type RaceModel struct {
	queryService *service.QueryService

	refIdx      int     // index into analysis.RaceDistances
	refMinutes  float64 // reference time, minutes
	fromHistory bool    // reference seeded from a recorded effort

	predictions []service.DistancePrediction
	loading     bool
	err         error
}

// NewRaceModel creates a new race-prep model
func NewRaceModel(qs *service.QueryService) RaceModel {
	return RaceModel{
		queryService: qs,
		loading:      true,
		refMinutes:   defaultRefMinutes[analysis.RaceDistances[0].Label],
	}
}

// Init initializes the race screen
func (m RaceModel) Init() tea.Cmd {
	return m.loadReference
}

type raceReferenceMsg struct {
	effort analysis.BestEffort
	ok     bool
	err    error
}

func (m RaceModel) loadReference() tea.Msg {
	effort, ok, err := m.queryService.ReferenceFromHistory()
	return raceReferenceMsg{effort: effort, ok: ok, err: err}
}

// Update handles messages
func (m RaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case raceReferenceMsg:
		m.loading = false
		m.err = msg.err
		if msg.ok {
			m.fromHistory = true
			m.refMinutes = msg.effort.Minutes
			for i, rd := range analysis.RaceDistances {
				if rd.Label == msg.effort.Distance.Label {
					m.refIdx = i
				}
			}
		}
		m.recompute()

	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left":
			m.cycleReference(-1)
		case "l", "right":
			m.cycleReference(1)
		case "+", "=", "up", "k":
			m.refMinutes += 0.5
			m.fromHistory = false
			m.recompute()
		case "-", "down", "j":
			if m.refMinutes > 1 {
				m.refMinutes -= 0.5
				m.fromHistory = false
				m.recompute()
			}
		case "r":
			m.loading = true
			return m, m.loadReference
		}
	}
	return m, nil
}

func (m *RaceModel) cycleReference(dir int) {
	n := len(analysis.RaceDistances)
	m.refIdx = (m.refIdx + dir + n) % n
	m.refMinutes = defaultRefMinutes[analysis.RaceDistances[m.refIdx].Label]
	m.fromHistory = false
	m.recompute()
}

func (m *RaceModel) recompute() {
	ref := analysis.RaceDistances[m.refIdx]
	preds, err := m.queryService.PredictAll(ref.Km, m.refMinutes)
	if err != nil {
		m.err = err
		return
	}
	m.predictions = preds
}

// View renders the race screen
func (m RaceModel) View() string {
	if m.loading {
		return "\n  Loading race prep..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Race Prep - Riegel Projections"))
	lines = append(lines, "")

	ref := analysis.RaceDistances[m.refIdx]
	hours := int(m.refMinutes) / 60
	mins := m.refMinutes - float64(hours*60)
	refTime := fmt.Sprintf("%.1f min", m.refMinutes)
	if hours > 0 {
		refTime = fmt.Sprintf("%dh %.0fm", hours, mins)
	}

	source := "manual"
	if m.fromHistory {
		source = "from your best recorded run"
	}
	lines = append(lines, fmt.Sprintf("  Reference: %s in %s %s",
		metricValueStyle.Render(ref.Label),
		metricValueStyle.Render(refTime),
		statusStyle.MarginTop(0).Render("("+source+")"),
	))
	lines = append(lines, "")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-15s  %10s  %10s", "Distance", "Predicted", "Pace"))
	lines = append(lines, header)

	for _, p := range m.predictions {
		marker := "  "
		if p.Distance.Label == ref.Label {
			marker = "> "
		}
		row := fmt.Sprintf("%s%-13s  %10s  %10s",
			marker, p.Distance.Label, p.Prediction.FormatTime(), p.Prediction.FormatPace())
		if p.Distance.Label == ref.Label {
			lines = append(lines, tableRowStyle.Foreground(primaryColor).Render(row))
		} else {
			lines = append(lines, tableRowStyle.Render(row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  h/l: reference distance  +/-: adjust time  r: reset to best effort"))
	lines = append(lines, statusStyle.Render("  Projections follow Riegel's endurance model (exponent 1.06)."))

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"))
}
