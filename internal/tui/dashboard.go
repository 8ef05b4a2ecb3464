package tui

import (
	"fmt"
	"sort"
	"time"

	"saker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData(time.Now())
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data yet. Import a Hevy CSV or press '4' to sync with Strava."
	}

	var sections []string

	if m.data.UsingDemo {
		sections = append(sections, warningStyle.Render("  Showing generated sample data. Import or sync to see your own training."))
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPhaseCard(), "  ", m.renderFitnessCard(), "  ", m.renderWeekCard())
	sections = append(sections, topRow)

	midRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderRiskCard(), "  ", m.renderReadinessCard())
	sections = append(sections, midRow)

	if m.data.Fitness != nil && len(m.data.Fitness.Dates) > 2 {
		sections = append(sections, m.renderFitnessChart())
	}
	sections = append(sections, m.renderVolumeChart())

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMuscleCard(), "  ", m.renderZoneCard())
	sections = append(sections, bottomRow)

	sections = append(sections, statusStyle.Render("Press 'r' to refresh, '2' for the ledger, '3' for race prep"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderPhaseCard() string {
	title := cardTitleStyle.Render("Training Phase")

	phase := m.data.OverallPhase
	lines := []string{
		RenderMetric("Phase", phase.Name, ""),
		metricLabelStyle.Render("Signal") + statusColor(phase.Signal).Render(phase.Signal),
		RenderMetric("Combined ACWR", formatRatio(m.data.CombinedACWR.Ratio), ""),
		"",
		RenderMetric("Lifting", formatRatio(m.data.LiftACWR.Ratio), m.data.LiftPhase.Name),
		RenderMetric("Cardio", formatRatio(m.data.CardioACWR.Ratio), m.data.CardioPhase.Name),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderFitnessCard() string {
	title := cardTitleStyle.Render("Fitness")

	if m.data.Fitness == nil {
		return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No sessions yet"))
	}

	lines := []string{
		RenderMetric("Fitness (CTL)", fmt.Sprintf("%.1f", m.data.CTL), ""),
		RenderMetric("Fatigue (ATL)", fmt.Sprintf("%.1f", m.data.ATL), ""),
		RenderMetric("Form (TSB)", fmt.Sprintf("%+.1f", m.data.TSB), ""),
		"",
		statusColor(m.data.FormStatus).Render(m.data.FormStatus),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Tonnage", fmt.Sprintf("%.0f lbs", m.data.WeekTonnage), ""),
		RenderMetric("Cardio", fmt.Sprintf("%.0f min", m.data.WeekCardioMinutes), ""),
		RenderMetric("Active days", fmt.Sprintf("%d", m.data.WeekActiveDays), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(32).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderRiskCard() string {
	title := cardTitleStyle.Render("Load Risk")

	mono := m.data.Monotony
	inter := m.data.Interference

	lines := []string{
		RenderMetric("Monotony", fmt.Sprintf("%.2f", mono.Monotony), "") + " " + statusColor(mono.Status).Render(mono.Status),
		"",
		RenderMetric("Interference", fmt.Sprintf("%d/100", inter.Score), "") + " " + statusColor(inter.Status).Render(inter.Status),
		RenderMetric("Runs before legs", fmt.Sprintf("%d", inter.LSL48), ""),
		RenderMetric("Runs after legs", fmt.Sprintf("%d", inter.LEL24), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderReadinessCard() string {
	title := cardTitleStyle.Render("Race Readiness")

	r := m.data.Readiness
	bar := func(score int) string {
		return RenderProgressBar(float64(score)/100, 20) + fmt.Sprintf(" %3d", score)
	}

	lines := []string{
		metricLabelStyle.Render("Overall") + bar(r.Overall),
		"",
		metricLabelStyle.Render("Consistency") + bar(r.Consistency),
		metricLabelStyle.Render("Lift balance") + bar(r.LiftBalance),
		metricLabelStyle.Render("Cardio balance") + bar(r.CardioBalance),
		metricLabelStyle.Render("Taper") + bar(r.Taper),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderFitnessChart() string {
	title := cardTitleStyle.Render("Fitness & Form - CTL vs ATL")

	curves := m.data.Fitness
	// Chart the trailing 90 days at most
	start := 0
	if len(curves.CTL) > 90 {
		start = len(curves.CTL) - 90
	}

	graph := asciigraph.PlotMany(
		[][]float64{curves.CTL[start:], curves.ATL[start:]},
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.SkyBlue, asciigraph.Salmon),
	)

	legend := statusStyle.Render("CTL (fitness, blue)  ATL (fatigue, red)")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, legend))
}

func (m DashboardModel) renderVolumeChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Volume - last %d weeks", service.ChartWeeks))

	// Put tonnage on the cardio-minutes scale
	scaled := make([]float64, len(m.data.WeeklyTonnage))
	for i, t := range m.data.WeeklyTonnage {
		scaled[i] = t / 1000
	}

	graph := asciigraph.PlotMany(
		[][]float64{scaled, m.data.WeeklyCardio},
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.SkyBlue, asciigraph.Green),
	)

	legend := statusStyle.Render("Tonnage / 1000 lbs (blue)  Cardio minutes (green)")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, legend))
}

func (m DashboardModel) renderMuscleCard() string {
	title := cardTitleStyle.Render("Muscle Balance")

	if len(m.data.MuscleTonnage) == 0 {
		return cardStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No lifting logged"))
	}

	groups := make([]string, 0, len(m.data.MuscleTonnage))
	var max float64
	for g, v := range m.data.MuscleTonnage {
		groups = append(groups, g)
		if v > max {
			max = v
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return m.data.MuscleTonnage[groups[i]] > m.data.MuscleTonnage[groups[j]]
	})

	var lines []string
	for _, g := range groups {
		v := m.data.MuscleTonnage[g]
		lines = append(lines, metricLabelStyle.Width(14).Render(g)+
			RenderProgressBar(v/max, 16)+
			fmt.Sprintf(" %4d sets", m.data.MuscleSets[g]))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderZoneCard() string {
	title := cardTitleStyle.Render("Cardio Zones")

	if len(m.data.ZoneMinutes) == 0 {
		return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No heart-rate data"))
	}

	zones := []string{"Z1", "Z2", "Z3", "Z4", "Z5"}
	var max float64
	for _, z := range zones {
		if m.data.ZoneMinutes[z] > max {
			max = m.data.ZoneMinutes[z]
		}
	}

	var lines []string
	for _, z := range zones {
		min, ok := m.data.ZoneMinutes[z]
		if !ok {
			continue
		}
		lines = append(lines, metricLabelStyle.Width(6).Render(z)+
			RenderProgressBar(min/max, 16)+
			fmt.Sprintf(" %5.0f min", min))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// formatRatio renders an acute:chronic ratio, with a dash when there is
// no chronic history yet.
func formatRatio(ratio *float64) string {
	if ratio == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *ratio)
}
