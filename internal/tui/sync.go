package tui

import (
	"context"
	"fmt"
	"strings"

	"saker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the sync screen model
type SyncModel struct {
	syncService *service.SyncService
	syncing     bool
	result      *service.SyncResult
	err         error
	done        bool

	progress   service.SyncProgress
	progressCh chan service.SyncProgress
	doneCh     chan SyncDoneMsg
}

// NewSyncModel creates a new sync model. syncService may be nil when
// Strava credentials are not configured.
func NewSyncModel(ss *service.SyncService) SyncModel {
	return SyncModel{
		syncService: ss,
	}
}

// Init initializes the sync screen
func (m SyncModel) Init() tea.Cmd {
	return nil
}

// SyncDoneMsg is sent when sync finishes
type SyncDoneMsg struct {
	Result *service.SyncResult
	Err    error
}

// SyncProgressMsg carries one progress update from a running sync
type SyncProgressMsg service.SyncProgress

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SyncProgressMsg:
		m.progress = service.SyncProgress(msg)
		return m, waitForSync(m.progressCh, m.doneCh)

	case SyncDoneMsg:
		m.syncing = false
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, func() tea.Msg { return SyncCompleteMsg{} }

	case tea.KeyMsg:
		if !m.syncing && m.syncService != nil {
			switch msg.String() {
			case "enter", "s":
				m.syncing = true
				m.done = false
				m.err = nil
				m.result = nil
				m.progress = service.SyncProgress{}
				m.progressCh = make(chan service.SyncProgress)
				m.doneCh = make(chan SyncDoneMsg, 1)
				return m, tea.Batch(
					runSync(m.syncService, m.progressCh, m.doneCh),
					waitForSync(m.progressCh, m.doneCh),
				)
			}
		}
	}
	return m, nil
}

// runSync drives the sync itself; updates arrive through the progress
// channel and the final result through done.
func runSync(ss *service.SyncService, progress chan service.SyncProgress, done chan<- SyncDoneMsg) tea.Cmd {
	return func() tea.Msg {
		result, err := ss.Sync(context.Background(), progress)
		done <- SyncDoneMsg{Result: result, Err: err}
		return nil
	}
}

// waitForSync relays the next progress update into the bubbletea loop.
// The sync closes the progress channel when it finishes, at which point
// the final result is waiting on done.
func waitForSync(progress <-chan service.SyncProgress, done <-chan SyncDoneMsg) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-progress
		if !ok {
			return <-done
		}
		return SyncProgressMsg(p)
	}
}

// View renders the sync screen
func (m SyncModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Strava Sync")
	sections = append(sections, title)

	if m.syncService == nil {
		sections = append(sections, m.renderNotConfigured())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)))
		sections = append(sections, "\n"+statusStyle.Render("  Press 's' or Enter to retry"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.done && !m.syncing {
		sections = append(sections, successStyle.Render("\n  Sync complete!"))
		sections = append(sections, m.renderSummary())
		sections = append(sections, "\n"+statusStyle.Render("  Press '1' to go to dashboard"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.syncing {
		sections = append(sections, m.renderProgress())
	} else {
		sections = append(sections, m.renderStartPrompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SyncModel) renderNotConfigured() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  Strava is not configured.")
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Add your API credentials to ~/.saker/config.json"))
	lines = append(lines, statusStyle.Render("  (get them from https://www.strava.com/settings/api)"))
	lines = append(lines, statusStyle.Render("  then restart with the -auth flag to connect your account."))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderProgress() string {
	var lines []string

	lines = append(lines, "")
	p := m.progress
	switch {
	case p.Total == 0:
		lines = append(lines, "  Fetching new activities from Strava...")
	case p.Completed == 0:
		lines = append(lines, fmt.Sprintf("  Fetched %d activities...", p.Total))
	default:
		lines = append(lines, fmt.Sprintf("  Storing %d/%d: %s", p.Completed, p.Total, p.CurrentActivity))
	}
	lines = append(lines, statusStyle.Render("\n  This may take a moment."))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderStartPrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  This will fetch cardio activities newer than your last sync.")
	lines = append(lines, "  Strength-type Strava entries are skipped; lifting detail")
	lines = append(lines, "  comes from the Hevy CSV import.")
	lines = append(lines, "")

	short, daily := m.syncService.RateLimitStatus()
	lines = append(lines, statusStyle.Render(fmt.Sprintf("  API limits: %d/100 (15min), %d/1000 (daily)", short, daily)))
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Press 's' or Enter to start sync"))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderSummary() string {
	if m.result == nil {
		return ""
	}

	var lines []string
	r := m.result
	lines = append(lines, "")

	if r.ActivitiesStored > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d activities synced", r.ActivitiesStored)))
	} else {
		lines = append(lines, statusStyle.Render("  No new activities"))
	}

	if r.StrengthSkipped > 0 {
		lines = append(lines, statusStyle.Render(fmt.Sprintf("  %d strength entries skipped", r.StrengthSkipped)))
	}

	if len(r.Errors) > 0 {
		lines = append(lines, "")
		lines = append(lines, warningStyle.Render(fmt.Sprintf("  %d errors occurred", len(r.Errors))))
	}

	return strings.Join(lines, "\n")
}
