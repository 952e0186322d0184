// Package tui provides the Bubble Tea counter interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/picktally/internal/model"
	"github.com/verte-zerg/picktally/internal/session"
	statsPkg "github.com/verte-zerg/picktally/internal/stats"
	"github.com/verte-zerg/picktally/internal/store"
)

type tickMsg time.Time

// Model implements the Bubble Tea counter UI.
type Model struct {
	config  model.Config
	store   *store.Store
	counter *session.Counter

	width  int
	height int

	lastRate   float64
	lastPerMin float64
	hasLast    bool

	allSuccess  int
	allFail     int
	allDuration int64
	allRate     float64
	allPerMin   float64
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	rateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))

	failButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Background(lipgloss.Color("#EF4444")).
			Bold(true).
			Padding(0, 3)
	successButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Background(lipgloss.Color("#22C55E")).
				Bold(true).
				Padding(0, 3)

	idleBadgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	runningBadgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	finishedBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	footerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a counter TUI model.
func NewModel(cfg model.Config, st *store.Store, counter *session.Counter) *Model {
	m := &Model{
		config:  cfg,
		store:   st,
		counter: counter,
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// Display refresh only; the counter is never mutated on tick.
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyLeft:
		m.counter.RecordFail()
		return m, nil
	case tea.KeyRight:
		m.counter.RecordSuccess()
		return m, nil
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.counter.Start()
		return m, nil
	case "f":
		wasRunning := m.counter.State() == session.StateRunning
		m.counter.Finish()
		if wasRunning {
			m.saveSession()
		}
		return m, nil
	case "r":
		m.counter.Reset()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderCard()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		if footer == "" {
			return content
		}
		return content + "\n" + footer
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderCard() string {
	lines := []string{
		titleStyle.Render(m.config.Task),
		"",
		rateStyle.Render(m.renderRate()),
		detailStyle.Render(m.renderTiming()),
		"",
		m.renderButtons(),
		"",
		m.renderStatus(),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderRate() string {
	return session.FormatRate(m.counter.SuccessRatePercent(), m.counter.Success(), m.counter.Total())
}

func (m *Model) renderTiming() string {
	elapsed := session.FormatElapsed(m.counter.ElapsedSeconds())
	throughput := session.FormatThroughput(m.counter.ThroughputPerMinute())
	return elapsed + "  ·  " + throughput
}

func (m *Model) renderButtons() string {
	fail := failButtonStyle.Render("← Fail")
	success := successButtonStyle.Render("Success →")
	return lipgloss.JoinHorizontal(lipgloss.Top, fail, "  ", success)
}

func (m *Model) renderStatus() string {
	var badge, help string
	switch m.counter.State() {
	case session.StateRunning:
		badge = runningBadgeStyle.Render("RUNNING")
		help = "←/→ record · f finish · r reset · q quit"
	case session.StateFinished:
		badge = finishedBadgeStyle.Render("FINISHED")
		help = "s start · r reset · q quit"
	default:
		badge = idleBadgeStyle.Render("IDLE")
		help = "s start · q quit"
	}
	return badge + "\n" + footerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f%% · %.1f/min", m.lastRate, m.lastPerMin))
	}
	if m.allSuccess+m.allFail > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f%% · %.1f/min", m.allRate, m.allPerMin))
	}
	if len(segments) == 0 {
		return ""
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	sessions, err := m.store.ListSessions(ctx, model.StatsConfig{Task: m.config.Task})
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	last := sessions[len(sessions)-1]
	m.lastRate, m.lastPerMin = statsPkg.SessionMetrics(last.Success, last.Fail, last.DurationMs)
	m.hasLast = true

	for _, s := range sessions {
		m.allSuccess += s.Success
		m.allFail += s.Fail
		m.allDuration += s.DurationMs
	}
	m.recomputeAllTime()
}

func (m *Model) recomputeAllTime() {
	m.allRate, m.allPerMin = statsPkg.SessionMetrics(m.allSuccess, m.allFail, m.allDuration)
}

func (m *Model) saveSession() {
	if !m.config.AutoSave || m.counter.Total() == 0 {
		return
	}
	rec := model.SessionRecord{
		StartedAt:  m.counter.StartedAt(),
		EndedAt:    m.counter.EndedAt(),
		Task:       m.config.Task,
		Success:    m.counter.Success(),
		Fail:       m.counter.Fail(),
		DurationMs: m.counter.Elapsed().Milliseconds(),
	}
	if m.store != nil {
		ctx := context.Background()
		if _, err := m.store.InsertSession(ctx, rec); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	m.lastRate, m.lastPerMin = statsPkg.SessionMetrics(rec.Success, rec.Fail, rec.DurationMs)
	m.hasLast = true
	m.allSuccess += rec.Success
	m.allFail += rec.Fail
	m.allDuration += rec.DurationMs
	m.recomputeAllTime()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
