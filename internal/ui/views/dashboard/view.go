package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "studyhub/internal/modules/dashboard/dto"
	pomodorodto "studyhub/internal/modules/pomodoro/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Summary(ctx context.Context) (dashboarddto.SummaryOutput, error)
	Countdown(ctx context.Context) (dashboarddto.CountdownOutput, error)
}

// Timer is the focus timer the dashboard drives.
type Timer interface {
	Tick() pomodorodto.Event
	Toggle()
	Reset()
	State() pomodorodto.TimerState
}

// ─── messages ────────────────────────────────────────────────────────────────

type SummaryLoadedMsg struct {
	Summary dashboarddto.SummaryOutput
	Err     error
}

type CountdownLoadedMsg struct {
	Countdown dashboarddto.CountdownOutput
	Err       error
}

// TickMsg drives the countdown and the focus timer.
type TickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	summary   dashboarddto.SummaryOutput
	countdown dashboarddto.CountdownOutput
	timer     Timer
	interval  time.Duration
	bar       progress.Model
	spinner   spinner.Model
	loading   bool
	err       error
	width     int
	height    int
}

// New builds the dashboard. interval is the tick period; every tick moves the
// focus timer by one second.
func New(port Port, timer Timer, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		timer:    timer,
		interval: interval,
		bar:      theme.Bar(30, theme.Green),
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.tickCmd(), m.spinner.Tick)
}

// Refresh reloads the summary.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, m.width/2-16)

	case SummaryLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.summary = msg.Summary
			m.countdown = msg.Summary.Countdown
		}

	case CountdownLoadedMsg:
		if msg.Err == nil {
			m.countdown = msg.Countdown
		}

	case TickMsg:
		cmds = append(cmds, m.tickCmd(), m.loadCountdownCmd())
		switch m.timer.Tick() {
		case pomodorodto.EventWorkDone:
			cmds = append(cmds, status("Session complete. Time for a break!"))
		case pomodorodto.EventBreakDone:
			cmds = append(cmds, status("Break over. Ready to focus again?"))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "p":
			m.timer.Toggle()
		case "r":
			m.timer.Reset()
		case "R":
			cmds = append(cmds, m.Refresh())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}
	if m.err != nil {
		return theme.Bad.Render("dashboard: " + m.err.Error())
	}

	half := max(20, m.width/2-2)
	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.Pane.Width(half).Render(m.renderWelcome()),
		theme.Pane.Width(half).Render(m.renderProgress()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		theme.PaneActive.Width(half).Render(m.renderTimer()),
		theme.Pane.Width(half).Render(m.renderToday()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderWelcome() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Welcome back, %s!", s.Greeting)) + "\n")
	sb.WriteString(theme.Muted.Render("Keep pushing forward. Every moment counts!") + "\n\n")

	c := m.countdown
	if c.Passed {
		sb.WriteString(theme.Hot.Render("Exam day has arrived. All the best!"))
		return sb.String()
	}
	sb.WriteString(theme.Muted.Render("Time until the exam") + "\n")
	sb.WriteString(theme.Big.Render(fmt.Sprintf("%dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d days to go", s.DaysUntilExam)))
	return sb.String()
}

func (m Model) renderProgress() string {
	s := m.summary
	row := func(label string, pct int) string {
		return fmt.Sprintf("%-8s %s %3d%%", label, m.bar.ViewAs(float64(pct)/100), pct)
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Syllabus") + "\n\n")
	sb.WriteString(row("Overall", s.ProgressOverall) + "\n")
	sb.WriteString(row("Quants", s.ProgressQuants) + "\n")
	sb.WriteString(row("Verbal", s.ProgressVerbal) + "\n\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d topics completed", s.TopicsDone, s.TopicsTotal)))
	return sb.String()
}

func (m Model) renderTimer() string {
	t := m.timer.State()
	label := "Focus Time"
	color := theme.Hot
	if t.Phase == pomodorodto.PhaseBreak {
		label = "Break Time"
		color = theme.Warn
	}
	state := "paused"
	if t.Running {
		state = "running"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Pomodoro") + "  " + theme.Muted.Render(state) + "\n\n")
	sb.WriteString(color.Render(t.Clock) + "  " + theme.Muted.Render(label) + "\n")
	sb.WriteString(m.bar.ViewAs(float64(t.Percent)/100) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s sessions  %s minutes focused\n",
		theme.Good.Render(fmt.Sprint(t.Sessions)), theme.Good.Render(fmt.Sprint(t.FocusedMinutes))))
	sb.WriteString(theme.Muted.Render("space: start/pause  r: reset"))
	return sb.String()
}

func (m Model) renderToday() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today") + "\n\n")
	sb.WriteString(fmt.Sprintf("Goals      %d / %d done\n", s.GoalsDone, s.GoalsTotal))
	if s.LoggedToday {
		sb.WriteString(fmt.Sprintf("Studied    %dh %dm\n", s.StudyMinutesToday/60, s.StudyMinutesToday%60))
	} else {
		sb.WriteString("Studied    " + theme.Warn.Render("no log yet") + "\n")
	}
	sb.WriteString(fmt.Sprintf("Mocks      %d taken\n", s.MockCount))
	if s.LatestScore != nil {
		sb.WriteString(fmt.Sprintf("Latest     %d\n", *s.LatestScore))
		sb.WriteString(fmt.Sprintf("Best/avg   %d / %d\n", s.BestScore, s.AverageScore))
	}
	sb.WriteString("\n" + theme.Muted.Render("R: refresh"))
	return sb.String()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) loadCountdownCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Countdown(context.Background())
		return CountdownLoadedMsg{Countdown: out, Err: err}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
