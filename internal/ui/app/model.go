package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studyhub/internal/modules/session/dto"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
	dashboardview "studyhub/internal/ui/views/dashboard"
	journalview "studyhub/internal/ui/views/journal"
	progressview "studyhub/internal/ui/views/progress"
	scoresview "studyhub/internal/ui/views/scores"
	vaultview "studyhub/internal/ui/views/vault"
	vocabview "studyhub/internal/ui/views/vocab"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The app needs the session port itself; every other port is handed through
// to the view that owns it.

type sessionPort interface {
	Enter(ctx context.Context, name string) (sessiondto.EnterOutput, error)
	Current(ctx context.Context) (sessiondto.UserOutput, error)
}

type Deps struct {
	Session   sessionPort
	Dashboard dashboardview.Port
	Progress  progressview.Port
	Scores    scoresview.Port
	Goals     journalview.GoalsPort
	Journal   journalview.LogPort
	Vocab     vocabview.Port
	Vault     vaultview.Port
	Pomodoro  dashboardview.Timer
	// Tick is the period of the countdown and focus timer refresh.
	Tick time.Duration
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabVault
	tabVocab
	tabProgress
	tabScores
	tabLog
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Vault", "Vocab", "Progress", "Scores", "Log",
}

const enterForm = "enter"

// ─── async messages ───────────────────────────────────────────────────────────

type userLoadedMsg struct {
	user sessiondto.UserOutput
	err  error
}

type enteredMsg struct {
	out sessiondto.EnterOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	PrevTab  key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Delete   key.Binding
	Search   key.Binding
	Timer    key.Binding
	Cards    key.Binding
	Sort     key.Binding
	Days     key.Binding
	EditLog  key.Binding
	Category key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle topic/goal, start timer")),
		Add:      key.NewBinding(key.WithKeys("a", "g"), key.WithHelp("a/g", "add word, score or goal")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Search:   key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/ s", "filter, search")),
		Timer:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset pomodoro")),
		Cards:    key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c/C", "flashcards")),
		Sort:     key.NewBinding(key.WithKeys("d", "t"), key.WithHelp("d/t", "sort scores")),
		Days:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day, category")),
		EditLog:  key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e/E", "edit log, export notes")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "progress category")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.PrevTab, k.Jump},
		{k.Toggle, k.Add, k.Delete, k.Search},
		{k.Timer, k.Cards, k.Sort, k.Category},
		{k.Days, k.EditLog, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the session
// prompt and the help overlay. Keys go to the active tab; every other
// message is broadcast so background loads and the clock tick reach all
// views.
type Model struct {
	session sessionPort

	dashView dashboardview.Model
	vaultV   vaultview.Model
	vocabV   vocabview.Model
	progV    progressview.Model
	scoresV  scoresview.Model
	logV     journalview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	form      components.Form
	user      string
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(deps Deps) Model {
	tick := deps.Tick
	if tick <= 0 {
		tick = time.Second
	}
	return Model{
		session:   deps.Session,
		dashView:  dashboardview.New(deps.Dashboard, deps.Pomodoro, tick),
		vaultV:    vaultview.New(deps.Vault),
		vocabV:    vocabview.New(deps.Vocab),
		progV:     progressview.New(deps.Progress),
		scoresV:   scoresview.New(deps.Scores),
		logV:      journalview.New(deps.Goals, deps.Journal),
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		form:      components.NewForm(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadUserCmd(),
		m.dashView.Init(),
		m.vaultV.Init(),
		m.vocabV.Init(),
		m.progV.Init(),
		m.scoresV.Init(),
		m.logV.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The session prompt intercepts all input while open.
	if m.form.Visible() {
		if k, ok := msg.(tea.KeyMsg); ok {
			if k.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		cmd := m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.height - 3})
		return m, cmd

	case userLoadedMsg:
		if errors.Is(msg.err, apperrors.ErrNoActiveUser) {
			cmd := m.openEnter()
			return m, cmd
		}
		if msg.err != nil {
			m.status = "session: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user.Name
		return m, nil

	case enteredMsg:
		if msg.err != nil {
			m.status = "enter: " + msg.err.Error()
			cmd := m.openEnter()
			return m, cmd
		}
		if !msg.out.Entered {
			cmd := m.openEnter()
			return m, cmd
		}
		m.user = msg.out.User.Name
		m.status = "welcome, " + m.user
		return m, m.dashView.Refresh()

	case components.StatusMsg:
		m.status = string(msg)
		return m, nil

	case components.FormSubmitMsg:
		if msg.Tag == enterForm {
			return m, m.enterCmd(msg.Values[0])
		}

	case components.FormCancelMsg:
		if msg.Tag == enterForm {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the active view while it is taking text.
		if m.activeCapturing() {
			cmd := m.updateActive(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			cmd := m.switchTab((m.activeTab + 1) % tabCount)
			return m, cmd
		case "shift+tab":
			cmd := m.switchTab((m.activeTab + tabCount - 1) % tabCount)
			return m, cmd
		case "1", "2", "3", "4", "5", "6":
			cmd := m.switchTab(tabID(msg.String()[0] - '1'))
			return m, cmd
		case "?":
			m.showHelp = true
			return m, nil
		}
		cmd := m.updateActive(msg)
		return m, cmd
	}

	cmd := m.broadcast(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.form.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.form.View())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabVault:
		return m.vaultV.View()
	case tabVocab:
		return m.vocabV.View()
	case tabProgress:
		return m.progV.View()
	case tabScores:
		return m.scoresV.View()
	case tabLog:
		return m.logV.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studyhub  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.user != "" {
		left = theme.Hot.Render("● "+m.user) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// activeCapturing reports whether the active tab has a form, search box or
// list filter open, in which case global key bindings must yield.
func (m Model) activeCapturing() bool {
	switch m.activeTab {
	case tabVault:
		return m.vaultV.Capturing()
	case tabVocab:
		return m.vocabV.Capturing()
	case tabProgress:
		return m.progV.Capturing()
	case tabScores:
		return m.scoresV.Capturing()
	case tabLog:
		return m.logV.Capturing()
	}
	return false
}

// switchTab activates a tab and reloads it, since other tabs may have
// written to the store in the meantime.
func (m *Model) switchTab(t tabID) tea.Cmd {
	if t < 0 || t >= tabCount {
		return nil
	}
	m.activeTab = t
	switch t {
	case tabDashboard:
		return m.dashView.Refresh()
	case tabVault:
		return m.vaultV.Refresh()
	case tabVocab:
		return m.vocabV.Refresh()
	case tabProgress:
		return m.progV.Refresh()
	case tabScores:
		return m.scoresV.Refresh()
	case tabLog:
		return m.logV.Refresh()
	}
	return nil
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	case tabVault:
		m.vaultV, cmd = m.vaultV.Update(msg)
	case tabVocab:
		m.vocabV, cmd = m.vocabV.Update(msg)
	case tabProgress:
		m.progV, cmd = m.progV.Update(msg)
	case tabScores:
		m.scoresV, cmd = m.scoresV.Update(msg)
	case tabLog:
		m.logV, cmd = m.logV.Update(msg)
	}
	return cmd
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 6)
	m.dashView, cmds[0] = m.dashView.Update(msg)
	m.vaultV, cmds[1] = m.vaultV.Update(msg)
	m.vocabV, cmds[2] = m.vocabV.Update(msg)
	m.progV, cmds[3] = m.progV.Update(msg)
	m.scoresV, cmds[4] = m.scoresV.Update(msg)
	m.logV, cmds[5] = m.logV.Update(msg)
	return tea.Batch(cmds...)
}

func (m *Model) openEnter() tea.Cmd {
	return m.form.Open(enterForm, "Welcome! What should we call you?", []components.Field{
		{Label: "name", Placeholder: "your name"},
	})
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadUserCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Current(context.Background())
		return userLoadedMsg{user: user, err: err}
	}
}

func (m Model) enterCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Enter(context.Background(), name)
		return enteredMsg{out: out, err: err}
	}
}
