package journal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "studyhub/internal/modules/goals/dto"
	journaldto "studyhub/internal/modules/journal/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type GoalsPort interface {
	Today(ctx context.Context) (goalsdto.TodayOutput, error)
	Add(ctx context.Context, text string) (goalsdto.AddOutput, error)
	Toggle(ctx context.Context, id string) (goalsdto.ToggleOutput, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type LogPort interface {
	Day(ctx context.Context, date string) (journaldto.DayOutput, error)
	Save(ctx context.Context, date, content, hours, minutes string) (journaldto.LogOutput, error)
	Week(ctx context.Context) (journaldto.WeekOutput, error)
	Export(ctx context.Context) (journaldto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GoalsLoadedMsg struct {
	Today goalsdto.TodayOutput
	Err   error
}

type DayLoadedMsg struct {
	Day  journaldto.DayOutput
	Week journaldto.WeekOutput
	Err  error
}

// ChangedMsg reports a write through either port; the view reloads itself.
type ChangedMsg struct {
	Status string
	Err    error
}

const (
	goalForm = "journal-goal"
	logForm  = "journal-log"
)

// ─── list item ───────────────────────────────────────────────────────────────

type goalItem struct {
	goal goalsdto.GoalOutput
}

func (i goalItem) Title() string       { return theme.Check(i.goal.Completed) + " " + i.goal.Text }
func (i goalItem) Description() string { return "" }
func (i goalItem) FilterValue() string { return i.goal.Text }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	goals  GoalsPort
	logs   LogPort
	list   list.Model
	day    journaldto.DayOutput
	week   journaldto.WeekOutput
	page   viewport.Model
	bar    bar.Model
	form   components.Form
	date   string
	err    error
	width  int
	height int
}

func New(goals GoalsPort, logs LogPort) Model {
	l := components.NewList("Today's goals", false)
	l.SetShowStatusBar(false)

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	l.SetDelegate(d)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	return Model{
		goals: goals,
		logs:  logs,
		list:  l,
		page:  vp,
		bar:   theme.Bar(20, theme.Sapphire),
		form:  components.NewForm(),
	}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads today's goals and the viewed day.
func (m Model) Refresh() tea.Cmd {
	return tea.Batch(m.loadGoalsCmd(), m.loadDayCmd(m.date))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(min(m.width-4, 80))
		m.list.SetSize(m.width*4/10, m.height)
		m.page.Width = m.width - m.width*4/10 - 4
		m.page.Height = m.height - 2

	case GoalsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Goals: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Today.Goals))
		for i, g := range msg.Today.Goals {
			items[i] = goalItem{goal: g}
		}
		m.list.Title = fmt.Sprintf("Today's goals %d/%d", msg.Today.Done, msg.Today.Total)
		cmds = append(cmds, m.list.SetItems(items))

	case DayLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.day = msg.Day
			m.week = msg.Week
			m.date = msg.Day.Log.Date
		}
		m.page.SetContent(m.renderPage())

	case ChangedMsg:
		if msg.Err != nil {
			return m, status(msg.Err.Error())
		}
		return m, tea.Batch(status(msg.Status), m.Refresh())

	case components.FormSubmitMsg:
		switch msg.Tag {
		case goalForm:
			return m, m.addGoalCmd(msg.Values[0])
		case logForm:
			return m, m.saveCmd(m.date, msg.Values)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			if item, ok := m.list.SelectedItem().(goalItem); ok {
				return m, m.toggleGoalCmd(item.goal.ID)
			}
		case "g":
			cmd := m.form.Open(goalForm, "New goal for today", []components.Field{
				{Label: "goal", Placeholder: "e.g. 30 TSD questions"},
			})
			return m, cmd
		case "x":
			if item, ok := m.list.SelectedItem().(goalItem); ok {
				return m, m.deleteGoalCmd(item.goal.ID)
			}
		case "left", "h":
			return m, m.loadDayCmd(m.day.Previous)
		case "right", "l":
			if m.day.HasNext {
				return m, m.loadDayCmd(m.day.Next)
			}
		case "t":
			return m, m.loadDayCmd("")
		case "e":
			cmd := m.openLogForm()
			return m, cmd
		case "E":
			return m, m.exportCmd()
		}
	}

	var lCmd, vCmd tea.Cmd
	if components.ForList(m.list, msg) {
		m.list, lCmd = m.list.Update(msg)
	}
	if k, ok := msg.(tea.KeyMsg); !ok || k.String() == "pgup" || k.String() == "pgdown" {
		m.page, vCmd = m.page.Update(msg)
	}
	cmds = append(cmds, lCmd, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.form.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	pagePane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - listW - 2).
		Height(m.height - 2).
		Render(m.page.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, pagePane)
}

// Capturing reports whether typed keys belong to this view.
func (m Model) Capturing() bool { return m.form.Visible() }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) openLogForm() tea.Cmd {
	l := m.day.Log
	hours, minutes := "", ""
	if m.day.Found {
		hours = strconv.Itoa(l.StudyHours)
		minutes = strconv.Itoa(l.StudyMinutes)
	}
	return m.form.Open(logForm, "Study log for "+l.Date, []components.Field{
		{Label: "hours", Placeholder: "0", Value: hours},
		{Label: "minutes", Placeholder: "0", Value: minutes},
		{Label: "notes", Placeholder: "What did you study today?", Value: l.Content, Multiline: true},
	})
}

func (m Model) renderPage() string {
	if m.err != nil {
		return theme.Bad.Render(m.err.Error())
	}
	d := m.day
	var sb strings.Builder
	title := d.Log.Date
	if d.IsToday {
		title += "  (today)"
	}
	sb.WriteString(theme.Title.Render("Study log "+title) + "\n\n")
	if d.Found {
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("Studied %dh %dm", d.Log.StudyHours, d.Log.StudyMinutes)) + "\n\n")
		sb.WriteString(d.Log.Content + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("Nothing logged for this day.") + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Last 7 days") + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%dh %dm over %d days", m.week.TotalMinutes/60, m.week.TotalMinutes%60, m.week.DaysLogged)) + "\n")
	most := 0
	for _, day := range m.week.Days {
		most = max(most, day.Minutes)
	}
	for _, day := range m.week.Days {
		pct := 0.0
		if most > 0 {
			pct = float64(day.Minutes) / float64(most)
		}
		sb.WriteString(fmt.Sprintf("%s %s %3dm\n", day.Date[5:], m.bar.ViewAs(pct), day.Minutes))
	}

	nav := "←: previous day"
	if d.HasNext {
		nav += "  →: next day"
	}
	sb.WriteString("\n" + theme.Muted.Render(nav+"  t: today  e: edit log  E: export notes") + "\n")
	sb.WriteString(theme.Muted.Render("space: toggle goal  g: add goal  x: delete goal"))
	return sb.String()
}

func (m Model) loadGoalsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Today(context.Background())
		return GoalsLoadedMsg{Today: out, Err: err}
	}
}

func (m Model) loadDayCmd(date string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		day, err := m.logs.Day(ctx, date)
		if err != nil {
			return DayLoadedMsg{Err: err}
		}
		week, err := m.logs.Week(ctx)
		return DayLoadedMsg{Day: day, Week: week, Err: err}
	}
}

func (m Model) addGoalCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Add(context.Background(), text)
		if err == nil && !out.Added {
			return ChangedMsg{Status: "a goal needs some text"}
		}
		return ChangedMsg{Status: "goal added", Err: err}
	}
}

func (m Model) toggleGoalCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Toggle(context.Background(), id)
		if err == nil && out.Goal.Completed {
			return ChangedMsg{Status: "goal done: " + out.Goal.Text}
		}
		return ChangedMsg{Status: "goal reopened", Err: err}
	}
}

func (m Model) deleteGoalCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.goals.Delete(context.Background(), id)
		return ChangedMsg{Status: "goal deleted", Err: err}
	}
}

func (m Model) saveCmd(date string, v []string) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.logs.Save(context.Background(), date, v[2], v[0], v[1])
		return ChangedMsg{Status: fmt.Sprintf("log saved for %s (%dh %dm)", saved.Date, saved.StudyHours, saved.StudyMinutes), Err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.logs.Export(context.Background())
		return ChangedMsg{Status: fmt.Sprintf("exported %d notes, %d unchanged", len(out.Written), out.Unchanged), Err: err}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
