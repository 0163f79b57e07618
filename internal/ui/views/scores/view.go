package scores

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scoresdto "studyhub/internal/modules/scores/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Add(ctx context.Context, input scoresdto.AddInput) (scoresdto.AddOutput, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, field, direction string) ([]scoresdto.ScoreOutput, error)
	Stats(ctx context.Context) (scoresdto.StatsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ScoresLoadedMsg struct {
	Order  scoresdto.ListInput
	Scores []scoresdto.ScoreOutput
	Stats  scoresdto.StatsOutput
	Err    error
}

type AddedMsg struct {
	Out scoresdto.AddOutput
	Err error
}

type DeletedMsg struct {
	Deleted bool
	Err     error
}

const addForm = "scores-add"

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   Port
	table  table.Model
	scores []scoresdto.ScoreOutput
	stats  scoresdto.StatsOutput
	order  scoresdto.ListInput
	form   components.Form
	err    error
	width  int
	height int
}

func New(port Port) Model {
	t := table.New(
		table.WithColumns(columns(scoresdto.ListInput{}, 80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)

	return Model{
		port:  port,
		table: t,
		form:  components.NewForm(),
		order: scoresdto.ListInput{SortField: scoresdto.SortByDate, Direction: scoresdto.Desc},
	}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads the table in the current order together with the stats.
func (m Model) Refresh() tea.Cmd {
	return m.loadCmd(m.order)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(min(m.width-4, 80))
		m.table.SetColumns(columns(m.order, m.width))
		m.table.SetWidth(m.width)
		m.table.SetHeight(max(3, m.height-8))

	case ScoresLoadedMsg:
		if msg.Order != m.order {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.scores = msg.Scores
		m.stats = msg.Stats
		m.table.SetColumns(columns(m.order, m.width))
		m.table.SetRows(rows(msg.Scores))
		if m.table.Cursor() >= len(msg.Scores) {
			m.table.SetCursor(max(0, len(msg.Scores)-1))
		}

	case AddedMsg:
		switch {
		case msg.Err != nil:
			return m, status("add score: " + msg.Err.Error())
		case !msg.Out.Added:
			return m, status("a mock needs a name and a date")
		}
		return m, tea.Batch(status(fmt.Sprintf("added %s: %d", msg.Out.Score.MockName, msg.Out.Score.TotalScore)), m.Refresh())

	case DeletedMsg:
		if msg.Err != nil {
			return m, status("delete score: " + msg.Err.Error())
		}
		if msg.Deleted {
			return m, tea.Batch(status("score deleted"), m.Refresh())
		}

	case components.FormSubmitMsg:
		if msg.Tag == addForm {
			return m, m.addCmd(msg.Values)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			cmd := m.form.Open(addForm, "Add mock score", []components.Field{
				{Label: "mock", Placeholder: "e.g. Mock 12"},
				{Label: "exam", Placeholder: "INDORE, ROHTAK or JIPMAT", Value: scoresdto.ExamIndore},
				{Label: "date", Placeholder: "YYYY-MM-DD"},
				{Label: "sa", Placeholder: "INDORE short answer"},
				{Label: "mcq", Placeholder: "INDORE multiple choice"},
				{Label: "qa", Placeholder: "ROHTAK/JIPMAT quant"},
				{Label: "lr", Placeholder: "ROHTAK/JIPMAT reasoning"},
				{Label: "va", Placeholder: "verbal"},
			})
			return m, cmd
		case "x":
			if c := m.table.Cursor(); c >= 0 && c < len(m.scores) {
				return m, m.deleteCmd(m.scores[c].ID)
			}
		case "d":
			m.order = m.order.Select(scoresdto.SortByDate)
			return m, m.Refresh()
		case "t":
			m.order = m.order.Select(scoresdto.SortByTotal)
			return m, m.Refresh()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.form.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}
	if m.err != nil {
		return theme.Bad.Render("scores: " + m.err.Error())
	}
	var body string
	if len(m.scores) == 0 {
		body = theme.Muted.Render("No mock scores yet. Press a to add one.")
	} else {
		body = m.table.View()
	}
	help := theme.Muted.Render("a: add  x: delete  d: sort by date  t: sort by total")
	return lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), body, "", help)
}

// Capturing reports whether typed keys belong to this view.
func (m Model) Capturing() bool { return m.form.Visible() }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderStats() string {
	s := m.stats
	head := fmt.Sprintf("%s  %d mocks  best %s  average %s",
		theme.Title.Render("Mock Scores"), s.Count,
		theme.Good.Render(fmt.Sprint(s.Best)), theme.Hot.Render(fmt.Sprint(s.Average)))
	parts := make([]string, 0, len(s.ByExam))
	for _, e := range s.ByExam {
		parts = append(parts, fmt.Sprintf("%s %d (best %d, avg %d)", e.ExamType, e.Count, e.Best, e.Average))
	}
	return head + "\n" + theme.Muted.Render(strings.Join(parts, "  ")) + "\n"
}

func columns(order scoresdto.ListInput, width int) []table.Column {
	arrow := func(f string) string {
		if order.SortField != f {
			return ""
		}
		if order.Direction == scoresdto.Asc {
			return " ↑"
		}
		return " ↓"
	}
	mockW := max(12, width-12-10-28-10-8)
	return []table.Column{
		{Title: "Date" + arrow(scoresdto.SortByDate), Width: 12},
		{Title: "Mock", Width: mockW},
		{Title: "Exam", Width: 10},
		{Title: "Sections", Width: 28},
		{Title: "Total" + arrow(scoresdto.SortByTotal), Width: 8},
	}
}

func rows(scores []scoresdto.ScoreOutput) []table.Row {
	out := make([]table.Row, len(scores))
	for i, s := range scores {
		out[i] = table.Row{s.Date, s.MockName, s.ExamType, sections(s.Sections), fmt.Sprint(s.TotalScore)}
	}
	return out
}

func sections(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %d", strings.ToUpper(k), m[k])
	}
	return strings.Join(parts, " · ")
}

func (m Model) loadCmd(order scoresdto.ListInput) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		list, err := m.port.List(ctx, order.SortField, order.Direction)
		if err != nil {
			return ScoresLoadedMsg{Order: order, Err: err}
		}
		stats, err := m.port.Stats(ctx)
		return ScoresLoadedMsg{Order: order, Scores: list, Stats: stats, Err: err}
	}
}

func (m Model) addCmd(v []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Add(context.Background(), scoresdto.AddInput{
			MockName: v[0],
			ExamType: strings.ToUpper(strings.TrimSpace(v[1])),
			Date:     v[2],
			SA:       v[3],
			MCQ:      v[4],
			QA:       v[5],
			LR:       v[6],
			VA:       v[7],
		})
		return AddedMsg{Out: out, Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		deleted, err := m.port.Delete(context.Background(), id)
		return DeletedMsg{Deleted: deleted, Err: err}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
