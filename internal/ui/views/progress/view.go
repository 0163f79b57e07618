package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	bar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "studyhub/internal/modules/progress/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, category, unit string) ([]progressdto.ItemOutput, error)
	Toggle(ctx context.Context, id string) (progressdto.ToggleOutput, error)
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Reset(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type ItemsLoadedMsg struct {
	Category string
	Items    []progressdto.ItemOutput
	Err      error
}

type SummaryLoadedMsg struct {
	Summary progressdto.SummaryOutput
	Err     error
}

type ToggledMsg struct {
	Out progressdto.ToggleOutput
	Err error
}

type ResetMsg struct{ Err error }

var filters = []struct{ key, label string }{
	{"", "All topics"},
	{"quants", "Quants"},
	{"verbal", "Verbal"},
}

// ─── list item ───────────────────────────────────────────────────────────────

type topicItem struct {
	item progressdto.ItemOutput
}

func (i topicItem) Title() string       { return theme.Check(i.item.Completed) + " " + i.item.Label }
func (i topicItem) Description() string { return i.item.Category + " · " + i.item.Unit }
func (i topicItem) FilterValue() string { return i.item.Label }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port         Port
	list         list.Model
	summary      progressdto.SummaryOutput
	bar          bar.Model
	filter       int
	confirmReset bool
	width        int
	height       int
}

func New(port Port) Model {
	return Model{
		port: port,
		list: components.NewList(filters[0].label, true),
		bar:  theme.Bar(24, theme.Green),
	}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads the topic list and the unit summary.
func (m Model) Refresh() tea.Cmd {
	return tea.Batch(m.loadItemsCmd(filters[m.filter].key), m.loadSummaryCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width/2, m.height)
		m.bar.Width = max(10, m.width/2-30)

	case ItemsLoadedMsg:
		if msg.Category != filters[m.filter].key {
			return m, nil
		}
		if msg.Err != nil {
			m.list.Title = "Progress: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Items))
		done := 0
		for i, it := range msg.Items {
			items[i] = topicItem{item: it}
			if it.Completed {
				done++
			}
		}
		m.list.Title = fmt.Sprintf("%s (%d/%d)", filters[m.filter].label, done, len(items))
		cmds = append(cmds, m.list.SetItems(items))

	case SummaryLoadedMsg:
		if msg.Err == nil {
			m.summary = msg.Summary
		}

	case ToggledMsg:
		if msg.Err != nil {
			return m, status("toggle topic: " + msg.Err.Error())
		}
		if msg.Out.Found {
			return m, m.Refresh()
		}

	case ResetMsg:
		if msg.Err != nil {
			return m, status("reset progress: " + msg.Err.Error())
		}
		return m, tea.Batch(status("progress reset"), m.Refresh())

	case tea.KeyMsg:
		if m.Capturing() {
			break
		}
		if msg.String() != "R" {
			m.confirmReset = false
		}
		switch msg.String() {
		case " ", "enter":
			if item, ok := m.list.SelectedItem().(topicItem); ok {
				return m, m.toggleCmd(item.item.ID)
			}
		case "c":
			m.filter = (m.filter + 1) % len(filters)
			m.list.ResetFilter()
			return m, m.loadItemsCmd(filters[m.filter].key)
		case "R":
			if !m.confirmReset {
				m.confirmReset = true
				return m, status("press R again to reset every topic")
			}
			m.confirmReset = false
			return m, m.resetCmd()
		}
	}

	if components.ForList(m.list, msg) {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listPane := lipgloss.NewStyle().Width(m.width / 2).Height(m.height).Render(m.list.View())
	summaryPane := theme.Pane.Width(m.width - m.width/2 - 4).Height(m.height - 2).Render(m.renderSummary())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, summaryPane)
}

// Capturing reports whether typed keys belong to this view.
func (m Model) Capturing() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderSummary() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Syllabus progress") + "\n\n")
	sb.WriteString(m.row("Overall", s.Overall) + "\n")
	sb.WriteString(m.row("Quants", s.Quants) + "\n")
	sb.WriteString(m.row("Verbal", s.Verbal) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d topics done", s.Done, s.Total)) + "\n\n")

	sb.WriteString(theme.Title.Render("By unit") + "\n")
	for _, u := range s.Units {
		sb.WriteString(fmt.Sprintf("%-22s %s %2d/%-2d\n", truncate(u.Unit, 22), m.bar.ViewAs(float64(u.Percent)/100), u.Done, u.Total))
	}
	sb.WriteString("\n" + theme.Muted.Render("space: toggle  c: category  /: filter  R: reset"))
	return sb.String()
}

func (m Model) row(label string, pct int) string {
	return fmt.Sprintf("%-8s %s %3d%%", label, m.bar.ViewAs(float64(pct)/100), pct)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m Model) loadItemsCmd(category string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.List(context.Background(), category, "")
		return ItemsLoadedMsg{Category: category, Items: items, Err: err}
	}
}

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: out, Err: err}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Toggle(context.Background(), id)
		return ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return ResetMsg{Err: m.port.Reset(context.Background())}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
