package vocab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	vocabdto "studyhub/internal/modules/vocab/dto"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, category, query string) (vocabdto.ListOutput, error)
	Add(ctx context.Context, input vocabdto.AddInput) (vocabdto.AddOutput, error)
	Remove(ctx context.Context, id string) (bool, error)
	Lookup(ctx context.Context, term string) (vocabdto.DefinitionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ListLoadedMsg struct {
	Category string
	Query    string
	List     vocabdto.ListOutput
	Err      error
}

type AddedMsg struct {
	Out vocabdto.AddOutput
	Err error
}

type RemovedMsg struct {
	Removed bool
	Err     error
}

// LookupDueMsg fires once the add form has been quiet for the lookup delay.
type LookupDueMsg struct {
	Seq  uint64
	Term string
}

type LookupDoneMsg struct {
	Seq uint64
	Def vocabdto.DefinitionOutput
	Err error
}

const (
	addForm     = "vocab-add"
	termField   = 0
	meanField   = 1
	exampleFld  = 2
	originField = 3
)

// tabs in display order; "" is every category.
var tabs = []struct {
	key, label string
}{
	{"", "All"},
	{vocabdto.CategoryIdioms, "Idioms"},
	{vocabdto.CategoryPhrasal, "Phrasal verbs"},
	{vocabdto.CategoryDaily, "Daily words"},
}

// ─── list item ───────────────────────────────────────────────────────────────

type rowItem struct {
	row vocabdto.RowOutput
}

func (i rowItem) Title() string {
	if i.row.UserAdded {
		return i.row.Term + " •"
	}
	return i.row.Term
}
func (i rowItem) Description() string { return i.row.Meaning }
func (i rowItem) FilterValue() string { return i.row.Term }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	list      list.Model
	search    textinput.Model
	form      components.Form
	gate      LookupGate
	quiet     time.Duration
	tab       int
	userCount int
	err       error
	width     int
	height    int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search words or meanings"
	ti.CharLimit = 64

	return Model{
		port:   port,
		list:   components.NewList("Vocab Hub", false),
		search: ti,
		form:   components.NewForm(),
		quiet:  LookupQuiet,
	}
}

// WithQuiet overrides the lookup delay.
func (m Model) WithQuiet(d time.Duration) Model {
	m.quiet = d
	return m
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads the rows for the current tab and query.
func (m Model) Refresh() tea.Cmd {
	return m.loadCmd(tabs[m.tab].key, m.search.Value())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

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
		m.list.SetSize(m.width*5/10, m.height-3)
		m.search.Width = m.width/2 - 4

	case ListLoadedMsg:
		if msg.Category != tabs[m.tab].key || msg.Query != m.search.Value() {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.userCount = msg.List.UserCount
		items := make([]list.Item, len(msg.List.Rows))
		for i, r := range msg.List.Rows {
			items[i] = rowItem{row: r}
		}
		m.list.Title = fmt.Sprintf("%s (%d)", tabs[m.tab].label, len(items))
		cmds = append(cmds, m.list.SetItems(items))

	case AddedMsg:
		switch {
		case msg.Err != nil:
			cmds = append(cmds, status("add word: "+msg.Err.Error()))
		case !msg.Out.Added:
			cmds = append(cmds, status("a word needs a term and a meaning"))
		default:
			cmds = append(cmds, status("added "+msg.Out.Row.Term), m.Refresh())
		}

	case RemovedMsg:
		if msg.Err != nil {
			cmds = append(cmds, status("remove word: "+msg.Err.Error()))
		} else if msg.Removed {
			cmds = append(cmds, status("word removed"), m.Refresh())
		}

	case components.FormEditedMsg:
		if msg.Tag == addForm {
			cmd := m.armLookup(msg.Values)
			return m, cmd
		}

	case components.FormSubmitMsg:
		if msg.Tag == addForm {
			m.gate.Cancel()
			return m, m.addCmd(msg.Values)
		}

	case components.FormCancelMsg:
		if msg.Tag == addForm {
			m.gate.Cancel()
		}

	case LookupDueMsg:
		if !m.gate.Current(msg.Seq) || !m.form.Visible() {
			return m, nil
		}
		m.form.SetHint("Looking up " + msg.Term + "…")
		return m, m.lookupCmd(msg.Seq, msg.Term)

	case LookupDoneMsg:
		if !m.gate.Current(msg.Seq) || !m.form.Visible() {
			return m, nil
		}
		m.applyLookup(msg)
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "/":
			cmd := m.search.Focus()
			return m, cmd
		case "left", "h":
			m.tab = (m.tab + len(tabs) - 1) % len(tabs)
			return m, m.Refresh()
		case "right", "l":
			m.tab = (m.tab + 1) % len(tabs)
			return m, m.Refresh()
		case "a":
			cmd := m.openAdd()
			return m, cmd
		case "x":
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				if !item.row.UserAdded {
					return m, status("built-in words cannot be removed")
				}
				return m, m.removeCmd(item.row.ID)
			}
		case "esc":
			if m.search.Value() != "" {
				m.search.SetValue("")
				return m, m.Refresh()
			}
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
	if m.form.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	listW := m.width * 5 / 10
	detailW := m.width - listW

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.search.View(),
		m.list.View(),
	)
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(left)

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Padding(1).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.renderDetail())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Capturing reports whether typed keys belong to this view.
func (m Model) Capturing() bool {
	return m.form.Visible() || m.search.Focused()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		return m, m.Refresh()
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.Refresh())
	}
	return m, cmd
}

func (m *Model) openAdd() tea.Cmd {
	m.gate.Cancel()
	return m.form.Open(addForm, "Add a word to "+tabs[m.addTab()].label, []components.Field{
		{Label: "term", Placeholder: "e.g. break the ice"},
		{Label: "meaning", Placeholder: "filled in from the dictionary when left empty"},
		{Label: "example", Placeholder: "optional"},
		{Label: "origin", Placeholder: "optional"},
	})
}

// addTab is the category a new word lands in. The "All" tab adds idioms.
func (m Model) addTab() int {
	if m.tab == 0 {
		return 1
	}
	return m.tab
}

func (m *Model) armLookup(values []string) tea.Cmd {
	if len(values) <= meanField {
		return nil
	}
	seq, wanted := m.gate.Arm(values[termField], values[meanField])
	m.form.SetHint("")
	if !wanted {
		return nil
	}
	term := values[termField]
	return tea.Tick(m.quiet, func(time.Time) tea.Msg {
		return LookupDueMsg{Seq: seq, Term: term}
	})
}

func (m *Model) applyLookup(msg LookupDoneMsg) {
	switch {
	case errors.Is(msg.Err, apperrors.ErrLookupNotFound):
		m.form.SetHint("No definition found. Please enter the meaning.")
		return
	case msg.Err != nil:
		m.form.SetHint("Dictionary unavailable. Please enter the meaning.")
		return
	}
	if strings.TrimSpace(m.form.Value(meanField)) == "" {
		m.form.SetValue(meanField, msg.Def.Definition)
	}
	if strings.TrimSpace(m.form.Value(exampleFld)) == "" && msg.Def.Example != "" {
		m.form.SetValue(exampleFld, msg.Def.Example)
	}
	m.form.SetHint("Definition found for " + msg.Def.Term)
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.tab {
			parts[i] = theme.Hot.Render(t.label)
		} else {
			parts[i] = theme.Muted.Render(t.label)
		}
	}
	return strings.Join(parts, theme.Muted.Render(" │ "))
}

func (m Model) renderDetail() string {
	if m.err != nil {
		return theme.Bad.Render(m.err.Error())
	}
	item, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return theme.Muted.Render("No words found.")
	}
	r := item.row
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(r.Term) + "  " + theme.Muted.Render(r.Category) + "\n\n")
	sb.WriteString(r.Meaning + "\n")
	if r.Example != "" {
		sb.WriteString("\n" + theme.Muted.Render("Example") + "\n" + r.Example + "\n")
	}
	if r.Origin != "" {
		sb.WriteString("\n" + theme.Muted.Render("Origin") + "\n" + r.Origin + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("%d words added by you", m.userCount)) + "\n")
	sb.WriteString(theme.Muted.Render("←/→: category  /: search  a: add  x: remove yours"))
	return sb.String()
}

func (m Model) loadCmd(category, query string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.List(context.Background(), category, query)
		return ListLoadedMsg{Category: category, Query: query, List: out, Err: err}
	}
}

func (m Model) addCmd(values []string) tea.Cmd {
	category := tabs[m.addTab()].key
	return func() tea.Msg {
		out, err := m.port.Add(context.Background(), vocabdto.AddInput{
			Term:     values[termField],
			Meaning:  values[meanField],
			Example:  values[exampleFld],
			Origin:   values[originField],
			Category: category,
		})
		return AddedMsg{Out: out, Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		removed, err := m.port.Remove(context.Background(), id)
		return RemovedMsg{Removed: removed, Err: err}
	}
}

func (m Model) lookupCmd(seq uint64, term string) tea.Cmd {
	return func() tea.Msg {
		def, err := m.port.Lookup(context.Background(), term)
		return LookupDoneMsg{Seq: seq, Def: def, Err: err}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
