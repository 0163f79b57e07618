package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	vaultdto "studyhub/internal/modules/vault/dto"
	"studyhub/internal/ui/components"
	"studyhub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Search(ctx context.Context, query string) (vaultdto.SearchOutput, error)
	Topics(ctx context.Context) ([]vaultdto.TopicOutput, error)
	Show(ctx context.Context, id string) (vaultdto.TopicDetailOutput, error)
	Cards(ctx context.Context, topicID string) ([]vaultdto.CardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TopicsLoadedMsg struct {
	Topics []vaultdto.TopicOutput
	Err    error
}

type TopicLoadedMsg struct {
	Detail vaultdto.TopicDetailOutput
	Err    error
}

type SearchLoadedMsg struct {
	Query  string
	Result vaultdto.SearchOutput
	Err    error
}

type CardsLoadedMsg struct {
	Title string
	Cards []vaultdto.CardOutput
	Err   error
}

const searchForm = "vault-search"

// ─── list item ───────────────────────────────────────────────────────────────

type topicItem struct {
	topic vaultdto.TopicOutput
}

func (i topicItem) Title() string { return i.topic.Name }
func (i topicItem) Description() string {
	return fmt.Sprintf("%s  %d formulas", i.topic.CategoryTitle, i.topic.Count)
}
func (i topicItem) FilterValue() string { return i.topic.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	list      list.Model
	preview   viewport.Model
	spinner   spinner.Model
	form      components.Form
	deck      *Deck
	deckTitle string
	searching string
	loading   bool
	width     int
	height    int
}

func New(port Port) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    components.NewList("Formula Vault", true),
		preview: vp,
		spinner: sp,
		form:    components.NewForm(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTopicsCmd(), m.spinner.Tick)
}

// Refresh is a no-op: the catalog never changes at runtime.
func (m Model) Refresh() tea.Cmd { return nil }

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
		m.resize()

	case TopicsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Formula Vault: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Topics))
		total := 0
		for i, t := range msg.Topics {
			items[i] = topicItem{topic: t}
			total += t.Count
		}
		m.list.Title = fmt.Sprintf("Formula Vault (%d formulas)", total)
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Topics) > 0 {
			cmds = append(cmds, m.loadTopicCmd(msg.Topics[0].ID))
		}

	case TopicLoadedMsg:
		if msg.Err == nil && m.searching == "" {
			m.preview.SetContent(renderTopic(msg.Detail))
			m.preview.GotoTop()
		}

	case SearchLoadedMsg:
		if msg.Err != nil {
			return m, status("search: " + msg.Err.Error())
		}
		m.searching = msg.Query
		m.preview.SetContent(renderSearch(msg.Query, msg.Result))
		m.preview.GotoTop()

	case CardsLoadedMsg:
		if msg.Err != nil {
			return m, status("flashcards: " + msg.Err.Error())
		}
		m.deck = NewDeck(msg.Cards, nil)
		m.deckTitle = msg.Title
		return m, nil

	case components.FormSubmitMsg:
		if msg.Tag == searchForm && len(msg.Values) == 1 {
			query := strings.TrimSpace(msg.Values[0])
			if query == "" {
				cmd := m.clearSearch()
				return m, cmd
			}
			return m, m.searchCmd(query)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.deck != nil {
			m.updateDeck(msg)
			return m, nil
		}
		if !m.Capturing() {
			switch msg.String() {
			case "s":
				cmd := m.form.Open(searchForm, "Search formulas", []components.Field{
					{Label: "query", Placeholder: "name, latex or topic", Value: m.searching},
				})
				return m, cmd
			case "esc":
				if m.searching != "" {
					cmd := m.clearSearch()
					return m, cmd
				}
			case "c":
				if item, ok := m.list.SelectedItem().(topicItem); ok {
					return m, m.loadCardsCmd(item.topic.ID, item.topic.Name)
				}
			case "C":
				return m, m.loadCardsCmd("", "All formulas")
			}
		}
	}

	if !m.loading && m.deck == nil && components.ForList(m.list, msg) {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx && m.searching == "" {
			if item, ok := m.list.SelectedItem().(topicItem); ok {
				cmds = append(cmds, m.loadTopicCmd(item.topic.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading formulas…")
	}
	if m.form.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}
	if m.deck != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderCard())
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Capturing reports whether typed keys belong to this view.
func (m Model) Capturing() bool {
	return m.form.Visible() || m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m *Model) updateDeck(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.deck = nil
	case "right", "l", "n":
		m.deck.Next()
	case "left", "h", "p":
		m.deck.Prev()
	case " ", "f", "enter":
		m.deck.Flip()
	case "s":
		m.deck.Shuffle()
	case "m":
		m.deck.ToggleMastered()
	}
}

func (m *Model) clearSearch() tea.Cmd {
	m.searching = ""
	if item, ok := m.list.SelectedItem().(topicItem); ok {
		return m.loadTopicCmd(item.topic.ID)
	}
	return nil
}

func (m Model) renderCard() string {
	d := m.deck
	card, ok := d.Current()
	if !ok {
		return theme.Muted.Render("No cards. esc: back")
	}
	w := min(max(m.width-10, 30), 72)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.deckTitle) + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d / %d  mastered %d", d.Index()+1, d.Len(), d.MasteredCount())) + "\n\n")
	sb.WriteString(theme.Muted.Render(card.Topic) + "\n")
	sb.WriteString(theme.Big.Render(card.Name) + "\n\n")
	if d.Revealed() {
		sb.WriteString(theme.Hot.Render(card.Latex) + "\n")
		if card.Description != "" {
			sb.WriteString(theme.Muted.Render(card.Description) + "\n")
		}
	} else {
		sb.WriteString(theme.Muted.Render("press space to reveal") + "\n")
	}
	if d.IsMastered() {
		sb.WriteString("\n" + theme.Good.Render("mastered") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("←/→: move  space: flip  s: shuffle  m: mastered  esc: back"))

	style := theme.Pane
	if d.Revealed() {
		style = theme.PaneActive
	}
	return style.Width(w).Render(sb.String())
}

func renderTopic(d vaultdto.TopicDetailOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Topic.Name) + "\n")
	sb.WriteString(theme.Muted.Render(d.Topic.CategoryTitle) + "\n\n")
	writeFormulas(&sb, d.Formulas)
	sb.WriteString(theme.Muted.Render("s: search  c: flashcards  C: all flashcards"))
	return sb.String()
}

func renderSearch(query string, r vaultdto.SearchOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%q", query)) + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d formulas", r.Matches, r.Total)) + "\n\n")
	if len(r.Categories) == 0 {
		sb.WriteString(theme.Muted.Render("No formulas found.") + "\n\n")
	}
	for _, cat := range r.Categories {
		sb.WriteString(theme.Hot.Render(cat.Title) + "\n")
		for _, sub := range cat.Subtopics {
			sb.WriteString(theme.Title.Render("  "+sub.Name) + "\n")
			writeFormulas(&sb, sub.Formulas)
		}
	}
	sb.WriteString(theme.Muted.Render("esc: clear search"))
	return sb.String()
}

func writeFormulas(sb *strings.Builder, formulas []vaultdto.FormulaOutput) {
	for _, f := range formulas {
		sb.WriteString("  " + f.Name + "\n")
		sb.WriteString("    " + theme.Hot.Render(f.Latex) + "\n")
		if f.Description != "" {
			sb.WriteString("    " + theme.Muted.Render(f.Description) + "\n")
		}
		sb.WriteString("\n")
	}
}

func (m Model) loadTopicsCmd() tea.Cmd {
	return func() tea.Msg {
		topics, err := m.port.Topics(context.Background())
		return TopicsLoadedMsg{Topics: topics, Err: err}
	}
}

func (m Model) loadTopicCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Show(context.Background(), id)
		return TopicLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Search(context.Background(), query)
		return SearchLoadedMsg{Query: query, Result: out, Err: err}
	}
}

func (m Model) loadCardsCmd(topicID, title string) tea.Cmd {
	return func() tea.Msg {
		cards, err := m.port.Cards(context.Background(), topicID)
		return CardsLoadedMsg{Title: title, Cards: cards, Err: err}
	}
}

func status(s string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg(s) }
}
