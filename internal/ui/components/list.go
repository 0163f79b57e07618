package components

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"studyhub/internal/ui/theme"
)

// NewList builds a list with the shared delegate styling and no built-in help.
func NewList(title string, filtering bool) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(filtering)
	l.SetShowHelp(false)
	return l
}

// ForList reports whether msg may be handed to l. Filter results are
// broadcast to every view, so only the list that is typing a filter takes
// them.
func ForList(l list.Model, msg tea.Msg) bool {
	if _, ok := msg.(list.FilterMatchesMsg); ok {
		return l.FilterState() == list.Filtering
	}
	return true
}
