package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyhub/internal/ui/theme"
)

// FormSubmitMsg is emitted when the user confirms the form.
type FormSubmitMsg struct {
	Tag    string
	Values []string
}

// FormCancelMsg is emitted when the user presses esc.
type FormCancelMsg struct{ Tag string }

// FormEditedMsg is emitted after a keystroke changed any value.
type FormEditedMsg struct {
	Tag    string
	Values []string
}

// StatusMsg asks the app to replace the status bar text.
type StatusMsg string

// Field describes one input of a form.
type Field struct {
	Label       string
	Placeholder string
	Value       string
	Multiline   bool
}

var (
	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(theme.Subtext0).Width(10)
)

type formField struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func (f formField) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) setValue(v string) {
	if f.multiline {
		f.area.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

func (f *formField) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f formField) update(msg tea.Msg) (formField, tea.Cmd) {
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return f, cmd
}

func (f formField) view() string {
	if f.multiline {
		return labelStyle.Render(f.label) + "\n" + f.area.View()
	}
	return labelStyle.Render(f.label) + " " + f.input.View()
}

// Form is a modal overlay of labelled inputs. tab and shift+tab move between
// fields, enter advances or submits, ctrl+s always submits and esc cancels.
type Form struct {
	tag     string
	title   string
	fields  []formField
	focus   int
	hint    string
	visible bool
	width   int
}

func NewForm() Form { return Form{} }

func (f Form) Visible() bool { return f.visible }
func (f Form) Tag() string   { return f.tag }

// SetWidth sets the render width for the overlay.
func (f *Form) SetWidth(w int) { f.width = w }

// SetHint shows a line under the inputs, such as a lookup status.
func (f *Form) SetHint(h string) { f.hint = h }

// Value returns the current text of field i.
func (f Form) Value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value()
}

// SetValue replaces the text of field i without emitting FormEditedMsg.
func (f *Form) SetValue(i int, v string) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	f.fields[i].setValue(v)
}

// Open shows the form with fresh inputs and focuses the first one.
func (f *Form) Open(tag, title string, fields []Field) tea.Cmd {
	f.tag = tag
	f.title = title
	f.hint = ""
	f.focus = 0
	f.fields = make([]formField, len(fields))
	w := f.inputWidth()
	for i, spec := range fields {
		ff := formField{label: spec.Label, multiline: spec.Multiline}
		if spec.Multiline {
			ff.area = textarea.New()
			ff.area.Placeholder = spec.Placeholder
			ff.area.ShowLineNumbers = false
			ff.area.CharLimit = 4000
			ff.area.SetWidth(w)
			ff.area.SetHeight(6)
		} else {
			ff.input = textinput.New()
			ff.input.Prompt = ""
			ff.input.Placeholder = spec.Placeholder
			ff.input.CharLimit = 256
			ff.input.Width = w - 12
		}
		ff.setValue(spec.Value)
		f.fields[i] = ff
	}
	f.visible = true
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[0].focus()
}

// Close hides the form without emitting a message.
func (f *Form) Close() {
	f.visible = false
	for i := range f.fields {
		f.fields[i].blur()
	}
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.visible || len(f.fields) == 0 {
		return f, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			tag := f.tag
			f.Close()
			return f, func() tea.Msg { return FormCancelMsg{Tag: tag} }
		case "ctrl+s":
			return f.submit()
		case "tab", "down":
			if !f.current().multiline || msg.String() == "tab" {
				cmd := f.move(1)
				return f, cmd
			}
		case "shift+tab", "up":
			if !f.current().multiline || msg.String() == "shift+tab" {
				cmd := f.move(-1)
				return f, cmd
			}
		case "enter":
			if !f.current().multiline {
				if f.focus == len(f.fields)-1 {
					return f.submit()
				}
				cmd := f.move(1)
				return f, cmd
			}
		}
	}

	before := f.values()
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].update(msg)
	after := f.values()
	if !equal(before, after) {
		tag := f.tag
		edited := func() tea.Msg { return FormEditedMsg{Tag: tag, Values: after} }
		return f, tea.Batch(cmd, edited)
	}
	return f, cmd
}

func (f Form) View() string {
	if !f.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(f.title) + "\n\n")
	for i, field := range f.fields {
		line := field.view()
		if i == f.focus {
			line = theme.Hot.Render("›") + line
		} else {
			line = " " + line
		}
		sb.WriteString(line + "\n")
	}
	if f.hint != "" {
		sb.WriteString("\n" + theme.Muted.Render(f.hint) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab: next field  ctrl+s: save  esc: cancel"))
	return formStyle.Width(f.inputWidth() + 4).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (f Form) current() formField { return f.fields[f.focus] }

func (f *Form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focus].blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].focus()
}

func (f Form) submit() (Form, tea.Cmd) {
	tag := f.tag
	values := f.values()
	f.Close()
	return f, func() tea.Msg { return FormSubmitMsg{Tag: tag, Values: values} }
}

func (f Form) values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.value()
	}
	return out
}

func (f Form) inputWidth() int {
	if f.width < 30 {
		return 60
	}
	return f.width - 6
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
