package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled text input.
type formField struct {
	label string
	input textinput.Model
}

// form keeps a list of inputs with exactly one focused.
type form struct {
	fields []formField
	focus  int
}

func newTextField(label, placeholder string, charLimit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return formField{label: label, input: in}
}

func newPasswordField(label, placeholder string) formField {
	f := newTextField(label, placeholder, 72)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

// update moves focus on tab/shift+tab and feeds everything else to the
// focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f *form) view() string {
	var out string
	for _, field := range f.fields {
		out += renderRow(field.label, "["+field.input.View()+"]")
	}
	return out
}
