package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputSpec describes one text input of a form.
type inputSpec struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// formInputs owns the mutable text inputs of one form and the focus among them.
type formInputs struct {
	specs  []inputSpec
	inputs []textinput.Model
	focus  int
}

func newFormInputs(width int, specs ...inputSpec) formInputs {
	inputs := make([]textinput.Model, len(specs))
	for i, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.CharLimit = s.charLimit
		in.Width = width
		if s.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}

	f := formInputs{specs: specs, inputs: inputs}
	f.reset()
	return f
}

func (f *formInputs) value(i int) string {
	return f.inputs[i].Value()
}

// reset empties every input and focuses the first one.
func (f *formInputs) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

func (f *formInputs) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formInputs) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *formInputs) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formInputs) View() string {
	labels := make([]string, len(f.specs))
	values := make([]string, len(f.inputs))
	for i := range f.inputs {
		labels[i] = f.specs[i].label
		values[i] = f.inputs[i].View()
	}
	return renderFieldTable(labels, values)
}
