package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptColors
	promptSEO
	promptUpload
)

// promptModel is a small labelled form shown over the editor. Enter on the
// last input submits; esc cancels.
type promptModel struct {
	kind   promptKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newPrompt(kind promptKind, title string, labels, values []string) promptModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.CharLimit = 300
		in.Width = 50
		if i < len(values) {
			in.SetValue(values[i])
			in.CursorEnd()
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return promptModel{kind: kind, title: title, labels: labels, inputs: inputs}
}

func (p promptModel) active() bool { return p.kind != promptNone }

// values returns the trimmed input values in label order.
func (p promptModel) values() []string {
	out := make([]string, len(p.inputs))
	for i, in := range p.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// Update handles one key. submit is true when enter was pressed on the last
// input; cancel reports esc.
func (p promptModel) Update(msg tea.KeyMsg) (model promptModel, cmd tea.Cmd, submit, cancel bool) {
	switch {
	case key.Matches(msg, keys.esc):
		return p, nil, false, true
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		return p.focusOn(p.focus + 1), nil, false, false
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		return p.focusOn(p.focus - 1), nil, false, false
	case key.Matches(msg, keys.enter):
		if p.focus < len(p.inputs)-1 {
			return p.focusOn(p.focus + 1), nil, false, false
		}
		return p, nil, true, false
	}

	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd, false, false
}

func (p promptModel) focusOn(i int) promptModel {
	n := len(p.inputs)
	if n == 0 {
		return p
	}
	p.inputs[p.focus].Blur()
	p.focus = (i%n + n) % n
	p.inputs[p.focus].Focus()
	return p
}

func (p promptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	for i, in := range p.inputs {
		b.WriteString(cursor(i == p.focus))
		b.WriteString(p.labels[i] + ": " + in.View() + "\n")
	}
	if p.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(p.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: далее/готово │ tab: следующее │ esc: отмена"))
	return overlayBoxStyle.Render(b.String())
}
