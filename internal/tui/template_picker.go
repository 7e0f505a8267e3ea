package tui

import (
	"strings"

	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// templatePickerModel lists the section templates for "add section".
type templatePickerModel struct {
	templates []sections.Template
	idx       int
}

func newTemplatePickerModel(registry *sections.Registry) templatePickerModel {
	return templatePickerModel{templates: registry.Templates()}
}

func (m templatePickerModel) Update(msg tea.KeyMsg) (templatePickerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.templates)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.templates) == 0 {
			return m, nil
		}
		id := m.templates[m.idx].ID
		return m, func() tea.Msg { return addSectionMsg{templateID: id} }
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return closeTemplates{} }
	}
	return m, nil
}

func (m templatePickerModel) View() string {
	var b strings.Builder
	for i, t := range m.templates {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(t.Name)
		b.WriteString(helpStyle.Render("  " + string(t.Type)))
		b.WriteString("\n")
	}
	return renderPage("ДОБАВИТЬ СЕКЦИЮ", strings.TrimRight(b.String(), "\n"), "↑/↓: выбор │ enter: добавить │ esc: назад")
}
