package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var welcomeItems = []string{"Войти", "Регистрация", "Выход"}

type welcomeModel struct {
	idx int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{}
}

// Update returns the chosen item index, or -1 while the user is still
// choosing.
func (m welcomeModel) Update(msg tea.KeyMsg) (welcomeModel, int) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(welcomeItems)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		return m, m.idx
	}
	return m, -1
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Конструктор лендингов\n\n")
	for i, item := range welcomeItems {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(item)
		b.WriteString("\n")
	}
	return renderPage("ДОБРО ПОЖАЛОВАТЬ", strings.TrimRight(b.String(), "\n"), "↑/↓: выбор │ enter: подтвердить")
}
