// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authFormModel is the login or registration form. Registration asks for
// the password twice.
type authFormModel struct {
	register bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// authSubmit is returned by Update when the form is complete.
type authSubmit struct {
	login    string
	password string
}

func newAuthFormModel(register bool) authFormModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	inputs := []textinput.Model{loginInput, passwordInput("password")}
	if register {
		inputs = append(inputs, passwordInput("repeat password"))
	}

	return authFormModel{register: register, inputs: inputs}
}

func passwordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Update handles one message. submit is non-nil when enter was pressed on a
// valid form; back reports esc.
func (m authFormModel) Update(msg tea.Msg) (model authFormModel, cmd tea.Cmd, submit *authSubmit, back bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.reset(), nil, nil, true
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.focusNext()
			return m, nil, nil, false
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.focusPrev()
			return m, nil, nil, false
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil, nil, false
			}
			s, errMsg := m.validate()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil, nil, false
			}
			m.errMsg = ""
			m.submitting = true
			return m, nil, s, false
		}
	}

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, nil, false
}

func (m authFormModel) validate() (*authSubmit, string) {
	login := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()
	if login == "" || pass == "" {
		return nil, "Логин и пароль обязательны"
	}
	if m.register && m.inputs[2].Value() != pass {
		return nil, "Пароли не совпадают"
	}
	return &authSubmit{login: login, password: pass}, ""
}

// failed records a rejected submission.
func (m authFormModel) failed(err error) authFormModel {
	m.submitting = false
	m.errMsg = humanizeError(err)
	return m
}

func (m authFormModel) reset() authFormModel {
	return newAuthFormModel(m.register)
}

func (m authFormModel) View() string {
	labels := []string{"Логин   ", "Пароль  ", "Повтор  "}

	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	action, title := "Войти", "ВХОД"
	if m.register {
		action, title = "Зарегистрироваться", "РЕГИСТРАЦИЯ"
	}
	if m.submitting {
		action += "..."
	}
	b.WriteString("\n[" + action + "]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *authFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *authFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
