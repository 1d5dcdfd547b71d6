package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/auth"
)

func textBlink() tea.Cmd {
	return textinput.Blink
}

type loginModel struct {
	signup bool
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newLoginModel() loginModel {
	m := loginModel{}
	m.inputs = m.buildInputs()
	return m
}

func (m loginModel) buildInputs() []textinput.Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	if !m.signup {
		return []textinput.Model{email, password}
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 30
	username.Focus()
	email.Blur()
	return []textinput.Model{username, email, password}
}

func (m loginModel) update(a *app.App, msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			next := m.focus + 1
			if msg.String() == "shift+tab" || msg.String() == "up" {
				next = m.focus - 1
			}
			m.focus = (next + len(m.inputs)) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, textBlink()
		case "ctrl+s":
			m.signup = !m.signup
			m.focus = 0
			m.errMsg = ""
			m.inputs = m.buildInputs()
			return m, textBlink()
		case "enter":
			return m.submit(a)
		}
	}
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m loginModel) submit(a *app.App) (loginModel, tea.Cmd) {
	var err error
	if m.signup {
		_, err = a.Auth.Register(auth.RegisterRequest{
			Username: strings.TrimSpace(m.inputs[0].Value()),
			Email:    strings.TrimSpace(m.inputs[1].Value()),
			Password: m.inputs[2].Value(),
		})
	} else {
		_, err = a.Auth.Authenticate(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	return m, navTo(pageFeed)
}

func (m loginModel) view() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("🐾 Woofstagram") + "\n\n")
	if m.signup {
		b.WriteString("  Create an account\n\n")
	} else {
		b.WriteString("  Sign in\n\n")
	}
	for i := range m.inputs {
		b.WriteString("  " + m.inputs[i].View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("  enter submit · tab next field · ctrl+s switch sign in/sign up · ctrl+c quit") + "\n")
	return b.String()
}
