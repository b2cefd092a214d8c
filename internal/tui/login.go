// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"

	minPasswordLength = 8
)

// AuthModel is the sign-in and the registration form. Registration asks
// for the password twice.
type AuthModel struct {
	ctx      context.Context
	auth     service.ClientAuthService
	register bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *AuthModel {
	return newAuthModel(ctx, auth, false)
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *AuthModel {
	return newAuthModel(ctx, auth, true)
}

func newAuthModel(ctx context.Context, auth service.ClientAuthService, register bool) *AuthModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	inputs := []textinput.Model{email, passwordInput("password")}
	if register {
		inputs = append(inputs, passwordInput("repeat password"))
	}

	return &AuthModel{ctx: ctx, auth: auth, register: register, inputs: inputs}
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

func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	switch {
	case email == "" || password == "":
		m.errMsg = "Email and password are required"
		return nil
	case m.register && len(password) < minPasswordLength:
		m.errMsg = "Password must be at least 8 characters"
		return nil
	case m.register && password != m.inputs[2].Value():
		m.errMsg = "Passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth, register := m.ctx, m.auth, m.register
	return func() tea.Msg {
		if register {
			session, err := auth.Register(ctx, email, password)
			return AuthResult{Session: session, Register: true, Err: err}
		}
		session, err := auth.Login(ctx, email, password)
		return AuthResult{Session: session, Err: err}
	}
}

func (m *AuthModel) View() string {
	labels := []string{"Email   ", "Password", "Repeat  "}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	action := "Sign in"
	title := "SIGN IN"
	if m.register {
		action, title = "Register", "REGISTER"
	}
	if m.submitting {
		action += "..."
	}
	b.WriteString("\n[" + action + "]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *AuthModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
