// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async sign-in on submit.
// A successful sign-in is not handled here: the session store changes state
// and [RootModel] moves on to the dashboard.
type LoginModel struct {
	env *env

	form       form
	submitting bool
	resetting  bool
}

func newLoginModel(e *env) *LoginModel {
	f := newForm(
		field{label: "Correo", placeholder: "tu@correo.com", limit: 254},
		field{label: "Contraseña", placeholder: "contraseña", secret: true, limit: 256},
	)
	return &LoginModel{env: e, form: f}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [signInResultMsg] clears the submitting state and reports a failure.
//   - [resetSentMsg]    reports the outcome of a password reset request.
//   - esc               goes back to the landing page.
//   - tab / shift+tab   move the focus.
//   - enter             moves to the next field or submits on the last one.
//   - ctrl+r            sends a password reset email to the typed address.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.env.showError(msg.err)
		}
		return m, nil

	case resetSentMsg:
		m.resetting = false
		if msg.err != nil {
			m.env.showError(msg.err)
		} else {
			m.env.notice.Set(models.NoticeSuccess, fmt.Sprintf(app.MsgResetEmailSent, msg.email))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageLanding} }
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.secondary):
			return m, m.cmdSendReset()
		case key.Matches(msg, keys.enter):
			if !m.form.last() {
				m.form.next()
				return m, nil
			}
			return m, m.cmdSignIn()
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Ingresando...]")
	} else {
		b.WriteString("\n\n[Ingresar]")
	}
	if m.resetting {
		b.WriteString("\n\nEnviando correo de recuperación...")
	}

	return renderPage("INICIAR SESIÓN", b.String(), "esc: volver │ tab: siguiente campo │ enter: ingresar │ ctrl+r: olvidé mi contraseña")
}

func (m *LoginModel) cmdSignIn() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.env.notice.Clear()

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	creds := models.Credentials{
		Email:    strings.TrimSpace(m.form.value(loginEmail)),
		Password: m.form.value(loginPassword),
	}

	return func() tea.Msg {
		_, err := auth.SignIn(ctx, creds)
		return signInResultMsg{err: err}
	}
}

func (m *LoginModel) cmdSendReset() tea.Cmd {
	if m.resetting {
		return nil
	}
	m.resetting = true

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	email := strings.TrimSpace(m.form.value(loginEmail))

	return func() tea.Msg {
		return resetSentMsg{email: email, err: auth.SendPasswordReset(ctx, email)}
	}
}
