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
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the two-step sign-up screen: the account form, then a
// modal asking for the six-digit code that was emailed to the user. The
// account is only created once the code checks out.
type RegisterModel struct {
	env *env

	form       form
	code       textinput.Model
	codeStep   bool
	pending    models.Registration
	submitting bool
	resending  bool
}

func newRegisterModel(e *env) *RegisterModel {
	code := textinput.New()
	code.Placeholder = "000000"
	code.CharLimit = 6
	code.Width = 10

	f := newForm(
		field{label: "Nombre", placeholder: "tu nombre", limit: 64},
		field{label: "Correo", placeholder: "tu@correo.com", limit: 254},
		field{label: "Contraseña", placeholder: "mínimo 6 caracteres", secret: true, limit: 256},
		field{label: "Repetir contraseña", placeholder: "contraseña", secret: true, limit: 256},
	)

	return &RegisterModel{
		env:  e,
		form: f,
		code: code,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case codeSentMsg:
		m.submitting = false
		m.resending = false
		if msg.err != nil {
			m.env.showError(msg.err)
			return m, nil
		}
		m.env.notice.Set(models.NoticeSuccess, fmt.Sprintf(app.MsgCodeSent, msg.email))
		if !m.codeStep {
			m.codeStep = true
			m.code.Reset()
			m.form.inputs[m.form.focus].Blur()
			return m, m.code.Focus()
		}
		return m, nil

	case registrationResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.env.showError(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.codeStep {
			return m, m.updateCodeStep(msg)
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageLanding} }
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if !m.form.last() {
				m.form.next()
				return m, nil
			}
			return m, m.cmdRequestCode()
		}
	}

	if m.codeStep {
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	return m, m.form.update(msg)
}

func (m *RegisterModel) updateCodeStep(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.codeStep = false
		m.code.Blur()
		m.form.inputs[m.form.focus].Focus()
		return nil
	case key.Matches(msg, keys.secondary):
		return m.cmdResendCode()
	case key.Matches(msg, keys.enter):
		return m.cmdConfirm()
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return cmd
}

func (m *RegisterModel) View() string {
	if m.codeStep {
		var b strings.Builder
		b.WriteString("Ingresa el código que enviamos a ")
		b.WriteString(m.pending.Email)
		b.WriteString("\n\nCódigo │ [")
		b.WriteString(m.code.View())
		b.WriteString("]")
		switch {
		case m.submitting:
			b.WriteString("\n\n[Verificando...]")
		case m.resending:
			b.WriteString("\n\n[Reenviando código...]")
		default:
			b.WriteString("\n\n[Verificar]")
		}
		modal := overlayBoxStyle.Render(b.String())
		return renderPage("VERIFICAR CORREO", modal, "esc: corregir datos │ enter: verificar │ ctrl+r: reenviar código")
	}

	var b strings.Builder
	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n\n[Enviando código...]")
	} else {
		b.WriteString("\n\n[Crear cuenta]")
	}
	return renderPage("CREAR CUENTA", b.String(), "esc: volver │ tab: siguiente campo │ enter: continuar")
}

func (m *RegisterModel) registration() models.Registration {
	return models.Registration{
		DisplayName: strings.TrimSpace(m.form.value(registerName)),
		Email:       strings.TrimSpace(m.form.value(registerEmail)),
		Password:    m.form.value(registerPassword),
		Confirm:     m.form.value(registerConfirm),
	}
}

func (m *RegisterModel) cmdRequestCode() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.pending = m.registration()

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	reg := m.pending

	return func() tea.Msg {
		return codeSentMsg{email: reg.Email, err: auth.RequestRegistration(ctx, reg)}
	}
}

func (m *RegisterModel) cmdResendCode() tea.Cmd {
	if m.resending || m.submitting {
		return nil
	}
	m.resending = true

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	email := m.pending.Email

	return func() tea.Msg {
		return codeSentMsg{email: email, err: auth.ResendCode(ctx, email)}
	}
}

func (m *RegisterModel) cmdConfirm() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	reg := m.pending
	code := m.code.Value()

	return func() tea.Msg {
		_, err := auth.ConfirmRegistration(ctx, reg, code)
		return registrationResultMsg{err: err}
	}
}
