package tui

import (
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// verifyModel runs the analysis of a single public profile.
type verifyModel struct {
	env *env

	input   textinput.Model
	spinner spinner.Model
	loading bool
	checked string
	result  *models.ProfileVerification
}

func newVerifyModel(e *env) *verifyModel {
	input := textinput.New()
	input.Placeholder = "@usuario"
	input.CharLimit = 64
	input.Width = 40

	return &verifyModel{
		env:     e,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *verifyModel) activate() tea.Cmd {
	return m.input.Focus()
}

func (m *verifyModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case verifyResultMsg:
		m.loading = false
		if msg.err != nil {
			m.env.showError(msg.err)
			return nil
		}
		result := msg.result
		m.result = &result
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.submit) {
			return m.submit()
		}
		if m.loading {
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *verifyModel) submit() tea.Cmd {
	if m.loading {
		return nil
	}

	username, err := validators.CleanUsername(m.input.Value())
	if err != nil {
		m.env.showError(err)
		return nil
	}

	m.loading = true
	m.checked = username
	m.result = nil
	m.env.notice.Clear()

	ctx := m.env.ctx
	classification := m.env.services.ClassificationService
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := classification.VerifyProfile(ctx, username)
		return verifyResultMsg{result: res, err: err}
	})
}

func (m *verifyModel) view() string {
	var b strings.Builder
	b.WriteString("Usuario │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Verificando @")
		b.WriteString(m.checked)
		b.WriteString("...")
	case m.result != nil:
		b.WriteString("Perfil: @")
		b.WriteString(m.checked)
		b.WriteString("\nResultado: ")
		b.WriteString(renderClassification(m.result.Classification))
		b.WriteString("\n\nRazones:\n")
		b.WriteString(renderReasons(m.result.Reasons))
	default:
		b.WriteString("[Verificar]")
	}
	return b.String()
}

func (m *verifyModel) help() string {
	return "enter: verificar │ F1-F3: secciones"
}
