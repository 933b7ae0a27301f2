package tui

import (
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// consultasModel classifies a free-text caption.
type consultasModel struct {
	env *env

	input   textarea.Model
	spinner spinner.Model
	loading bool
	result  *models.Classification
}

func newConsultasModel(e *env) *consultasModel {
	input := textarea.New()
	input.Placeholder = "Escribe o pega el texto de la publicación..."
	input.ShowLineNumbers = false
	input.SetWidth(60)
	input.SetHeight(6)
	input.CharLimit = 5000

	return &consultasModel{
		env:     e,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *consultasModel) activate() tea.Cmd {
	return m.input.Focus()
}

func (m *consultasModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case analyzeResultMsg:
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
		if key.Matches(msg, keys.submit) {
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

// submit validates the caption locally; a blank one never reaches the
// service.
func (m *consultasModel) submit() tea.Cmd {
	if m.loading {
		return nil
	}

	text, err := validators.CleanText(m.input.Value())
	if err != nil {
		m.env.showError(err)
		return nil
	}

	m.loading = true
	m.result = nil
	m.env.notice.Clear()

	ctx := m.env.ctx
	classification := m.env.services.ClassificationService
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := classification.AnalyzeText(ctx, text)
		return analyzeResultMsg{result: res, err: err}
	})
}

func (m *consultasModel) view() string {
	var b strings.Builder
	b.WriteString("Texto a analizar\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Analizando...")
	case m.result != nil:
		b.WriteString("Resultado: ")
		b.WriteString(renderClassification(*m.result))
	default:
		b.WriteString("[Analizar]")
	}
	return b.String()
}

func (m *consultasModel) help() string {
	return "ctrl+s: analizar │ F1-F3: secciones"
}
