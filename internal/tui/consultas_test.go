package tui

import (
	"testing"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	require.Failf(t, "message not found", "%T not in %v", zero, msgs)
	return zero
}

// ── Consultas ────────────────────────────────────────────────────────────────

func TestConsultas_BlankTextShowsWarningWithoutRequest(t *testing.T) {
	te := newTestEnv(t)
	m := newConsultasModel(te.env)
	m.activate()

	// Ни одного EXPECT на ClassificationService: запрос не должен уйти
	typeText(t, m, "   ")
	cmd := m.update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, models.NoticeWarning, te.env.notice.Current().Kind)
	assert.Equal(t, app.MsgEmptyText, te.env.notice.Current().Message)
}

func TestConsultas_SubmitShowsResult(t *testing.T) {
	te := newTestEnv(t)
	m := newConsultasModel(te.env)
	m.activate()

	te.classification.EXPECT().AnalyzeText(gomock.Any(), "vivo en Medellín").
		Return(models.Classification{Label: "Sensible", Score: 0.76}, nil)

	typeText(t, m, "vivo en Medellín")
	cmd := m.update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Contains(t, m.view(), "Analizando")

	// Повторная отправка во время загрузки игнорируется
	assert.Nil(t, m.update(tea.KeyMsg{Type: tea.KeyCtrlS}))

	result := findMsg[analyzeResultMsg](t, collect(cmd))
	m.update(result)

	assert.False(t, m.loading)
	require.NotNil(t, m.result)
	assert.Contains(t, m.view(), "Sensible")
	assert.Contains(t, m.view(), "76.0 %")
}

func TestConsultas_ErrorGoesToNotice(t *testing.T) {
	te := newTestEnv(t)
	m := newConsultasModel(te.env)
	m.loading = true

	m.update(analyzeResultMsg{err: &service.UpstreamError{Message: "Error 500: Internal Server Error"}})

	assert.False(t, m.loading)
	assert.Nil(t, m.result)
	assert.Equal(t, "Error 500: Internal Server Error", te.env.notice.Current().Message)
}

func TestConsultas_WarmingUpIsWarning(t *testing.T) {
	te := newTestEnv(t)
	m := newConsultasModel(te.env)

	m.update(analyzeResultMsg{err: service.ErrModelWarmingUp})

	assert.Equal(t, models.NoticeWarning, te.env.notice.Current().Kind)
	assert.Equal(t, app.MsgModelWarmingUp, te.env.notice.Current().Message)
}

// ── Verificar perfil ─────────────────────────────────────────────────────────

func TestVerifyProfile_StripsAtAndRendersReasons(t *testing.T) {
	te := newTestEnv(t)
	m := newVerifyModel(te.env)
	m.activate()

	link := "https://www.google.com/maps/search/?api=1&query=Cali"
	te.classification.EXPECT().VerifyProfile(gomock.Any(), "ana.perez").
		Return(models.ProfileVerification{
			Classification: models.Classification{Label: "Sensible", Score: 0.9},
			Reasons:        []models.Reason{{Detail: "Ubicación mostrada: Cali", MapLink: &link}},
		}, nil)

	typeText(t, m, "@ana.perez")
	cmd := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m.update(findMsg[verifyResultMsg](t, collect(cmd)))

	out := m.view()
	assert.Contains(t, out, "@ana.perez")
	assert.Contains(t, out, "Ubicación mostrada: Cali")
	assert.Contains(t, out, link)
}

func TestVerifyProfile_EmptyUsername(t *testing.T) {
	te := newTestEnv(t)
	m := newVerifyModel(te.env)
	m.activate()

	typeText(t, m, "@@")
	assert.Nil(t, m.update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, app.MsgEmptyUsername, te.env.notice.Current().Message)
}

