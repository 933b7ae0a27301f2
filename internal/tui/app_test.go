package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/notice"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) (RootModel, *testEnv) {
	t.Helper()
	te := newTestEnv(t)
	return newRootModel(te.env, newSignals()), te
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── Gating ───────────────────────────────────────────────────────────────────

func TestRootModel_NothingRendersUntilSessionResolves(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = update(t, r, NavigateTo{Page: pageDashboard})
	assert.Nil(t, r.current)
	assert.Empty(t, r.page)
	assert.Contains(t, r.View(), "Cargando sesión")
}

func TestRootModel_AnonymousIsRedirectedFromDashboard(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAnonymous

	r, _ = update(t, r, sessionStartedMsg{})
	assert.Equal(t, pageLanding, r.page)

	r, _ = update(t, r, NavigateTo{Page: pageDashboard})
	assert.Equal(t, pageLogin, r.page)
	assert.IsType(t, &LoginModel{}, r.current)
}

func TestRootModel_AuthenticatedAlwaysLandsOnDashboard(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAuthenticated
	te.sessions.current = models.Session{UID: "u1", Email: "ana@example.com"}

	r, _ = update(t, r, sessionChangedMsg{})
	assert.Equal(t, pageDashboard, r.page)

	// Публичные страницы для вошедшего пользователя недоступны
	r, _ = update(t, r, NavigateTo{Page: pageLogin})
	assert.Equal(t, pageDashboard, r.page)
}

func TestRootModel_SignInMovesToDashboard(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAnonymous
	r, _ = update(t, r, NavigateTo{Page: pageLogin})

	te.sessions.state = session.StateAuthenticated
	r, _ = update(t, r, sessionChangedMsg{})
	assert.Equal(t, pageDashboard, r.page)
}

// ── Session end ──────────────────────────────────────────────────────────────

func TestRootModel_InactivityExpiryShowsNoticeOnLanding(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAuthenticated
	r, _ = update(t, r, sessionChangedMsg{})
	require.Equal(t, pageDashboard, r.page)

	te.env.expired.Store(true)
	te.sessions.state = session.StateAnonymous
	r, _ = update(t, r, sessionChangedMsg{})

	assert.Equal(t, pageLanding, r.page)
	assert.False(t, te.env.expired.Load())
	assert.Equal(t, notice.State{Kind: models.NoticeWarning, Message: app.MsgSessionExpired}, te.env.notice.Current())
	assert.Contains(t, r.View(), app.MsgSessionExpired)
}

func TestRootModel_ManualSignOut(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAuthenticated
	r, _ = update(t, r, sessionChangedMsg{})

	te.sessions.state = session.StateAnonymous
	r, _ = update(t, r, signedOutMsg{})

	assert.Equal(t, pageLanding, r.page)
	assert.Equal(t, app.MsgSignedOut, te.env.notice.Current().Message)
}

func TestRootModel_SignOutFailureKeepsDashboard(t *testing.T) {
	r, te := newTestRoot(t)
	te.sessions.state = session.StateAuthenticated
	r, _ = update(t, r, sessionChangedMsg{})

	r, _ = update(t, r, signedOutMsg{err: errors.New("disk full")})

	assert.Equal(t, pageDashboard, r.page)
	assert.Equal(t, models.NoticeDanger, te.env.notice.Current().Kind)
}

// ── Input ────────────────────────────────────────────────────────────────────

func TestRootModel_InputCountsAsActivity(t *testing.T) {
	r, te := newTestRoot(t)

	r, _ = update(t, r, keyRunes("a"))
	r, _ = update(t, r, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	r, _ = update(t, r, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	_, _ = update(t, r, tea.MouseMsg{Action: tea.MouseActionMotion})

	assert.Equal(t, []session.EventKind{
		session.EventKeyPress,
		session.EventScroll,
		session.EventPointerDown,
		session.EventPointerMove,
	}, te.activity.events)
}

func TestRootModel_BuildInfoOverlayOnlyOnLanding(t *testing.T) {
	r, te := newTestRoot(t)
	te.env.buildInfo = models.NewAppBuildInfo("v1.2.0", "2026-03-01", "abc123")
	te.sessions.state = session.StateAnonymous
	r, _ = update(t, r, sessionStartedMsg{})

	r, _ = update(t, r, keyRunes("v"))
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "v1.2.0")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)

	// На странице входа "v" это обычный символ в поле ввода
	r, _ = update(t, r, NavigateTo{Page: pageLogin})
	r, _ = update(t, r, keyRunes("v"))
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _ := newTestRoot(t)

	_, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
