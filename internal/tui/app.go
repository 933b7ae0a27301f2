package tui

import (
	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel is the TUI router:
// 1) keeps the active page and builds a fresh one on every navigation
// 2) gates the dashboard behind the authenticated session state
// 3) handles global Ctrl+C quit and the build info overlay
// 4) feeds every key and mouse event to the inactivity monitor
// 5) delegates all other messages to the active page
type RootModel struct {
	env     *env
	signals *signals
	pages   map[string]func(*env) tea.Model

	page    string
	current tea.Model
	width   int
	height  int

	showBuildInfo bool
}

func newRootModel(e *env, sig *signals) RootModel {
	pages := map[string]func(*env) tea.Model{
		pageLanding:   func(e *env) tea.Model { return newLandingModel(e) },
		pageLogin:     func(e *env) tea.Model { return newLoginModel(e) },
		pageRegister:  func(e *env) tea.Model { return newRegisterModel(e) },
		pageDashboard: func(e *env) tea.Model { return newDashboardModel(e) },
	}

	return RootModel{
		env:     e,
		signals: sig,
		pages:   pages,
	}
}

func (r RootModel) Init() tea.Cmd {
	sessions := r.env.sessions
	ctx := r.env.ctx

	return tea.Batch(
		func() tea.Msg { return sessionStartedMsg{err: sessions.Start(ctx)} },
		r.signals.session.wait(ctx, sessionChangedMsg{}),
		r.signals.notice.wait(ctx, noticeChangedMsg{}),
		r.signals.sidebar.wait(ctx, sidebarChangedMsg{}),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		r.env.activity.Activity(session.EventKeyPress)

		switch {
		case key.Matches(msg, keys.quit):
			return r, tea.Quit
		case r.showBuildInfo && key.Matches(msg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		case r.page == pageLanding && key.Matches(msg, keys.version):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}
		if r.showBuildInfo {
			return r, nil
		}

	case tea.MouseMsg:
		r.env.activity.Activity(mouseEventKind(msg))

	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height

	case sessionStartedMsg:
		if msg.err != nil {
			r.env.logger.Warn().Err(msg.err).Str("func", "RootModel.Update").Msg("session restore finished with error")
		}
		return r.sync()

	case sessionChangedMsg:
		next, cmd := r.sync()
		return next, tea.Batch(cmd, r.signals.session.wait(r.env.ctx, sessionChangedMsg{}))

	case noticeChangedMsg:
		return r, r.signals.notice.wait(r.env.ctx, noticeChangedMsg{})

	case sidebarChangedMsg:
		return r, r.signals.sidebar.wait(r.env.ctx, sidebarChangedMsg{})

	case NavigateTo:
		return r.navigate(msg.Page)

	case signedOutMsg:
		if msg.err != nil {
			r.env.showError(msg.err)
		} else {
			r.env.notice.Set(models.NoticeSuccess, app.MsgSignedOut)
		}
		return r.sync()

	case registrationResultMsg:
		if msg.err == nil {
			r.env.notice.Set(models.NoticeSuccess, app.MsgRegistered)
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.env.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("PROFILE GUARD", "Cargando sesión...", ""))
	}

	body := r.current.View()
	if banner := renderNotice(r.env.notice.Current()); banner != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, banner, "", body)
	}
	return appStyle.Render(body)
}

// sync moves to the page the session state allows. An anonymous session
// that ended by inactivity lands on the landing page with a notice.
func (r RootModel) sync() (tea.Model, tea.Cmd) {
	switch r.env.sessions.State() {
	case session.StateAuthenticated:
		if r.page != pageDashboard {
			return r.navigate(pageDashboard)
		}
	case session.StateAnonymous:
		if r.env.expired.Swap(false) {
			r.env.notice.Set(models.NoticeWarning, app.MsgSessionExpired)
			return r.navigate(pageLanding)
		}
		if r.page == "" || r.page == pageDashboard {
			return r.navigate(pageLanding)
		}
	}
	return r, nil
}

func (r RootModel) navigate(page string) (tea.Model, tea.Cmd) {
	page = r.allowed(page)
	if page == "" {
		r.page = ""
		r.current = nil
		return r, nil
	}

	build, ok := r.pages[page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.page = page
	r.current = build(r.env)

	cmds := []tea.Cmd{r.current.Init()}
	if r.width > 0 {
		size := tea.WindowSizeMsg{Width: r.width, Height: r.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return r, tea.Batch(cmds...)
}

// allowed maps a requested page to the one the session state permits.
// Nothing renders until the session is resolved.
func (r RootModel) allowed(page string) string {
	switch r.env.sessions.State() {
	case session.StateUninitialized:
		return ""
	case session.StateAuthenticated:
		return pageDashboard
	default:
		if page == pageDashboard {
			return pageLogin
		}
		return page
	}
}

func mouseEventKind(msg tea.MouseMsg) session.EventKind {
	switch {
	case tea.MouseEvent(msg).IsWheel():
		return session.EventScroll
	case msg.Action == tea.MouseActionPress:
		return session.EventPointerDown
	default:
		return session.EventPointerMove
	}
}
