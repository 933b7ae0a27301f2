// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sectionConsultas = iota
	sectionVerify
	sectionHistory
)

var sectionTitles = []string{
	sectionConsultas: "Consultas",
	sectionVerify:    "Verificar perfil",
	sectionHistory:   "Historial",
}

// section is one panel of the dashboard. Sections keep their state while
// hidden; a result that arrives for a hidden section is still applied.
type section interface {
	activate() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
	help() string
}

// dashboardModel is the protected area: a collapsible sidebar and the
// active section.
type dashboardModel struct {
	env      *env
	active   int
	sections []section

	signingOut bool
}

func newDashboardModel(e *env) *dashboardModel {
	sections := []section{
		sectionConsultas: newConsultasModel(e),
		sectionVerify:    newVerifyModel(e),
		sectionHistory:   newHistoryModel(e),
	}
	return &dashboardModel{env: e, sections: sections}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.sections[m.active].activate()
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toggleSidebar):
			m.env.sidebar.Toggle()
			return m, nil
		case key.Matches(msg, keys.logout):
			return m, m.cmdSignOut()
		case key.Matches(msg, keys.consultas):
			return m, m.show(sectionConsultas)
		case key.Matches(msg, keys.verify):
			return m, m.show(sectionVerify)
		case key.Matches(msg, keys.history):
			return m, m.show(sectionHistory)
		}
		return m, m.sections[m.active].update(msg)

	case analyzeResultMsg:
		return m, m.sections[sectionConsultas].update(msg)
	case verifyResultMsg:
		return m, m.sections[sectionVerify].update(msg)
	case historyLoadedMsg, copiedMsg:
		return m, m.sections[sectionHistory].update(msg)
	}

	cmds := make([]tea.Cmd, 0, len(m.sections))
	for _, s := range m.sections {
		cmds = append(cmds, s.update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *dashboardModel) View() string {
	body := m.sections[m.active].view()
	help := m.sections[m.active].help() + " │ ctrl+b: menú │ ctrl+x: cerrar sesión"
	page := renderPage(strings.ToUpper(sectionTitles[m.active]), body, help)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), page)
}

func (m *dashboardModel) sidebarView() string {
	if !m.env.sidebar.IsOpen() {
		return sidebarStyle.Render("≡")
	}

	var b strings.Builder
	if s, ok := m.env.sessions.Current(); ok {
		name := s.DisplayName
		if name == "" {
			name = s.Email
		}
		b.WriteString(titleStyle.Render(fitText(name, 24)))
		b.WriteString("\n\n")
	}
	for i, title := range sectionTitles {
		line := "F" + string(rune('1'+i)) + " " + title
		if i == m.active {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if m.signingOut {
		b.WriteString("\nCerrando sesión...")
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *dashboardModel) show(i int) tea.Cmd {
	if i == m.active {
		return nil
	}
	m.active = i
	return m.sections[i].activate()
}

func (m *dashboardModel) cmdSignOut() tea.Cmd {
	if m.signingOut {
		return nil
	}
	m.signingOut = true

	ctx := m.env.ctx
	auth := m.env.services.AuthService
	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}
