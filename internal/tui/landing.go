package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var landingItems = []struct {
	title string
	page  string
}{
	{title: "Iniciar sesión", page: pageLogin},
	{title: "Crear cuenta", page: pageRegister},
}

// landingModel is the public start page.
type landingModel struct {
	env    *env
	cursor int
}

func newLandingModel(e *env) *landingModel {
	return &landingModel{env: e}
}

func (m *landingModel) Init() tea.Cmd {
	return nil
}

func (m *landingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = (m.cursor - 1 + len(landingItems)) % len(landingItems)
	case key.Matches(keyMsg, keys.down), key.Matches(keyMsg, keys.tab):
		m.cursor = (m.cursor + 1) % len(landingItems)
	case key.Matches(keyMsg, keys.enter):
		page := landingItems[m.cursor].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}
	return m, nil
}

func (m *landingModel) View() string {
	var b strings.Builder
	b.WriteString("Detecta publicaciones y perfiles que exponen información sensible.\n\n")
	for i, item := range landingItems {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + item.title))
		} else {
			b.WriteString("  " + item.title)
		}
		b.WriteString("\n")
	}
	return renderPage("PROFILE GUARD", strings.TrimRight(b.String(), "\n"), "↑/↓: mover │ enter: abrir │ v: versión")
}
