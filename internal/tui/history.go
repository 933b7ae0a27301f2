package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/history"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// historyModel renders the searchable, paginated profile history. All
// filtering and paging state lives in [history.View].
type historyModel struct {
	env   *env
	state *history.View

	search    textinput.Model
	searching bool
	cursor    int
	detail    bool
	loaded    bool
	copying   bool
}

func newHistoryModel(e *env) *historyModel {
	search := textinput.New()
	search.Placeholder = "buscar @usuario"
	search.CharLimit = 64
	search.Width = 30

	state := history.NewView(e.services.HistoryService, e.notice, history.Options{
		FetchLimit: e.fetchLimit,
		PageSize:   e.pageSize,
	})

	return &historyModel{
		env:    e,
		state:  state,
		search: search,
	}
}

// activate loads the history the first time the section is shown.
func (m *historyModel) activate() tea.Cmd {
	if m.loaded || m.state.Loading() {
		return nil
	}
	return m.cmdLoad()
}

func (m *historyModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loaded = true
		m.cursor = 0
		if msg.err != nil {
			m.env.logger.Warn().Err(msg.err).Str("func", "historyModel.update").Msg("history load failed")
		}
		return nil

	case copiedMsg:
		m.copying = false
		if msg.err != nil {
			m.env.logger.Warn().Err(msg.err).Str("func", "historyModel.update").Msg("clipboard write failed")
			m.env.notice.Set(models.NoticeDanger, app.MsgCopyFailed)
			return nil
		}
		m.env.notice.Set(models.NoticeSuccess, app.MsgLinkCopied)
		return nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *historyModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Term() {
		m.state.Search(m.search.Value())
		m.cursor = 0
	}
	return cmd
}

func (m *historyModel) updateTable(msg tea.KeyMsg) tea.Cmd {
	rows := len(m.state.Page().Rows)

	switch {
	case key.Matches(msg, keys.search):
		m.searching = true
		m.detail = false
		return m.search.Focus()
	case key.Matches(msg, keys.clearSearch):
		m.search.Reset()
		m.state.ClearSearch()
		m.cursor = 0
	case key.Matches(msg, keys.reload):
		if !m.state.Loading() {
			return m.cmdLoad()
		}
	case key.Matches(msg, keys.left):
		m.state.Prev()
		m.cursor = 0
	case key.Matches(msg, keys.right):
		m.state.Next()
		m.cursor = 0
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		m.detail = !m.detail && rows > 0
	case key.Matches(msg, keys.esc):
		m.detail = false
	case key.Matches(msg, keys.copy):
		return m.cmdCopy()
	}
	return nil
}

func (m *historyModel) selected() (models.ProfileCheckRecord, bool) {
	rows := m.state.Page().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return models.ProfileCheckRecord{}, false
	}
	return rows[m.cursor], true
}

func (m *historyModel) view() string {
	if m.state.Loading() {
		return "Cargando perfiles..."
	}

	page := m.state.Page()

	var b strings.Builder
	b.WriteString("Buscar │ [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	if len(page.Rows) == 0 {
		b.WriteString(helpStyle.Render("Sin registros."))
		return b.String()
	}

	b.WriteString(renderHistoryTable(page.Rows, m.cursor))
	if page.ShowPagination {
		fmt.Fprintf(&b, "\n← Página %d de %d →  (%d registros)", page.Page, page.TotalPages, page.Total)
	}

	if rec, ok := m.selected(); ok && m.detail {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("@" + rec.Username))
		b.WriteString("\n")
		b.WriteString(renderReasons(rec.Reasons))
	}
	return b.String()
}

func (m *historyModel) help() string {
	if m.searching {
		return "enter/esc: terminar búsqueda"
	}
	return "/: buscar │ x: limpiar │ ←/→: página │ enter: razones │ c: copiar enlace │ r: recargar"
}

func (m *historyModel) cmdLoad() tea.Cmd {
	ctx := m.env.ctx
	state := m.state
	return func() tea.Msg {
		return historyLoadedMsg{err: state.Load(ctx)}
	}
}

// cmdCopy puts the first map link of the selected record on the clipboard.
func (m *historyModel) cmdCopy() tea.Cmd {
	if m.copying {
		return nil
	}

	rec, ok := m.selected()
	link := firstMapLink(rec.Reasons)
	if !ok || link == "" {
		m.env.notice.Set(models.NoticeWarning, app.MsgNoLinkToCopy)
		return nil
	}

	m.copying = true
	copyFn := m.env.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(link)}
	}
}

func firstMapLink(reasons []models.Reason) string {
	for _, r := range reasons {
		if r.MapLink != nil && *r.MapLink != "" {
			return *r.MapLink
		}
	}
	return ""
}

func renderHistoryTable(rows []models.ProfileCheckRecord, selected int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Usuario", "Clasificación", "Confianza", "Fecha chequeo", "Razones").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return cellStyle.Inherit(selectedStyle)
			default:
				return cellStyle
			}
		})

	for _, r := range rows {
		t.Row(
			"@"+fitText(r.Username, 28),
			fitText(r.Classification.Label, 20),
			formatScore(r.Classification.Score),
			formatCheckedAt(r.CheckedAt),
			strconv.Itoa(len(r.Reasons)),
		)
	}
	return t.Render()
}
