package tui

import (
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	sidebarStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			PaddingRight(1).
			MarginRight(2)

	sensitiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	notSensitiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	linkStyle         = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12"))
)

var noticeStyles = map[models.NoticeKind]lipgloss.Style{
	models.NoticeDanger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	models.NoticeWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	models.NoticeSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	models.NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}
