package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/notice"
	"github.com/MKhiriev/go-profile-guard/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: salir"))

	return b.String()
}

// renderNotice returns the banner line for state, or "" when it is hidden.
func renderNotice(state notice.State) string {
	if !state.Visible() {
		return ""
	}
	style, ok := noticeStyles[state.Kind]
	if !ok {
		style = noticeStyles[models.NoticeInfo]
	}
	return style.Render(state.Message)
}

func renderClassification(c models.Classification) string {
	style := notSensitiveStyle
	if !strings.EqualFold(c.Label, models.DefaultClassificationLabel) {
		style = sensitiveStyle
	}
	return fmt.Sprintf("%s  (confianza: %s)", style.Render(c.Label), formatScore(c.Score))
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f %%", score*100)
}

func formatCheckedAt(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func renderReasons(reasons []models.Reason) string {
	if len(reasons) == 0 {
		return helpStyle.Render("Sin razones registradas.")
	}

	var b strings.Builder
	for i, r := range reasons {
		fmt.Fprintf(&b, "%d. %s", i+1, r.Detail)
		if link := valueOrDash(r.MapLink); link != "-" {
			b.WriteString("\n   ")
			b.WriteString(linkStyle.Render(link))
		}
		if i < len(reasons)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText shortens v to at most max runes.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
