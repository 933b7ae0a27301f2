package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/history"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type historyOptions struct {
	Search     string
	Page       int
	PageSize   int
	FetchLimit int
}

// printNotifier writes notices as single lines. The CLI has no banner to
// clear, so Clear does nothing.
type printNotifier struct {
	w io.Writer
}

func (n printNotifier) Set(kind models.NoticeKind, msg string) {
	fmt.Fprintf(n.w, "[%s] %s\n", kind, msg)
}

func (printNotifier) Clear() {}

func requireSession(ctx context.Context, stderr io.Writer, gate sessionGate) error {
	if err := gate.Start(ctx); err != nil {
		return err
	}
	if gate.State() != session.StateAuthenticated {
		fmt.Fprintln(stderr, app.MsgNotSignedIn)
		return errReported
	}
	return nil
}

// report prints the user-facing message for err and marks it as reported.
func report(stderr io.Writer, err error) error {
	_, msg := service.UserMessage(err)
	fmt.Fprintln(stderr, msg)
	return errors.Join(errReported, err)
}

func runHistory(ctx context.Context, stdout, stderr io.Writer, gate sessionGate, source history.Source, opts historyOptions) error {
	if err := requireSession(ctx, stderr, gate); err != nil {
		return err
	}

	view := history.NewView(source, printNotifier{w: stderr}, history.Options{
		FetchLimit: opts.FetchLimit,
		PageSize:   opts.PageSize,
	})
	if err := view.Load(ctx); err != nil {
		return errors.Join(errReported, err)
	}
	if opts.Search != "" {
		view.Search(opts.Search)
	}
	view.GoTo(opts.Page)

	page := view.Page()
	if len(page.Rows) == 0 {
		return nil
	}

	fmt.Fprintln(stdout, historyTable(page.Rows))
	fmt.Fprintf(stdout, "Página %d de %d (%d registros)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func runAnalyze(ctx context.Context, stdout, stderr io.Writer, gate sessionGate, svc service.ClassificationService, text string) error {
	if err := requireSession(ctx, stderr, gate); err != nil {
		return err
	}

	res, err := svc.AnalyzeText(ctx, text)
	if err != nil {
		return report(stderr, err)
	}
	fmt.Fprintf(stdout, "%s (score: %s)\n", res.Label, formatScore(res.Score))
	return nil
}

func runVerifyProfile(ctx context.Context, stdout, stderr io.Writer, gate sessionGate, svc service.ClassificationService, username string) error {
	if err := requireSession(ctx, stderr, gate); err != nil {
		return err
	}

	res, err := svc.VerifyProfile(ctx, username)
	if err != nil {
		return report(stderr, err)
	}

	fmt.Fprintf(stdout, "%s (score: %s)\n", res.Classification.Label, formatScore(res.Classification.Score))
	for i, r := range res.Reasons {
		fmt.Fprintf(stdout, "%d. %s\n", i+1, r.Detail)
		if r.MapLink != nil {
			fmt.Fprintf(stdout, "   %s\n", *r.MapLink)
		}
	}
	return nil
}

func runLogout(ctx context.Context, stdout, stderr io.Writer, auth service.AuthService) error {
	if err := auth.SignOut(ctx); err != nil {
		return report(stderr, err)
	}
	fmt.Fprintln(stdout, app.MsgSignedOut)
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func historyTable(rows []models.ProfileCheckRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Usuario", "Clasificación", "Score", "Fecha chequeo", "Razones")

	for _, r := range rows {
		checked := "-"
		if r.CheckedAt != nil {
			checked = r.CheckedAt.Local().Format("2006-01-02 15:04")
		}
		t.Row("@"+r.Username, r.Classification.Label, formatScore(r.Classification.Score), checked, strconv.Itoa(len(r.Reasons)))
	}
	return t.Render()
}
