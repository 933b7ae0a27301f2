// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end: a Bubble Tea program
// with a public landing page, login and registration, and the protected
// dashboard with the consultas, verificar perfil and historial sections.
//
// Long-running calls run as [tea.Cmd]s and report back with messages.
// Timer-driven state (the notice banner, the sidebar, the session) lives
// outside the models; its owners wake the program up through coalescing
// signals and the models read the new state when rendering.
package tui

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/notice"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/internal/sidebar"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of the TUI. Clock and Copy default to the
// real clock and the system clipboard.
type Deps struct {
	Services  *service.ClientServices
	Sessions  *session.Store
	Config    *config.StructuredConfig
	BuildInfo models.AppBuildInfo
	Clock     clock.Clock
	Copy      func(string) error
	Logger    *logger.Logger
}

type TUI struct {
	deps Deps
}

func New(deps Deps) *TUI {
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	return &TUI{deps: deps}
}

// Run blocks until the user quits or ctx is cancelled. Every timer the
// session of the program created is cancelled before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := t.deps.Logger
	cfg := t.deps.Config
	sig := newSignals()

	n := notice.New(t.deps.Clock, cfg.App.NoticeDuration, notice.WithOnChange(func(notice.State) {
		sig.notice.notify()
	}))
	defer n.Close()

	sb := sidebar.New(ctx, t.deps.Services.PreferencesService, t.deps.Clock, sidebar.Options{
		PersistDelay: cfg.UI.SidebarPersistDelay,
		AutoCollapse: cfg.UI.SidebarAutoCollapse,
		OnChange:     func(bool) { sig.sidebar.notify() },
	}, log)
	defer sb.Close()

	expired := &atomic.Bool{}
	monitor := session.NewInactivityMonitor(t.deps.Clock, cfg.App.InactivityTimeout, func() {
		expired.Store(true)
		log.Info().Str("func", "TUI.Run").Msg("session expired after inactivity")
		if err := t.deps.Services.AuthService.SignOut(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "TUI.Run").Msg("failed to sign out after inactivity")
		}
	})
	defer monitor.Close()
	unbind := monitor.Bind(t.deps.Sessions)
	defer unbind()

	unsubscribe := t.deps.Sessions.Subscribe(func(session.State, models.Session) {
		sig.session.notify()
	})
	defer unsubscribe()

	e := &env{
		ctx:        log.WithContext(ctx),
		services:   t.deps.Services,
		sessions:   t.deps.Sessions,
		notice:     n,
		sidebar:    sb,
		activity:   monitor,
		expired:    expired,
		copy:       t.deps.Copy,
		buildInfo:  t.deps.BuildInfo,
		fetchLimit: cfg.Storage.Profiles.FetchLimit,
		pageSize:   cfg.UI.PageSize,
		logger:     log,
	}

	program := tea.NewProgram(newRootModel(e, sig),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, tea.ErrInterrupted):
		return nil
	default:
		log.Err(err).Str("func", "TUI.Run").Msg("terminal program stopped with error")
		return err
	}
}
