// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sidebar holds the open/closed state of the navigation panel.
//
// The state is persisted a fixed delay after its last change, so a burst of
// toggles results in one write. Opening the panel also schedules an
// automatic collapse. Both timers are [workers.Task]s owned by the Sidebar
// and are cancelled by Close.
package sidebar

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/workers"
)

const (
	DefaultPersistDelay = 4 * time.Second
	DefaultAutoCollapse = 4 * time.Second
)

// Preferences is where the state is loaded from and persisted to.
type Preferences interface {
	SidebarOpen(ctx context.Context) bool
	SetSidebarOpen(ctx context.Context, open bool) error
}

// Options tunes a Sidebar. Zero durations fall back to the defaults.
type Options struct {
	PersistDelay time.Duration
	AutoCollapse time.Duration

	// OnChange is called after every state change, including the automatic
	// collapse. It runs without the Sidebar's lock held.
	OnChange func(open bool)
}

type Sidebar struct {
	prefs    Preferences
	persist  *workers.Task
	collapse *workers.Task
	opts     Options
	logger   *logger.Logger

	mu     sync.Mutex
	open   bool
	closed bool
}

// New loads the persisted state. A sidebar that starts open schedules its
// automatic collapse right away.
func New(ctx context.Context, prefs Preferences, c clock.Clock, opts Options, log *logger.Logger) *Sidebar {
	if opts.PersistDelay <= 0 {
		opts.PersistDelay = DefaultPersistDelay
	}
	if opts.AutoCollapse <= 0 {
		opts.AutoCollapse = DefaultAutoCollapse
	}

	s := &Sidebar{
		prefs:    prefs,
		persist:  workers.NewTask(c),
		collapse: workers.NewTask(c),
		opts:     opts,
		logger:   log,
		open:     prefs.SidebarOpen(ctx),
	}
	if s.open {
		s.collapse.Schedule(opts.AutoCollapse, s.autoCollapse)
	}
	return s
}

// IsOpen reports the current state.
func (s *Sidebar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Toggle flips the state and returns the new one.
func (s *Sidebar) Toggle() bool {
	s.mu.Lock()
	open := !s.open
	s.mu.Unlock()

	s.Set(open)
	return open
}

// Set changes the state. Setting the current state again still restarts
// both timers.
func (s *Sidebar) Set(open bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.open = open
	s.mu.Unlock()

	s.persist.Schedule(s.opts.PersistDelay, func() { s.save(open) })
	if open {
		s.collapse.Schedule(s.opts.AutoCollapse, s.autoCollapse)
	} else {
		s.collapse.Cancel()
	}

	s.notify(open)
}

// Close cancels both timers. A change not yet persisted is dropped.
func (s *Sidebar) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.persist.Close()
	s.collapse.Close()
}

func (s *Sidebar) autoCollapse() {
	s.Set(false)
}

func (s *Sidebar) save(open bool) {
	if err := s.prefs.SetSidebarOpen(context.Background(), open); err != nil {
		s.logger.Warn().Err(err).Bool("open", open).Str("func", "Sidebar.save").Msg("failed to persist sidebar state")
	}
}

func (s *Sidebar) notify(open bool) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(open)
	}
}
