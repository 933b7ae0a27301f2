// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notice implements the transient message banner shared by every
// page: a message that clears itself a fixed time after it was last set.
package notice

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/security"
	"github.com/MKhiriev/go-profile-guard/internal/workers"
	"github.com/MKhiriev/go-profile-guard/models"
)

// DefaultDuration is how long a notice stays visible when no other duration
// is configured.
const DefaultDuration = 8000 * time.Millisecond

// State is a snapshot of a notice. The zero State is hidden.
type State struct {
	Kind    models.NoticeKind
	Message string
}

// Visible reports whether the notice has a message to show.
func (s State) Visible() bool {
	return s.Message != ""
}

// Notice holds an optional message that clears itself Duration after the
// most recent Set. Every Set, including one that repeats the current
// message, restarts the countdown. It is safe for concurrent use.
type Notice struct {
	duration time.Duration
	task     *workers.Task

	mu       sync.Mutex
	gen      uint64
	state    State
	onChange func(State)
}

// Option customizes a Notice.
type Option func(*Notice)

// WithOnChange registers fn to be called after every visible change,
// including the automatic clear. fn runs outside the Notice's lock and may
// call back into it.
func WithOnChange(fn func(State)) Option {
	return func(n *Notice) {
		n.onChange = fn
	}
}

// New returns a hidden Notice. A non-positive duration selects
// DefaultDuration.
func New(c clock.Clock, duration time.Duration, opts ...Option) *Notice {
	if duration <= 0 {
		duration = DefaultDuration
	}

	n := &Notice{
		duration: duration,
		task:     workers.NewTask(c),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Set shows msg with the given kind and restarts the countdown. The message
// is reduced to plain text first; if nothing remains, Set behaves like
// Clear.
func (n *Notice) Set(kind models.NoticeKind, msg string) {
	msg = security.PlainText(msg)
	if strings.TrimSpace(msg) == "" {
		n.Clear()
		return
	}

	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.state = State{Kind: kind, Message: msg}
	n.task.Schedule(n.duration, func() { n.expire(gen) })
	state := n.state
	n.mu.Unlock()

	n.notify(state)
}

// Clear hides the notice immediately and cancels the pending countdown.
func (n *Notice) Clear() {
	n.task.Cancel()

	n.mu.Lock()
	n.gen++
	changed := n.state.Visible()
	n.state = State{}
	n.mu.Unlock()

	if changed {
		n.notify(State{})
	}
}

// Current returns the notice as it is now.
func (n *Notice) Current() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Close cancels the countdown and detaches the change callback. The notice
// keeps its last state but never changes again on its own.
func (n *Notice) Close() {
	n.task.Close()

	n.mu.Lock()
	n.onChange = nil
	n.mu.Unlock()
}

func (n *Notice) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.gen {
		n.mu.Unlock()
		return
	}
	n.state = State{}
	n.mu.Unlock()

	n.notify(State{})
}

func (n *Notice) notify(state State) {
	n.mu.Lock()
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}
