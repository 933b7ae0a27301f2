// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
)

// Task is a cancellable one-shot scheduled callback. At most one callback
// is pending at any time: scheduling again supersedes the previous one, and
// a superseded or cancelled callback never runs, even if its timer had
// already fired and was waiting for the lock.
//
// A closed Task ignores further Schedule calls.
type Task struct {
	clock clock.Clock

	mu     sync.Mutex
	gen    uint64
	timer  clock.Timer
	closed bool
}

// NewTask returns an idle Task driven by c.
func NewTask(c clock.Clock) *Task {
	return &Task{clock: c}
}

// Schedule arranges for f to run once after d, replacing any pending
// callback.
func (t *Task) Schedule(d time.Duration, f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.stopLocked()

	t.gen++
	gen := t.gen
	t.timer = t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		if t.closed || t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()

		f()
	})
}

// Cancel drops the pending callback, if any, and reports whether one was
// pending.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending := t.timer != nil
	t.stopLocked()
	t.gen++
	return pending
}

// Pending reports whether a callback is scheduled and has not run yet.
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Close cancels the pending callback and makes the Task inert.
func (t *Task) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.gen++
	t.closed = true
}

func (t *Task) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
