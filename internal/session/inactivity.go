package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/workers"
	"github.com/MKhiriev/go-profile-guard/models"
)

// DefaultInactivityTimeout is the idle period after which the user is
// signed out.
const DefaultInactivityTimeout = 20 * time.Minute

// EventKind is a kind of user input that counts as activity.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventKeyPress
	EventTouchStart
	EventScroll
)

// InactivityMonitor runs onExpire once after timeout elapses without
// activity. Only one expiry timer is ever pending; activity while the
// monitor is stopped is ignored.
type InactivityMonitor struct {
	task     *workers.Task
	timeout  time.Duration
	onExpire func()

	mu      sync.Mutex
	running bool
}

// NewInactivityMonitor returns a stopped monitor. A non-positive timeout
// falls back to [DefaultInactivityTimeout].
func NewInactivityMonitor(c clock.Clock, timeout time.Duration, onExpire func()) *InactivityMonitor {
	if timeout <= 0 {
		timeout = DefaultInactivityTimeout
	}
	return &InactivityMonitor{
		task:     workers.NewTask(c),
		timeout:  timeout,
		onExpire: onExpire,
	}
}

// Start arms the expiry timer. Calling Start on a running monitor restarts
// the countdown.
func (m *InactivityMonitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = true
	m.armLocked()
}

// Activity restarts the countdown of a running monitor.
func (m *InactivityMonitor) Activity(EventKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		m.armLocked()
	}
}

// Stop cancels the pending expiry.
func (m *InactivityMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = false
	m.task.Cancel()
}

// Running reports whether the monitor is counting down.
func (m *InactivityMonitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Bind starts the monitor whenever store becomes authenticated and stops it
// when the store becomes anonymous. The uninitialized state is ignored.
func (m *InactivityMonitor) Bind(store *Store) (unbind func()) {
	return store.Subscribe(func(state State, _ models.Session) {
		switch state {
		case StateAuthenticated:
			if !m.Running() {
				m.Start()
			}
		case StateAnonymous:
			m.Stop()
		}
	})
}

// Close stops the monitor for good.
func (m *InactivityMonitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = false
	m.task.Close()
}

func (m *InactivityMonitor) armLocked() {
	m.task.Schedule(m.timeout, m.expire)
}

func (m *InactivityMonitor) expire() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	if m.onExpire != nil {
		m.onExpire()
	}
}
