package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// signal is a coalescing wake-up channel. Any number of notify calls
// between two waits produce a single message, and notify never blocks the
// timer or store goroutine it is called from.
type signal chan struct{}

func newSignal() signal {
	return make(signal, 1)
}

func (s signal) notify() {
	select {
	case s <- struct{}{}:
	default:
	}
}

// wait returns a command that delivers msg on the next notify. The model
// re-arms it after every delivery.
func (s signal) wait(ctx context.Context, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

type signals struct {
	session signal
	notice  signal
	sidebar signal
}

func newSignals() *signals {
	return &signals{
		session: newSignal(),
		notice:  newSignal(),
		sidebar: newSignal(),
	}
}
