package tui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/mock"
	"github.com/MKhiriev/go-profile-guard/internal/notice"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/internal/sidebar"
	"github.com/MKhiriev/go-profile-guard/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type fakeSessions struct {
	state   session.State
	current models.Session
	err     error
}

func (f *fakeSessions) Start(context.Context) error { return f.err }
func (f *fakeSessions) State() session.State        { return f.state }
func (f *fakeSessions) Current() (models.Session, bool) {
	return f.current, f.state == session.StateAuthenticated
}

type recordedActivity struct {
	events []session.EventKind
}

func (r *recordedActivity) Activity(kind session.EventKind) {
	r.events = append(r.events, kind)
}

type testEnv struct {
	env      *env
	sessions *fakeSessions
	activity *recordedActivity
	clock    *clock.Fake
	copied   []string

	auth           *mock.MockAuthService
	classification *mock.MockClassificationService
	history        *mock.MockHistoryService
	prefs          *mock.MockPreferencesService
}

// newTestEnv собирает env на моках сервисов и фейковых часах; сайдбар стартует закрытым
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	te := &testEnv{
		sessions:       &fakeSessions{state: session.StateUninitialized},
		activity:       &recordedActivity{},
		clock:          clock.NewFake(epoch),
		auth:           mock.NewMockAuthService(ctrl),
		classification: mock.NewMockClassificationService(ctrl),
		history:        mock.NewMockHistoryService(ctrl),
		prefs:          mock.NewMockPreferencesService(ctrl),
	}
	te.prefs.EXPECT().SidebarOpen(gomock.Any()).Return(false)

	n := notice.New(te.clock, 0)
	t.Cleanup(n.Close)
	sb := sidebar.New(context.Background(), te.prefs, te.clock, sidebar.Options{}, logger.Nop())
	t.Cleanup(sb.Close)

	services := &service.ClientServices{
		AuthService:           te.auth,
		ClassificationService: te.classification,
		HistoryService:        te.history,
		PreferencesService:    te.prefs,
	}
	copyFn := func(s string) error {
		te.copied = append(te.copied, s)
		return nil
	}

	te.env = &env{
		ctx:      context.Background(),
		services: services,
		sessions: te.sessions,
		notice:   n,
		sidebar:  sb,
		activity: te.activity,
		expired:  &atomic.Bool{},
		copy:     copyFn,
		pageSize: 5,
		logger:   logger.Nop(),
	}
	return te
}

// collect выполняет cmd и разворачивает вложенные tea.BatchMsg
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m interface{ update(tea.Msg) tea.Cmd }, s string) {
	t.Helper()
	for _, r := range s {
		m.update(keyRunes(string(r)))
	}
}
