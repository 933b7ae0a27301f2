package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/mock"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transition struct {
	state State
	uid   string
}

// newTestStore: хелпер: Store на моках и фейковых часах, с записью переходов
func newTestStore(t *testing.T, ctrl *gomock.Controller) (*Store, *mock.MockIdentityAdapter, *mock.MockLocalSessionRepository, *clock.Fake, *[]transition) {
	t.Helper()
	identity := mock.NewMockIdentityAdapter(ctrl)
	mirror := mock.NewMockLocalSessionRepository(ctrl)
	fake := clock.NewFake(epoch)

	s := NewStore(identity, mirror, fake, logger.Nop())

	var seen []transition
	unsubscribe := s.Subscribe(func(state State, session models.Session) {
		seen = append(seen, transition{state, session.UID})
	})
	t.Cleanup(unsubscribe)

	return s, identity, mirror, fake, &seen
}

func liveSession() models.Session {
	return models.Session{
		UID:          "uid-1",
		Email:        "ana@example.com",
		AccessToken:  "id-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    epoch.Add(time.Hour),
	}
}

// ── Start ────────────────────────────────────────────────────────────────────

func TestStore_Start_NoMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mirror, _, seen := newTestStore(t, ctrl)
	mirror.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Equal(t, []transition{{StateUninitialized, ""}, {StateAnonymous, ""}}, *seen)
}

func TestStore_Start_RestoresValidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, seen := newTestStore(t, ctrl)
	restored := liveSession()
	want := restored
	want.DisplayName = "Ana"

	gomock.InOrder(
		mirror.EXPECT().Load(gomock.Any()).Return(restored, nil),
		identity.EXPECT().Lookup(gomock.Any(), "id-token").Return(models.Session{UID: "uid-1", DisplayName: "Ana"}, nil),
		mirror.EXPECT().Save(gomock.Any(), want).Return(nil),
	)

	require.NoError(t, s.Start(context.Background()))

	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, []transition{{StateUninitialized, ""}, {StateAuthenticated, "uid-1"}}, *seen)
}

func TestStore_Start_RefreshesExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	restored := liveSession()
	restored.ExpiresAt = epoch.Add(-time.Minute)

	fresh := models.Session{UID: "uid-1", AccessToken: "new-token", RefreshToken: "new-refresh", ExpiresAt: epoch.Add(time.Hour)}

	gomock.InOrder(
		mirror.EXPECT().Load(gomock.Any()).Return(restored, nil),
		identity.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(fresh, nil),
		identity.EXPECT().Lookup(gomock.Any(), "new-token").Return(models.Session{}, nil),
		mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, s.Start(context.Background()))

	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "new-token", got.AccessToken)
	assert.Equal(t, "new-refresh", got.RefreshToken)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestStore_Start_RejectedRefreshDiscardsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	restored := liveSession()
	restored.ExpiresAt = epoch

	gomock.InOrder(
		mirror.EXPECT().Load(gomock.Any()).Return(restored, nil),
		identity.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(models.Session{}, adapter.ErrTokenExpired),
		mirror.EXPECT().Clear(gomock.Any()).Return(nil),
	)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestStore_Start_RevokedTokenDiscardsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)

	gomock.InOrder(
		mirror.EXPECT().Load(gomock.Any()).Return(liveSession(), nil),
		identity.EXPECT().Lookup(gomock.Any(), "id-token").
			Return(models.Session{}, &adapter.IdentityError{StatusCode: 400, Code: "USER_DISABLED"}),
		mirror.EXPECT().Clear(gomock.Any()).Return(nil),
	)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestStore_Start_UnreachableProviderKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)

	gomock.InOrder(
		mirror.EXPECT().Load(gomock.Any()).Return(liveSession(), nil),
		identity.EXPECT().Lookup(gomock.Any(), "id-token").Return(models.Session{}, adapter.ErrUnreachable),
		mirror.EXPECT().Save(gomock.Any(), liveSession()).Return(nil),
	)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateAuthenticated, s.State())
}

// ── SignIn / SignUp / SignOut ────────────────────────────────────────────────

func TestStore_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, seen := newTestStore(t, ctrl)
	ctx := context.Background()
	session := liveSession()

	gomock.InOrder(
		identity.EXPECT().SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"}).Return(session, nil),
		mirror.EXPECT().Save(ctx, session).Return(nil),
	)

	got, err := s.SignIn(ctx, models.Credentials{Email: " ana@example.com ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, transition{StateAuthenticated, "uid-1"}, (*seen)[len(*seen)-1])
}

func TestStore_SignIn_FailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, _, _, seen := newTestStore(t, ctrl)
	identity.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.Session{}, adapter.ErrInvalidCredentials)

	_, err := s.SignIn(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, adapter.ErrInvalidCredentials)
	assert.Equal(t, StateUninitialized, s.State())
	assert.Len(t, *seen, 1)
}

func TestStore_SignIn_MirrorFailureStillAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	identity.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := s.SignIn(context.Background(), models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, s.State())
}

func TestStore_SignUp_SetsDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	reg := models.Registration{DisplayName: " Ana ", Email: "ana@example.com", Password: "secreto1", Confirm: "secreto1"}

	gomock.InOrder(
		identity.EXPECT().SignUp(gomock.Any(), models.Credentials{Email: "ana@example.com", Password: "secreto1"}).
			Return(liveSession(), nil),
		identity.EXPECT().UpdateProfile(gomock.Any(), "id-token", "Ana").
			Return(models.Session{DisplayName: "Ana"}, nil),
		mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	got, err := s.SignUp(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.DisplayName)
	assert.Equal(t, "id-token", got.AccessToken)
}

func TestStore_SignUp_ProfileUpdateFailureKeepsAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	reg := models.Registration{DisplayName: "Ana", Email: "ana@example.com", Password: "secreto1", Confirm: "secreto1"}

	identity.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(liveSession(), nil)
	identity.EXPECT().UpdateProfile(gomock.Any(), "id-token", "Ana").Return(models.Session{}, adapter.ErrIdentity)
	mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.SignUp(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.DisplayName)
	assert.Equal(t, StateAuthenticated, s.State())
}

func TestStore_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, seen := newTestStore(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	mirror.EXPECT().Clear(ctx).Return(nil)

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.SignOut(ctx))

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, []transition{
		{StateUninitialized, ""},
		{StateAuthenticated, "uid-1"},
		{StateAnonymous, ""},
	}, *seen)
}

// ── SetUser / Refresh ────────────────────────────────────────────────────────

func TestStore_SetUser_IgnoredWhenAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _, _, _ := newTestStore(t, ctrl)
	s.SetUser(context.Background(), models.Session{DisplayName: "Nadie"})

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStore_SetUser_KeepsTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	s.SetUser(ctx, models.Session{DisplayName: "Ana P.", AccessToken: "ignored"})

	got, _ := s.Current()
	assert.Equal(t, "Ana P.", got.DisplayName)
	assert.Equal(t, "id-token", got.AccessToken)
}

func TestStore_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	require.ErrorIs(t, s.Refresh(ctx), ErrNotAuthenticated)

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
	identity.EXPECT().Refresh(ctx, "refresh-token").
		Return(models.Session{AccessToken: "t2", RefreshToken: "r2", ExpiresAt: epoch.Add(2 * time.Hour)}, nil)

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.Refresh(ctx))

	got, _ := s.Current()
	assert.Equal(t, "t2", got.AccessToken)
	assert.Equal(t, "uid-1", got.UID)
}

func TestStore_Refresh_RevokedSignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	identity.EXPECT().Refresh(ctx, "refresh-token").Return(models.Session{}, adapter.ErrTokenExpired)
	mirror.EXPECT().Clear(ctx).Return(nil)

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Refresh(ctx), adapter.ErrTokenExpired)
	assert.Equal(t, StateAnonymous, s.State())
}

// Выход из сессии во время обмена токенами: результат обмена отбрасывается,
// зеркало не перезаписывается, состояние остаётся anonymous.
func TestStore_Refresh_SignOutInFlightWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, seen := newTestStore(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	mirror.EXPECT().Clear(ctx).Return(nil).Times(1)
	identity.EXPECT().Refresh(ctx, "refresh-token").
		DoAndReturn(func(ctx context.Context, _ string) (models.Session, error) {
			require.NoError(t, s.SignOut(ctx))
			return models.Session{AccessToken: "t2", RefreshToken: "r2", ExpiresAt: epoch.Add(2 * time.Hour)}, nil
		})

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Refresh(ctx), ErrSessionChanged)
	assert.Equal(t, StateAnonymous, s.State())
	assert.Equal(t, []transition{
		{StateUninitialized, ""},
		{StateAuthenticated, "uid-1"},
		{StateAnonymous, ""},
	}, *seen)
}

// Другой пользователь вошёл, пока шёл обмен: отказ старого refresh-токена
// не выкидывает новую сессию.
func TestStore_Refresh_RejectionAfterSessionSwitchKeepsNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	other := models.Session{UID: "uid-2", AccessToken: "b-token", RefreshToken: "b-refresh", ExpiresAt: epoch.Add(time.Hour)}

	gomock.InOrder(
		identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil),
		identity.EXPECT().SignIn(ctx, gomock.Any()).Return(other, nil),
	)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
	identity.EXPECT().Refresh(ctx, "refresh-token").
		DoAndReturn(func(ctx context.Context, _ string) (models.Session, error) {
			_, err := s.SignIn(ctx, models.Credentials{Email: "bea@example.com", Password: "pw"})
			require.NoError(t, err)
			return models.Session{}, adapter.ErrTokenExpired
		})

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Refresh(ctx), adapter.ErrTokenExpired)
	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "uid-2", got.UID)
}

// SetUser во время обмена токенами: новые токены ложатся поверх
// обновлённого профиля, а не старой копии.
func TestStore_Refresh_KeepsProfileSetInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, _, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, gomock.Any()).Return(liveSession(), nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)
	identity.EXPECT().Refresh(ctx, "refresh-token").
		DoAndReturn(func(ctx context.Context, _ string) (models.Session, error) {
			s.SetUser(ctx, models.Session{DisplayName: "Ana P."})
			return models.Session{AccessToken: "t2", RefreshToken: "r2", ExpiresAt: epoch.Add(2 * time.Hour)}, nil
		})

	_, err := s.SignIn(ctx, models.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.Refresh(ctx))

	got, _ := s.Current()
	assert.Equal(t, "Ana P.", got.DisplayName)
	assert.Equal(t, "t2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)
}

// ── Subscribe / Bind ─────────────────────────────────────────────────────────

func TestStore_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mirror, _, _ := newTestStore(t, ctrl)
	mirror.EXPECT().Clear(gomock.Any()).Return(nil)

	calls := 0
	unsubscribe := s.Subscribe(func(State, models.Session) { calls++ })
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, s.SignOut(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestInactivityMonitor_BindFollowsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, identity, mirror, fake, _ := newTestStore(t, ctrl)
	ctx := context.Background()

	logouts := 0
	m := NewInactivityMonitor(fake, 20*time.Minute, func() {
		logouts++
		_ = s.SignOut(ctx)
	})
	unbind := m.Bind(s)
	defer unbind()

	// До разрешения состояния таймер не запускается
	assert.False(t, m.Running())
	assert.Equal(t, 0, fake.Pending())

	mirror.EXPECT().Load(ctx).Return(liveSession(), nil)
	identity.EXPECT().Lookup(ctx, "id-token").Return(models.Session{}, nil)
	mirror.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	mirror.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, s.Start(ctx))
	assert.True(t, m.Running())

	fake.Advance(20 * time.Minute)
	assert.Equal(t, 1, logouts)
	assert.Equal(t, StateAnonymous, s.State())
	assert.False(t, m.Running())
	assert.Equal(t, 0, fake.Pending())
}
