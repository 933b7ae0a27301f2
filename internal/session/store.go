// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/MKhiriev/go-profile-guard/models"
)

// State is the authentication state of a [Store].
type State int

const (
	// StateUninitialized means the store has not yet resolved whether a
	// user is signed in. Protected pages must not render in this state.
	StateUninitialized State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// Listener receives the store state and the current session (zero when
// not authenticated).
type Listener func(State, models.Session)

// Store owns the single session of the client. State changes are pushed to
// subscribers in the order they happen; subscribers run outside the store's
// state lock and may read it, but must not change it.
type Store struct {
	identity adapter.IdentityAdapter
	mirror   store.LocalSessionRepository
	clock    clock.Clock
	logger   *logger.Logger

	mu      sync.Mutex
	state   State
	session models.Session
	subs    map[int]Listener
	nextSub int

	// notifyMu serializes deliveries so listeners observe changes in order.
	notifyMu sync.Mutex

	// applyMu pairs every mirror write with the transition it belongs to.
	// A change computed from an older session is checked against the live
	// one while it is held.
	applyMu sync.Mutex
}

// NewStore builds an uninitialized store. Call Start to resolve the state.
func NewStore(identity adapter.IdentityAdapter, mirror store.LocalSessionRepository, c clock.Clock, log *logger.Logger) *Store {
	return &Store{
		identity: identity,
		mirror:   mirror,
		clock:    c,
		logger:   log,
		subs:     make(map[int]Listener),
	}
}

// Start restores the mirrored session, refreshing it once when the ID token
// has expired and validating it with the identity provider. The store always
// leaves the uninitialized state: a missing, unreadable or rejected mirror
// resolves to anonymous. When the provider cannot be reached the restored
// session is kept.
func (s *Store) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	restored, err := s.mirror.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			log.Err(err).Str("func", "Store.Start").Msg("failed to read local session")
		}
		s.applyMu.Lock()
		s.transition(StateAnonymous, models.Session{})
		s.applyMu.Unlock()
		return nil
	}

	if restored.Expired(s.clock.Now()) {
		refreshed, err := s.refreshTokens(ctx, restored)
		if err != nil {
			log.Info().Err(err).Str("func", "Store.Start").Msg("restored session could not be refreshed")
			s.discard(ctx)
			return nil
		}
		restored = refreshed
	}

	profile, err := s.identity.Lookup(ctx, restored.AccessToken)
	switch {
	case err == nil:
		restored = mergeProfile(restored, profile)
	case errors.Is(err, adapter.ErrTokenExpired), errors.Is(err, adapter.ErrUserDisabled):
		log.Info().Err(err).Str("func", "Store.Start").Msg("restored session was rejected")
		s.discard(ctx)
		return nil
	default:
		log.Warn().Err(err).Str("func", "Store.Start").Msg("could not validate restored session, keeping it")
	}

	s.establish(ctx, restored)
	return nil
}

// SignIn authenticates with e-mail and password.
func (s *Store) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)

	session, err := s.identity.SignIn(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}

	s.establish(ctx, session)
	return session, nil
}

// SignUp creates the account, sets its display name and signs it in.
// A failed display-name update does not undo the registration.
func (s *Store) SignUp(ctx context.Context, reg models.Registration) (models.Session, error) {
	session, err := s.identity.SignUp(ctx, models.Credentials{
		Email:    strings.TrimSpace(reg.Email),
		Password: reg.Password,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("sign up: %w", err)
	}

	if name := strings.TrimSpace(reg.DisplayName); name != "" {
		profile, err := s.identity.UpdateProfile(ctx, session.AccessToken, name)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "Store.SignUp").Msg("failed to set display name")
			session.DisplayName = name
		} else {
			session = mergeProfile(session, profile)
		}
	}

	s.establish(ctx, session)
	return session, nil
}

// SignOut clears the session and its local mirror. Signing out while
// anonymous is a no-op apart from clearing the mirror.
func (s *Store) SignOut(ctx context.Context) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	err := s.mirror.Clear(ctx)
	s.transition(StateAnonymous, models.Session{})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// SetUser replaces the profile fields of the current session, keeping its
// tokens. It is ignored unless the store is authenticated.
func (s *Store) SetUser(ctx context.Context, profile models.Session) {
	s.update(ctx, func(state State, live models.Session) (models.Session, bool) {
		if state != StateAuthenticated {
			return models.Session{}, false
		}
		return mergeProfile(live, profile), true
	})
}

// Refresh exchanges the refresh token for fresh tokens. A rejected refresh
// token signs the user out. When the session was signed out or replaced
// while the exchange was in flight the result is dropped and
// [ErrSessionChanged] is returned.
func (s *Store) Refresh(ctx context.Context) error {
	current, ok := s.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	refreshed, err := s.refreshTokens(ctx, current)
	if err != nil {
		if errors.Is(err, adapter.ErrTokenExpired) || errors.Is(err, ErrNoRefreshToken) {
			s.discardIf(ctx, func(state State, live models.Session) bool {
				return sameSession(state, live, current)
			})
		}
		return fmt.Errorf("refresh session: %w", err)
	}

	applied := s.update(ctx, func(state State, live models.Session) (models.Session, bool) {
		if !sameSession(state, live, current) {
			return models.Session{}, false
		}
		return withTokens(live, refreshed), true
	})
	if !applied {
		return ErrSessionChanged
	}
	return nil
}

// Current returns the session and whether a user is signed in.
func (s *Store) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.state == StateAuthenticated
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn. It is called at once with the current state and
// again after every change, until the returned function is called.
// Listeners must not change the store's state from inside the callback.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.notifyMu.Lock()
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	state, session := s.state, s.session
	s.mu.Unlock()

	fn(state, session)
	s.notifyMu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) refreshTokens(ctx context.Context, current models.Session) (models.Session, error) {
	if current.RefreshToken == "" {
		return models.Session{}, ErrNoRefreshToken
	}

	tokens, err := s.identity.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return models.Session{}, err
	}

	return withTokens(current, tokens), nil
}

// establish mirrors session locally and makes it current. A failed mirror
// write only costs the restore on the next start.
func (s *Store) establish(ctx context.Context, session models.Session) {
	s.update(ctx, func(State, models.Session) (models.Session, bool) {
		return session, true
	})
}

// update runs change against the live state and session and, unless change
// declines, mirrors and installs the session it returns.
func (s *Store) update(ctx context.Context, change func(State, models.Session) (models.Session, bool)) bool {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	s.mu.Lock()
	next, ok := change(s.state, s.session)
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := s.mirror.Save(ctx, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.update").Msg("failed to mirror session")
	}
	s.transition(StateAuthenticated, next)
	return true
}

func (s *Store) discard(ctx context.Context) {
	s.discardIf(ctx, func(State, models.Session) bool { return true })
}

func (s *Store) discardIf(ctx context.Context, keep func(State, models.Session) bool) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	s.mu.Lock()
	ok := keep(s.state, s.session)
	s.mu.Unlock()
	if !ok {
		return
	}

	if err := s.mirror.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.discard").Msg("failed to clear local session")
	}
	s.transition(StateAnonymous, models.Session{})
}

func (s *Store) transition(state State, session models.Session) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	changed := s.state != state || s.session != session
	s.state = state
	s.session = session
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	s.logger.Debug().Str("state", state.String()).Str("uid", session.UID).Msg("session state changed")
	for _, fn := range listeners {
		fn(state, session)
	}
}

// sameSession reports whether live is still the signed-in session that
// current was read from.
func sameSession(state State, live, current models.Session) bool {
	return state == StateAuthenticated &&
		live.UID == current.UID &&
		live.RefreshToken == current.RefreshToken
}

// withTokens copies the tokens and expiry of tokens onto base.
func withTokens(base, tokens models.Session) models.Session {
	base.AccessToken = tokens.AccessToken
	base.RefreshToken = tokens.RefreshToken
	base.ExpiresAt = tokens.ExpiresAt
	if base.UID == "" {
		base.UID = tokens.UID
	}
	return base
}

// mergeProfile copies the non-empty profile fields of profile onto base.
func mergeProfile(base, profile models.Session) models.Session {
	if profile.UID != "" {
		base.UID = profile.UID
	}
	if profile.Email != "" {
		base.Email = profile.Email
	}
	if profile.DisplayName != "" {
		base.DisplayName = profile.DisplayName
	}
	if profile.PhotoURL != "" {
		base.PhotoURL = profile.PhotoURL
	}
	return base
}
