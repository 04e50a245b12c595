package session

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by backends when no session has been persisted yet.
var ErrNotFound = errors.New("no stored session")

// Backend persists the session across process restarts.
// Writes are best-effort: the store does not fail a mutation because the
// backend could not be written.
type Backend interface {
	Save(s Session) error
	Load() (Session, error)
	Delete() error
}

// Store is the single source of truth for session state. It exclusively owns
// mutation; every other component reads snapshots or requests mutation through
// SetCredentials, SetUser and Logout.
type Store struct {
	mu      sync.Mutex
	session Session
	backend Backend
}

// NewStore creates a store rehydrated from the backend. A missing or
// unreadable persisted session yields an empty store, not an error.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	if backend == nil {
		return s
	}

	persisted, err := backend.Load()
	if err != nil {
		return s
	}

	// Re-derive the authenticated flag instead of trusting the blob: a
	// session without an access token is never authenticated.
	persisted.IsAuthenticated = persisted.AccessToken != ""
	s.session = persisted
	return s
}

// SetCredentials unconditionally overwrites both tokens and marks the session
// authenticated. Tokens are stored as opaque strings without validation.
func (s *Store) SetCredentials(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.AccessToken = accessToken
	s.session.RefreshToken = refreshToken
	s.session.IsAuthenticated = true
	s.persistLocked()
}

// SetUser overwrites the resolved identity independent of token state.
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.User = user
	s.persistLocked()
}

// Logout clears tokens, identity and the authenticated flag in one step. It is
// a pure local reset: callers needing server-side invalidation must do that
// before calling Logout. Safe to call on an already-empty store.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}
	if s.backend != nil {
		_ = s.backend.Delete()
	}
}

// Snapshot returns a copy of the current session. Safe from any goroutine; no
// blocking I/O.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.session
	if s.session.User != nil {
		user := *s.session.User
		snap.User = &user
	}
	return snap
}

// AccessToken returns the current access token, empty when logged out.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AccessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.RefreshToken
}

// User returns a copy of the resolved identity, or nil while the identity
// fetch has not completed. Tokens set with user still nil is a valid state.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return nil
	}
	user := *s.session.User
	return &user
}

// IsAuthenticated reports whether a login or refresh has populated tokens.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated
}

func (s *Store) persistLocked() {
	if s.backend == nil {
		return
	}
	// Best-effort: a failed write must not fail the mutation.
	_ = s.backend.Save(s.session)
}
