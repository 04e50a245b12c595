package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBackend is an in-memory persistence backend for testing.
type mockBackend struct {
	saved   *Session
	saves   int
	deletes int
	failAll bool
}

func (m *mockBackend) Save(s Session) error {
	if m.failAll {
		return errors.New("backend unavailable")
	}
	m.saves++
	copied := s
	m.saved = &copied
	return nil
}

func (m *mockBackend) Load() (Session, error) {
	if m.failAll || m.saved == nil {
		return Session{}, ErrNotFound
	}
	return *m.saved, nil
}

func (m *mockBackend) Delete() error {
	m.deletes++
	m.saved = nil
	return nil
}

func TestStoreSetCredentialsRoundTrip(t *testing.T) {
	store := NewStore(nil)
	store.SetCredentials("T1", "R1")

	snap := store.Snapshot()
	assert.Equal(t, "T1", snap.AccessToken)
	assert.Equal(t, "R1", snap.RefreshToken)
	assert.True(t, snap.IsAuthenticated)
}

func TestStorePartialSessionIsValid(t *testing.T) {
	store := NewStore(nil)
	store.SetCredentials("T1", "R1")

	// Tokens set, identity not yet resolved: consumers must tolerate this.
	assert.True(t, store.IsAuthenticated())
	assert.Nil(t, store.User())

	store.SetUser(&User{ID: "u1", Email: "d@x.com", FullName: "Dele Ode", Role: RoleOwner})
	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, RoleOwner, user.Role)
}

func TestStoreLogoutClearsEverything(t *testing.T) {
	backend := &mockBackend{}
	store := NewStore(backend)
	store.SetCredentials("T1", "R1")
	store.SetUser(&User{ID: "u1", Role: RoleDriver})

	store.Logout()

	snap := store.Snapshot()
	assert.Empty(t, snap.AccessToken)
	assert.Empty(t, snap.RefreshToken)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, backend.saved)
}

func TestStoreLogoutIsIdempotent(t *testing.T) {
	backend := &mockBackend{}
	store := NewStore(backend)
	store.SetCredentials("T1", "R1")

	store.Logout()
	first := store.Snapshot()
	store.Logout()
	second := store.Snapshot()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, backend.deletes)
}

func TestStorePersistsEveryMutation(t *testing.T) {
	backend := &mockBackend{}
	store := NewStore(backend)

	store.SetCredentials("T1", "R1")
	store.SetUser(&User{ID: "u1"})
	store.SetCredentials("T2", "R2")

	assert.Equal(t, 3, backend.saves)
	require.NotNil(t, backend.saved)
	assert.Equal(t, "T2", backend.saved.AccessToken)
	require.NotNil(t, backend.saved.User)
}

func TestStoreRehydratesFromBackend(t *testing.T) {
	backend := &mockBackend{}
	first := NewStore(backend)
	first.SetCredentials("T1", "R1")
	first.SetUser(&User{ID: "u1", Email: "d@x.com", Role: RoleDriver})

	// Simulates a process restart.
	second := NewStore(backend)
	snap := second.Snapshot()

	assert.Equal(t, "T1", snap.AccessToken)
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, RoleDriver, snap.User.Role)
}

func TestStoreRehydrationRederivesAuthFlag(t *testing.T) {
	// A persisted blob claiming authentication without a token must not
	// rehydrate into an authenticated session.
	backend := &mockBackend{saved: &Session{IsAuthenticated: true}}
	store := NewStore(backend)

	assert.False(t, store.IsAuthenticated())
}

func TestStoreMutationsSurviveBackendFailure(t *testing.T) {
	backend := &mockBackend{failAll: true}
	store := NewStore(backend)

	// Persistence is best-effort: the in-memory state still mutates.
	store.SetCredentials("T1", "R1")
	assert.Equal(t, "T1", store.AccessToken())
	assert.True(t, store.IsAuthenticated())
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore(nil)
	store.SetUser(&User{ID: "u1", Role: RoleDriver})

	snap := store.Snapshot()
	snap.User.Role = RoleAdmin

	assert.Equal(t, RoleDriver, store.User().Role)
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	_, err = backend.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	want := Session{
		AccessToken:     "T1",
		RefreshToken:    "R1",
		IsAuthenticated: true,
		User:            &User{ID: "u1", Email: "d@x.com", FullName: "Dele Ode", Role: RoleOwner},
	}
	require.NoError(t, backend.Save(want))

	got, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, backend.Delete())
	_, err = backend.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is fine.
	require.NoError(t, backend.Delete())
}
