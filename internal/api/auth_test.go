package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruisebase/cruisebase/internal/session"
)

func newAuthBackend(t *testing.T, roles []string, identityStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/authentication/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "d@x.com" || req.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(TokenPair{AccessToken: "T1", RefreshToken: "R1"})
	})

	mux.HandleFunc("/api/user/details", func(w http.ResponseWriter, r *http.Request) {
		if identityStatus != http.StatusOK {
			w.WriteHeader(identityStatus)
			return
		}
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(UserDetails{
			ID:        "u1",
			Email:     "d@x.com",
			FirstName: "Dele",
			LastName:  "Ode",
			Roles:     roles,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginStoresTokenPair(t *testing.T) {
	srv := newAuthBackend(t, []string{"Owner"}, http.StatusOK)
	store := session.NewStore(nil)
	client := New(srv.URL, store)

	err := client.Login(context.Background(), "d@x.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "T1", store.AccessToken())
	assert.Equal(t, "R1", store.RefreshToken())
	assert.True(t, store.IsAuthenticated())

	// Identity resolution is a separate step: tokens set, user still nil.
	assert.Nil(t, store.User())
}

func TestLoginRejectedCredentials(t *testing.T) {
	srv := newAuthBackend(t, nil, http.StatusOK)
	store := session.NewStore(nil)
	client := New(srv.URL, store)

	err := client.Login(context.Background(), "d@x.com", "wrong-password")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	// No retry, session stays empty.
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
}

func TestLoginValidatesBeforeSending(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewStore(nil))
	err := client.Login(context.Background(), "not-an-email", "secret1")
	require.Error(t, err)
	assert.False(t, called)
}

func TestBootstrapSessionResolvesRole(t *testing.T) {
	srv := newAuthBackend(t, []string{"Owner"}, http.StatusOK)
	store := session.NewStore(nil)
	client := New(srv.URL, store)

	user, err := client.BootstrapSession(context.Background(), "d@x.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, session.RoleOwner, user.Role)
	assert.Equal(t, "Dele Ode", user.FullName)

	stored := store.User()
	require.NotNil(t, stored)
	assert.Equal(t, session.RoleOwner, stored.Role)
}

func TestBootstrapIdentityFailureKeepsTokens(t *testing.T) {
	srv := newAuthBackend(t, nil, http.StatusInternalServerError)
	store := session.NewStore(nil)
	client := New(srv.URL, store)

	_, err := client.BootstrapSession(context.Background(), "d@x.com", "secret1")
	require.Error(t, err)

	// Partial session: tokens survive, identity can be refetched later.
	assert.Equal(t, "T1", store.AccessToken())
	assert.True(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestRegisterValidation(t *testing.T) {
	client := New("http://localhost:0", session.NewStore(nil))

	err := client.Register(context.Background(), RegisterRequest{
		FirstName:   "A",
		LastName:    "B",
		Username:    "ab",
		Email:       "a@b.com",
		PhoneNumber: "0800",
		Password:    "secret1",
		Role:        "Admin", // only Owner/Driver can self-register
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registration request")
}
