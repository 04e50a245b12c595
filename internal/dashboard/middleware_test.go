package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/config"
	"github.com/cruisebase/cruisebase/internal/session"
)

func newTestServer(t *testing.T) (*Server, *session.Store) {
	t.Helper()

	// Minimal remote API: enough for the handlers the gate lets through.
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vehicle":
			w.Write([]byte(`[]`))
		case "/api/wallet/balance":
			w.Write([]byte(`{"id":"w1","balance":100,"currency":"NGN","isPinSet":true}`))
		case "/api/wallet/transaction-history":
			w.Write([]byte(`{"transactions":[],"total":0}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(remote.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = remote.URL
	cfg.Dashboard.ListenAddress = "localhost:0"

	store := session.NewStore(nil)
	client := api.New(remote.URL, store)

	srv, err := New(cfg, client, store, nil, zerolog.Nop())
	require.NoError(t, err)
	return srv, store
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func redirectOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	redirect, _ := body["redirect"].(string)
	return redirect
}

func TestGateRedirectsWithoutSession(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/dashboard/admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", redirectOf(t, rec))
}

func TestGateRedirectsOnRoleMismatch(t *testing.T) {
	srv, store := newTestServer(t)
	store.SetCredentials("T1", "R1")
	store.SetUser(&session.User{ID: "u1", Role: session.RoleDriver})

	rec := get(t, srv, "/dashboard/admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/unauthorized", redirectOf(t, rec))
}

func TestGateAllowsPermittedRole(t *testing.T) {
	srv, store := newTestServer(t)
	store.SetCredentials("T1", "R1")
	store.SetUser(&session.User{ID: "u1", Role: session.RoleAdmin})

	rec := get(t, srv, "/dashboard/admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateEvaluatesEveryNavigation(t *testing.T) {
	srv, store := newTestServer(t)
	store.SetCredentials("T1", "R1")
	store.SetUser(&session.User{ID: "u1", Role: session.RoleDriver})

	// Same session, different destinations: each navigation is decided
	// independently against the table.
	assert.Equal(t, http.StatusOK, get(t, srv, "/dashboard/driver").Code)
	assert.Equal(t, http.StatusForbidden, get(t, srv, "/dashboard/owner").Code)
	assert.Equal(t, http.StatusOK, get(t, srv, "/wallet").Code)
}

func TestHealthIsPublic(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.Equal(t, http.StatusOK, get(t, srv, "/health").Code)
}

func TestLogoutClearsSession(t *testing.T) {
	srv, store := newTestServer(t)
	store.SetCredentials("T1", "R1")
	store.SetUser(&session.User{ID: "u1", Role: session.RoleDriver})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}
