package commands

import (
	"context"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/config"
	"github.com/cruisebase/cruisebase/internal/session"
)

// newClient builds the session store (rehydrated from the keyring or its file
// fallback) and the API client bound to it.
func newClient() (*api.Client, *session.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := session.NewStore(session.DefaultBackend())
	return api.New(cfg.API.BaseURL, store), store, nil
}

// requireUser returns the resolved identity or an actionable error when the
// CLI is not logged in. Tokens present with identity missing triggers a
// refetch rather than a failure.
func requireUser(client *api.Client, store *session.Store) (*session.User, error) {
	if !store.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in. Run 'cruisebase login' first")
	}

	if user := store.User(); user != nil {
		return user, nil
	}

	// Partial session: tokens were stored but the identity fetch failed or
	// never ran. Resolve it now.
	user, err := client.FetchIdentity(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return user, nil
}

// promptSecret reads a hidden value from the terminal.
func promptSecret(label string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("%s is required in non-interactive mode", label)
	}

	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	fmt.Println()
	return string(raw), nil
}
