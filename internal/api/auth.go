package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cruisebase/cruisebase/internal/session"
)

// Login exchanges email/password for a token pair and stores it. Identity is
// resolved separately; see BootstrapSession.
func (c *Client) Login(ctx context.Context, email, password string) error {
	req := LoginRequest{Email: email, Password: password}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid login request: %w", err)
	}

	var pair TokenPair
	if err := c.doJSON(ctx, http.MethodPost, "/api/authentication/login", req, &pair); err != nil {
		return err
	}

	c.store.SetCredentials(pair.AccessToken, pair.RefreshToken)
	return nil
}

// BootstrapSession turns a credential exchange into a fully populated session:
// login first, then identity resolution. A failure after token acquisition
// does not roll the tokens back; the partial session stays usable and the
// identity can be refetched later with FetchIdentity.
func (c *Client) BootstrapSession(ctx context.Context, email, password string) (*session.User, error) {
	if err := c.Login(ctx, email, password); err != nil {
		return nil, err
	}
	return c.FetchIdentity(ctx)
}

// FetchIdentity resolves the authenticated user's profile, collapses the role
// list to one effective role and stores the result.
func (c *Client) FetchIdentity(ctx context.Context) (*session.User, error) {
	details, err := c.UserDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	user := &session.User{
		ID:       details.ID,
		Email:    details.Email,
		FullName: details.FirstName + " " + details.LastName,
		Role:     session.ResolveRole(details.Roles),
	}
	c.store.SetUser(user)
	return user, nil
}

// Register creates a new Owner or Driver account. Registration does not log
// the new user in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid registration request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, "/api/authentication/register", req, nil)
}
