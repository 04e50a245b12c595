package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/cruisebase/cruisebase/internal/session"
)

// DefaultBaseURL is the hosted CruiseBase API.
const DefaultBaseURL = "https://api.cruisebase.com"

// Client is the typed HTTP client for the CruiseBase API. All protected calls
// go through the authenticated request gateway in gateway.go, which attaches
// the bearer token from the session store and transparently recovers a single
// expired-token 401 per request.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	store        *session.Store
	validate     *validator.Validate
	refreshGroup singleflight.Group
}

// New creates a new API client bound to the given session store.
func New(baseURL string, store *session.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:    store,
		validate: validator.New(),
	}
}

// SetHTTPClient sets a custom HTTP client (used in tests).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Store returns the session store this client mutates on refresh and logout.
func (c *Client) Store() *session.Store {
	return c.store
}
