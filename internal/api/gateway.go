package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oklog/ulid/v2"
)

// ErrNoRefreshToken is returned when a 401 arrives while no refresh token is
// stored, so no recovery is possible.
var ErrNoRefreshToken = errors.New("no refresh token available")

// doJSON marshals body (when non-nil), sends the request through the gateway
// and decodes a 2xx response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = data
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, payload, out)
}

// do is the authenticated request gateway. Per outbound call it attaches the
// current bearer token, sends, and on a 401 refreshes the token pair and
// replays the request exactly once. Everything else passes through unchanged,
// including a 401 on the replay. A failed refresh clears the session store and
// propagates the original 401.
func (c *Client) do(ctx context.Context, method, path, contentType string, payload []byte, out any) error {
	token := c.store.AccessToken()

	const maxAttempts = 2
	for attempt := 1; ; attempt++ {
		status, respBody, err := c.send(ctx, method, path, contentType, payload, token)
		if err != nil {
			// Transport failure: no response, so no refresh. Refresh is
			// triggered only by a definite 401 status.
			return err
		}

		if status == http.StatusUnauthorized && attempt < maxAttempts {
			failure := &Error{StatusCode: status, Body: string(respBody)}

			fresh, refreshErr := c.refreshAccessToken(ctx, token)
			if refreshErr != nil {
				// Fatal for the session: clear everything and surface the
				// original request's failure, not the refresh failure.
				c.store.Logout()
				return failure
			}
			token = fresh
			continue
		}

		if status < 200 || status >= 300 {
			return &Error{StatusCode: status, Body: string(respBody)}
		}

		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil
	}
}

// send performs one HTTP round trip. The token is attached as a bearer header
// when non-empty; requests sent while logged out go out unauthenticated.
func (c *Client) send(ctx context.Context, method, path, contentType string, payload []byte, token string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// refreshAccessToken exchanges the stored refresh token for a new token pair
// and overwrites the session store. Concurrent callers collapse into a single
// in-flight refresh; a caller whose token already changed underneath it skips
// the exchange and reuses the newer token.
func (c *Client) refreshAccessToken(ctx context.Context, staleToken string) (string, error) {
	if current := c.store.AccessToken(); current != "" && current != staleToken {
		return current, nil
	}

	result, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		// Re-check under the group: the winner of a previous flight may have
		// already rotated the pair.
		if current := c.store.AccessToken(); current != "" && current != staleToken {
			return current, nil
		}

		refreshToken := c.store.RefreshToken()
		if refreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		pair, err := c.postRefresh(ctx, refreshToken)
		if err != nil {
			return nil, err
		}

		c.store.SetCredentials(pair.AccessToken, pair.RefreshToken)
		return pair.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// postRefresh calls the refresh endpoint directly, bypassing the gateway so a
// failing refresh can never trigger another refresh.
func (c *Client) postRefresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	payload, err := json.Marshal(RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/authentication/refresh", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	return &pair, nil
}
