package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
)

// UserDetails fetches the authenticated user's profile.
func (c *Client) UserDetails(ctx context.Context) (*UserDetails, error) {
	var details UserDetails
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/details", nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateUserDetails updates mutable profile fields.
func (c *Client) UpdateUserDetails(ctx context.Context, req UpdateUserRequest) (*UserDetails, error) {
	var details UserDetails
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/details", req, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// SearchUser finds a user by name, email or username. Admin only.
func (c *Client) SearchUser(ctx context.Context, term string) (*UserDetails, error) {
	var details UserDetails
	path := "/api/user/search?term=" + url.QueryEscape(term)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UploadProfilePicture uploads a profile image as multipart form data. The
// body is assembled in memory so the gateway can replay it after a refresh.
func (c *Client) UploadProfilePicture(ctx context.Context, filename string, data []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	return c.do(ctx, http.MethodPost, "/api/user/profile-picture", writer.FormDataContentType(), buf.Bytes(), nil)
}
