package api

import (
	"context"

	"github.com/asemenova/toolshare/internal/client/models"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the sign-up request body.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Login exchanges credentials for a bearer token. The token is the envelope
// payload; a wrong password comes back as *Error with the server's code and
// message, leaving the caller free to re-prompt.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var token string
	if _, err := c.post(ctx, "/auth/login", creds, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Register creates a new account. It never touches session state.
func (c *Client) Register(ctx context.Context, reg Registration) (*models.User, error) {
	var user models.User
	if _, err := c.post(ctx, "/auth/register", reg, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile fetches the profile of the credential's owner.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := c.get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits profile changes. The response body is not a source
// of truth for the session; callers re-fetch the profile after success.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	_, err := c.put(ctx, "/auth/profile", upd, nil)
	return err
}
