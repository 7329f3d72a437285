package gateway

import (
	"context"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// Login exchanges credentials for an upstream token pair plus identity.
// Sent unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*models.UpstreamAuthResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	var out models.UpstreamAuthResponse
	if err := c.public(ctx, http.MethodPost, "/auth/login/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an upstream account. The response doubles as a login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.UpstreamAuthResponse, error) {
	var out models.UpstreamAuthResponse
	if err := c.public(ctx, http.MethodPost, "/auth/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh credential for a new access credential.
func (c *Client) Refresh(ctx context.Context, refresh string) (*models.TokenPair, error) {
	payload := map[string]string{"refresh": refresh}
	var out models.TokenPair
	if err := c.public(ctx, http.MethodPost, "/auth/refresh/", payload, &out); err != nil {
		return nil, err
	}
	if out.Refresh == "" {
		out.Refresh = refresh
	}
	return &out, nil
}

// Profile fetches the authenticated user's upstream profile.
func (s *Session) Profile(ctx context.Context) (*models.UpstreamUser, error) {
	var out models.UpstreamUser
	if err := s.do(ctx, http.MethodGet, "/auth/profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
