package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// ListUsers returns the upstream accounts for the admin screens.
func (s *Session) ListUsers(ctx context.Context) ([]models.User, error) {
	raw, err := s.get(ctx, "/users/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](raw)
}

// GetUser fetches a single account.
func (s *Session) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser forwards an account creation payload untouched; validation is
// the upstream's concern.
func (s *Session) CreateUser(ctx context.Context, payload map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := s.do(ctx, http.MethodPost, "/users/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser forwards a partial account update untouched.
func (s *Session) UpdateUser(ctx context.Context, id int64, payload map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := s.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account.
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/", id), nil, nil)
}

// BlockUser suspends an account.
func (s *Session) BlockUser(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/block/", id), nil, nil)
}

// UnblockUser reinstates an account.
func (s *Session) UnblockUser(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/unblock/", id), nil, nil)
}

// Roles lists the assignable role choices.
func (s *Session) Roles(ctx context.Context) ([]models.EnumOption, error) {
	raw, err := s.get(ctx, "/roles/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.EnumOption](raw)
}
