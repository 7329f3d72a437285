package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the panel login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest is the panel registration payload. A successful register is
// treated as an implicit login.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Department      string `json:"department" validate:"omitempty,max=200"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// TokenPair carries the upstream access/refresh credentials.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UpstreamAuthResponse is the shape returned by the upstream login and
// register endpoints.
type UpstreamAuthResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UpstreamUser `json:"user"`
}

// UpstreamUser is the identity block inside upstream auth responses.
type UpstreamUser struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
}

// Identity converts the upstream identity block to the session snapshot.
func (u UpstreamUser) Identity() Identity {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	return Identity{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   name,
		Role:       u.Role,
		Department: u.Department,
	}
}

// SessionClaims are the panel session token claims.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    int64  `json:"uid"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}

// SessionResponse is returned to the browser after login/register.
type SessionResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int64    `json:"expires_in"`
	User      Identity `json:"user"`
}
