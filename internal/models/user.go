package models

import "time"

// Role represents the staff roles recognised by the panel.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleDirector         Role = "DIRECTOR"
	RoleJefeDisciplina   Role = "JEFE_DISCIPLINA"
	RoleJefeDepartamento Role = "JEFE_DEPARTAMENTO"
	RoleVicedecano       Role = "VICEDECANO"
)

// Identity is the authenticated user snapshot held for a session. The role is
// fixed for the session's lifetime; changing it requires re-authentication.
type Identity struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
}

// User mirrors the upstream account record for the admin user screens.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	Blocked   bool      `json:"is_blocked"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
