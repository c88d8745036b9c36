package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is an authenticated back-office session.
type User struct {
	Email     string    `json:"email" validate:"required,email,max=100"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Role      string    `json:"role" validate:"required,oneof=admin editor"`
	LoginTime time.Time `json:"loginTime"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsEditor() bool {
	return u != nil && u.Role == RoleEditor
}
