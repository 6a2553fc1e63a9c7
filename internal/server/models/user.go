package models

import "time"

// Role decides what a user may do beyond reading.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// User is an API account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
