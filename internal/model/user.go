package model

import (
	"encoding/json"
	"strings"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// ParseUserRole normalizes a role string against the closed role set.
func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

type User struct {
	ID           int64    `json:"user_id"`
	Login        string   `json:"login"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Email        string   `json:"email"`
}

// MarshalJSON keeps the password hash out of every response, including the
// ones that embed a full user record.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    int64    `json:"user_id"`
		Login string   `json:"login"`
		Role  UserRole `json:"role"`
		Email string   `json:"email"`
	}{u.ID, u.Login, u.Role, u.Email})
}
