package user

import (
	"filmrate-backend/internal/shared"
)

// User mirrors the users table. Name falls back to Login when not provided
// at creation time.
type User struct {
	ID       int64       `json:"id" db:"id"`
	Email    string      `json:"email" db:"email"`
	Login    string      `json:"login" db:"login"`
	Name     string      `json:"name" db:"name"`
	Birthday shared.Date `json:"birthday" db:"birthday"`
}
