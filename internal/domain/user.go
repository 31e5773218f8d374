package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = 1
	RoleEditor = 2
)

// User usuário do painel administrativo
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
	RoleID *int    `json:"role_id"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}
