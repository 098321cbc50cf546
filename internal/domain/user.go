package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = 1
	RoleOwner  = 2
	RoleDriver = 3
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

type Claims struct {
	UserID     int64
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}

// Principal devolve a identidade tipada usada pelo motor de analytics
func (c *Claims) Principal() Principal {
	if c == nil {
		return Principal{}
	}

	return Principal{
		UserID: c.UserID,
		Email:  c.UserEmail,
		RoleID: c.UserRoleID,
	}
}

// Principal é a identidade autenticada de quem chama.
// UserID zero significa que apenas o e-mail é conhecido.
type Principal struct {
	UserID int64
	Email  string
	RoleID int
}

func (p Principal) IsAdmin() bool {
	return p.RoleID == RoleAdmin
}

func (p Principal) IsZero() bool {
	return p.UserID <= 0 && strings.TrimSpace(p.Email) == ""
}

// Identity identifica o principal nas chaves de cache
func (p Principal) Identity() string {
	if p.UserID > 0 {
		return fmt.Sprintf("user:%d", p.UserID)
	}
	return "email:" + strings.ToLower(strings.TrimSpace(p.Email))
}
