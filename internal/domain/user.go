package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// IsAdmin indica se o token pertence a um administrador
func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}
