package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims representa a sessão emitida pelo provedor de identidade
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}
