package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token JWT emitido pelo provedor de autenticação.
// O id do usuário viaja na claim padrão sub
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"

// UserID retorna o id do usuário autenticado
func (c *Claims) UserID() string {
	return c.Subject
}

// IsAdmin indica se o usuário tem papel administrativo
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
