package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateToken(t *testing.T) {
	secret := "segredo-de-teste"
	service := NewService(&config.Config{Auth: config.Auth{Secret: secret}})

	sign := func(claims *domain.Claims, key string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		assert.NoError(t, err)
		return token
	}

	tests := []struct {
		name     string
		token    string
		hasError bool
		validate func(t *testing.T, claims *domain.Claims)
	}{
		{
			name: "Token válido com prefixo Bearer deve retornar as claims",
			token: "Bearer " + sign(&domain.Claims{
				Email: "dono@loja.com.br",
				Role:  domain.RoleAdmin,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, secret),
			validate: func(t *testing.T, claims *domain.Claims) {
				assert.Equal(t, "user-1", claims.UserID())
				assert.True(t, claims.IsAdmin())
			},
		},
		{
			name: "Token sem prefixo Bearer também é aceito",
			token: sign(&domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-2",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, secret),
			validate: func(t *testing.T, claims *domain.Claims) {
				assert.Equal(t, "user-2", claims.UserID())
				assert.False(t, claims.IsAdmin())
			},
		},
		{
			name:     "Token vazio deve falhar",
			token:    "Bearer ",
			hasError: true,
		},
		{
			name: "Token expirado deve falhar",
			token: sign(&domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}, secret),
			hasError: true,
		},
		{
			name: "Token assinado com outro segredo deve falhar",
			token: sign(&domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, "outro-segredo"),
			hasError: true,
		},
		{
			name: "Token sem subject deve falhar",
			token: sign(&domain.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, secret),
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, claims)
		})
	}
}
