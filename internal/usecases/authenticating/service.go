package authenticating

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// Service valida tokens bearer emitidos pelo provedor de sessão externo.
// A emissão de tokens e o fluxo de login ficam fora deste núcleo
type Service interface {
	ValidateToken(rawToken string) (*domain.Claims, error)
}

type service struct {
	secret []byte
}

func NewService(cfg *config.Config) Service {
	return &service{
		secret: []byte(cfg.Auth.Secret),
	}
}

func (s *service) ValidateToken(rawToken string) (*domain.Claims, error) {
	rawToken = strings.TrimSpace(strings.TrimPrefix(rawToken, "Bearer "))
	if rawToken == "" {
		return nil, errors.New("token ausente")
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "token inválido")
	}

	if !token.Valid {
		return nil, errors.New("token inválido")
	}

	if claims.UserID() == "" {
		return nil, errors.New("token sem identificação de usuário")
	}

	return claims, nil
}
