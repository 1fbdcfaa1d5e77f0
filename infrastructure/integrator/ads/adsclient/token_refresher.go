package adsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
)

// TokenRefresher renova tokens de acesso OAuth expirados. A renovação nunca
// propaga erro: qualquer falha devolve ok=false e o chamador decide o que
// fazer com o token vencido
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration) (accessToken string, ok bool)
}

type tokenRefresher struct {
	httpClient      *http.Client
	timeout         time.Duration
	credentials     map[domain.IntegrationProvider]config.OAuthClient
	integrationRepo repository.IntegrationRepository
}

func NewTokenRefresher(cfg *config.Config, integrationRepo repository.IntegrationRepository) TokenRefresher {
	return &tokenRefresher{
		httpClient: &http.Client{},
		timeout:    time.Duration(cfg.Providers.RequestTimeoutSeconds) * time.Second,
		credentials: map[domain.IntegrationProvider]config.OAuthClient{
			domain.ProviderGoogleAds:   cfg.GoogleAds,
			domain.ProviderMetaAds:     cfg.MetaAds,
			domain.ProviderLinkedInAds: cfg.LinkedInAds,
			domain.ProviderTikTokAds:   cfg.TikTokAds,
		},
		integrationRepo: integrationRepo,
	}
}

// refreshResponse cobre as variações de nomes entre provedores
type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshAccessToken troca o refresh token por um novo token de acesso e
// persiste o resultado. Exatamente uma escrita no repositório por renovação
// bem-sucedida; nenhuma escrita em caso de falha
func (t *tokenRefresher) RefreshAccessToken(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration) (string, bool) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"integration_id": integration.ID,
		"provider":       adapter.Provider,
	})

	if adapter.RefreshTokenURL == "" {
		logger.Debug("Provedor não suporta renovação de token")
		return "", false
	}

	if integration.RefreshToken == nil || *integration.RefreshToken == "" {
		logger.Warn("Integração sem refresh token; renovação impossível")
		return "", false
	}

	creds, ok := t.credentials[adapter.Provider]
	if !ok || creds.ClientID == "" {
		logger.Warn("Credenciais OAuth ausentes para o provedor")
		return "", false
	}

	body := adapter.RefreshTokenBody(*integration.RefreshToken, creds.ClientID, creds.ClientSecret)

	parsed, err := t.post(ctx, adapter.RefreshTokenURL, body.Encode())
	if err != nil {
		logger.WithError(err).Warn("Falha na renovação do token de acesso")
		return "", false
	}

	if parsed.AccessToken == "" {
		logger.Warn("Resposta de renovação sem access token")
		return "", false
	}

	expiresAt := time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)

	// Alguns provedores rotacionam o refresh token a cada renovação; só
	// nesses casos o valor novo substitui o antigo
	var newRefreshToken *string
	if adapter.RotatesRefreshToken && parsed.RefreshToken != "" {
		newRefreshToken = &parsed.RefreshToken
	}

	if err := t.integrationRepo.UpdateTokens(integration.ID, parsed.AccessToken, newRefreshToken, expiresAt); err != nil {
		logger.WithError(err).Error("Erro ao persistir o token renovado")
		return "", false
	}

	logger.Info("Token de acesso renovado com sucesso")
	return parsed.AccessToken, true
}

func (t *tokenRefresher) post(ctx context.Context, url, formBody string) (*refreshResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, strings.NewReader(formBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("servidor OAuth respondeu com status %d", resp.StatusCode)
	}

	parsed := &refreshResponse{}
	if err := json.Unmarshal(raw, parsed); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de renovação")
	}

	return parsed, nil
}
