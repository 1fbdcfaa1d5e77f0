package adsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository/mocks"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRefresher(repo *mocks.MockIntegrationRepository) *tokenRefresher {
	return &tokenRefresher{
		httpClient: &http.Client{},
		timeout:    5 * time.Second,
		credentials: map[domain.IntegrationProvider]config.OAuthClient{
			domain.ProviderGoogleAds:   {ClientID: "cid", ClientSecret: "csecret"},
			domain.ProviderLinkedInAds: {ClientID: "cid", ClientSecret: "csecret"},
		},
		integrationRepo: repo,
	}
}

func testAdapter(provider domain.IntegrationProvider, refreshURL string, rotates bool) *ads.Adapter {
	return &ads.Adapter{
		Provider:        provider,
		RefreshTokenURL: refreshURL,
		RefreshTokenBody: func(refreshToken, clientID, clientSecret string) url.Values {
			body := url.Values{}
			body.Set("grant_type", "refresh_token")
			body.Set("refresh_token", refreshToken)
			body.Set("client_id", clientID)
			body.Set("client_secret", clientSecret)
			return body
		},
		RotatesRefreshToken: rotates,
	}
}

func TestRefreshAccessToken_Precondicoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIntegrationRepository(ctrl)
	refresher := newTestRefresher(mockRepo)

	refreshToken := "rt-1"

	tests := []struct {
		name        string
		adapter     *ads.Adapter
		integration *domain.Integration
	}{
		{
			name:        "Provedor sem URL de renovação falha silenciosamente",
			adapter:     testAdapter(domain.ProviderTikTokAds, "", false),
			integration: &domain.Integration{ID: "int-1", RefreshToken: &refreshToken},
		},
		{
			name:        "Integração sem refresh token falha silenciosamente",
			adapter:     testAdapter(domain.ProviderGoogleAds, "https://oauth.example/token", false),
			integration: &domain.Integration{ID: "int-1", RefreshToken: nil},
		},
		{
			name:        "Provedor sem credenciais configuradas falha silenciosamente",
			adapter:     testAdapter(domain.ProviderMetaAds, "https://oauth.example/token", false),
			integration: &domain.Integration{ID: "int-1", RefreshToken: &refreshToken},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma escrita no repositório deve acontecer
			token, ok := refresher.RefreshAccessToken(context.Background(), tt.adapter, tt.integration)

			assert.False(t, ok)
			assert.Empty(t, token)
		})
	}
}

func TestRefreshAccessToken_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIntegrationRepository(ctrl)
	refresher := newTestRefresher(mockRepo)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "rt-antigo", r.Form.Get("refresh_token"))
		assert.Equal(t, "cid", r.Form.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at-novo", "refresh_token": "rt-novo", "expires_in": 3600}`))
	}))
	defer server.Close()

	refreshToken := "rt-antigo"
	integration := &domain.Integration{ID: "int-1", RefreshToken: &refreshToken}

	t.Run("Provedor que não rotaciona mantém o refresh token antigo", func(t *testing.T) {
		adapter := testAdapter(domain.ProviderGoogleAds, server.URL, false)

		mockRepo.EXPECT().
			UpdateTokens("int-1", "at-novo", nil, gomock.Any()).
			DoAndReturn(func(_, _ string, _ *string, expiresAt time.Time) error {
				assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
				return nil
			})

		token, ok := refresher.RefreshAccessToken(context.Background(), adapter, integration)

		assert.True(t, ok)
		assert.Equal(t, "at-novo", token)
	})

	t.Run("Provedor que rotaciona persiste o refresh token novo", func(t *testing.T) {
		adapter := testAdapter(domain.ProviderLinkedInAds, server.URL, true)

		mockRepo.EXPECT().
			UpdateTokens("int-1", "at-novo", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_, _ string, newRefreshToken *string, _ time.Time) error {
				assert.NotNil(t, newRefreshToken)
				assert.Equal(t, "rt-novo", *newRefreshToken)
				return nil
			})

		token, ok := refresher.RefreshAccessToken(context.Background(), adapter, integration)

		assert.True(t, ok)
		assert.Equal(t, "at-novo", token)
	})
}

func TestRefreshAccessToken_FalhasDoServidor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIntegrationRepository(ctrl)
	refresher := newTestRefresher(mockRepo)

	refreshToken := "rt-1"
	integration := &domain.Integration{ID: "int-1", RefreshToken: &refreshToken}

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Status de erro do servidor OAuth falha sem escrita",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "invalid_grant"}`))
			},
		},
		{
			name: "Resposta sem access token falha sem escrita",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"expires_in": 3600}`))
			},
		},
		{
			name: "Resposta com JSON inválido falha sem escrita",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`nada`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			adapter := testAdapter(domain.ProviderGoogleAds, server.URL, false)

			token, ok := refresher.RefreshAccessToken(context.Background(), adapter, integration)

			assert.False(t, ok)
			assert.Empty(t, token)
		})
	}
}
