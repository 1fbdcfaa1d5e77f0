package ads

import (
	"net/url"

	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// Adapter encapsula as diferenças de protocolo entre as plataformas de
// anúncios: construção de URLs, cabeçalhos de autenticação, parse das
// respostas e a requisição de renovação OAuth. Parsers são funções puras e
// tolerantes: respostas malformadas resultam em listas vazias e campos zero,
// nunca em pânico
type Adapter struct {
	Provider domain.IntegrationProvider

	CampaignsURL func(accountID string) string
	MetricsURL   func(accountID, campaignID string, periodStart, periodEnd string) string
	Headers      func(accessToken string) map[string]string

	ParseCampaigns func(body []byte) []domain.ProviderCampaign
	ParseMetrics   func(body []byte) domain.ProviderMetrics

	// RefreshTokenURL vazio indica que o provedor não suporta renovação
	RefreshTokenURL  string
	RefreshTokenBody func(refreshToken, clientID, clientSecret string) url.Values
	// RotatesRefreshToken indica que a resposta de renovação traz um novo
	// refresh token que deve ser persistido
	RotatesRefreshToken bool
}

// Registry é o registro fechado de adaptadores, construído na inicialização e
// injetado nos serviços. Adicionar um provedor significa adicionar uma entrada
// aqui; nenhum outro componente muda
type Registry struct {
	adapters map[domain.IntegrationProvider]*Adapter
}

func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		adapters: map[domain.IntegrationProvider]*Adapter{
			domain.ProviderGoogleAds:   newGoogleAdsAdapter(cfg.Providers.GoogleAdsURL),
			domain.ProviderMetaAds:     newMetaAdsAdapter(cfg.Providers.MetaAdsURL),
			domain.ProviderLinkedInAds: newLinkedInAdsAdapter(cfg.Providers.LinkedInAdsURL),
			domain.ProviderTikTokAds:   newTikTokAdsAdapter(cfg.Providers.TikTokAdsURL),
		},
	}
}

// NewRegistryWith monta um registro com adaptadores arbitrários. Usado em
// testes para substituir adaptadores reais sem estado global
func NewRegistryWith(adapters ...*Adapter) *Registry {
	m := make(map[domain.IntegrationProvider]*Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Provider] = a
	}
	return &Registry{adapters: m}
}

func (r *Registry) Get(provider domain.IntegrationProvider) (*Adapter, bool) {
	adapter, ok := r.adapters[provider]
	return adapter, ok
}

func bearerHeaders(accessToken string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + accessToken,
		"Content-Type":  "application/json",
	}
}
