package ads

import (
	"testing"

	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseCampaigns_RespostasMalformadas(t *testing.T) {
	parsers := map[string]func([]byte) []domain.ProviderCampaign{
		"google_ads":   parseGoogleCampaigns,
		"meta_ads":     parseMetaCampaigns,
		"linkedin_ads": parseLinkedInCampaigns,
		"tiktok_ads":   parseTikTokCampaigns,
	}

	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "JSON inválido deve retornar lista vazia",
			body: []byte(`{"results": [`),
		},
		{
			name: "Corpo vazio deve retornar lista vazia",
			body: []byte(``),
		},
		{
			name: "Objeto sem os campos esperados deve retornar lista vazia",
			body: []byte(`{"foo": "bar"}`),
		},
		{
			name: "Lista com tipos errados deve retornar lista vazia",
			body: []byte(`{"results": "nada", "data": 42, "elements": true}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for provider, parse := range parsers {
				campaigns := parse(tt.body)
				assert.NotNil(t, campaigns, provider)
				assert.Empty(t, campaigns, provider)
			}
		})
	}
}

func TestParseGoogleCampaigns(t *testing.T) {
	body := []byte(`{
		"results": [
			{
				"campaign": {"id": "111", "name": "Busca Brand", "status": "ENABLED"},
				"campaignBudget": {"amountMicros": "2500000"}
			},
			{
				"campaign": {"id": "222", "name": "Display", "status": "PAUSED"}
			},
			{"semCampanha": true}
		]
	}`)

	campaigns := parseGoogleCampaigns(body)

	assert.Len(t, campaigns, 2)
	assert.Equal(t, "111", campaigns[0].ExternalID)
	assert.Equal(t, "Busca Brand", campaigns[0].Name)
	assert.Equal(t, "ENABLED", campaigns[0].Status)
	// Orçamento em micros convertido para unidades de moeda
	assert.Equal(t, 2.5, campaigns[0].Budget)
	assert.Equal(t, 0.0, campaigns[1].Budget)
}

func TestParseGoogleMetrics(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected domain.ProviderMetrics
	}{
		{
			name: "Deve somar as linhas segmentadas por data e converter micros",
			body: []byte(`{
				"results": [
					{"metrics": {"impressions": "100", "clicks": "10", "conversions": 2.5, "costMicros": "1500000", "conversionsValue": 120.0}},
					{"metrics": {"impressions": "50", "clicks": "5", "conversions": 0.5, "costMicros": "500000", "conversionsValue": 30.0}}
				]
			}`),
			expected: domain.ProviderMetrics{
				Impressions: 150,
				Clicks:      15,
				Conversions: 3.0,
				Cost:        2.0,
				Revenue:     150.0,
			},
		},
		{
			name:     "Resposta sem resultados deve retornar métricas zeradas",
			body:     []byte(`{"results": []}`),
			expected: domain.ProviderMetrics{},
		},
		{
			name:     "JSON inválido deve retornar métricas zeradas",
			body:     []byte(`nope`),
			expected: domain.ProviderMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGoogleMetrics(tt.body))
		})
	}
}

func TestParseMetaCampaigns(t *testing.T) {
	body := []byte(`{
		"data": [
			{"id": "789", "name": "Conversão Site", "status": "ACTIVE", "daily_budget": "5000"}
		]
	}`)

	campaigns := parseMetaCampaigns(body)

	assert.Len(t, campaigns, 1)
	assert.Equal(t, "789", campaigns[0].ExternalID)
	// Orçamento em centavos convertido para unidades
	assert.Equal(t, 50.0, campaigns[0].Budget)
}

func TestParseMetaMetrics(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected domain.ProviderMetrics
	}{
		{
			name: "Deve somar apenas ações de compra e lead",
			body: []byte(`{
				"data": [
					{
						"impressions": "2000",
						"clicks": "80",
						"spend": "150.75",
						"actions": [
							{"action_type": "purchase", "value": "3"},
							{"action_type": "omni_purchase", "value": "2"},
							{"action_type": "lead", "value": "5"},
							{"action_type": "link_click", "value": "80"}
						],
						"action_values": [
							{"action_type": "purchase", "value": "900.50"},
							{"action_type": "page_engagement", "value": "10"}
						]
					}
				]
			}`),
			expected: domain.ProviderMetrics{
				Impressions: 2000,
				Clicks:      80,
				Conversions: 10,
				Cost:        150.75,
				Revenue:     900.50,
			},
		},
		{
			name:     "Data vazio deve retornar métricas zeradas",
			body:     []byte(`{"data": []}`),
			expected: domain.ProviderMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseMetaMetrics(tt.body))
		})
	}
}

func TestParseLinkedInCampaigns(t *testing.T) {
	body := []byte(`{
		"elements": [
			{"id": 123456, "name": "Awareness Q1", "status": "ACTIVE", "dailyBudget": {"amount": "7500"}},
			{"id": "654321", "name": "Leads Q1", "status": "PAUSED"}
		]
	}`)

	campaigns := parseLinkedInCampaigns(body)

	assert.Len(t, campaigns, 2)
	// IDs numéricos são normalizados para string
	assert.Equal(t, "123456", campaigns[0].ExternalID)
	assert.Equal(t, 75.0, campaigns[0].Budget)
	assert.Equal(t, "654321", campaigns[1].ExternalID)
}

func TestParseLinkedInMetrics(t *testing.T) {
	body := []byte(`{
		"elements": [
			{
				"impressions": 5000,
				"clicks": 120,
				"externalWebsiteConversions": 8,
				"costInLocalCurrency": "420.30",
				"conversionValueInLocalCurrency": "1600.00"
			}
		]
	}`)

	metrics := parseLinkedInMetrics(body)

	assert.Equal(t, 5000, metrics.Impressions)
	assert.Equal(t, 120, metrics.Clicks)
	assert.Equal(t, 8.0, metrics.Conversions)
	assert.Equal(t, 420.30, metrics.Cost)
	assert.Equal(t, 1600.00, metrics.Revenue)
}

func TestParseTikTokCampaigns(t *testing.T) {
	body := []byte(`{
		"code": 0,
		"data": {
			"list": [
				{"campaign_id": "999", "campaign_name": "Spark Ads", "operation_status": "ENABLE", "budget": 300.0}
			]
		}
	}`)

	campaigns := parseTikTokCampaigns(body)

	assert.Len(t, campaigns, 1)
	assert.Equal(t, "999", campaigns[0].ExternalID)
	assert.Equal(t, "Spark Ads", campaigns[0].Name)
	// O TikTok já devolve o orçamento em unidades de moeda
	assert.Equal(t, 300.0, campaigns[0].Budget)
}

func TestParseTikTokMetrics(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected domain.ProviderMetrics
	}{
		{
			name: "Deve extrair as métricas da primeira linha do relatório",
			body: []byte(`{
				"data": {
					"list": [
						{"metrics": {"impressions": "1200", "clicks": "40", "conversion": "6", "spend": "88.20", "total_onsite_shopping_value": "410.00"}}
					]
				}
			}`),
			expected: domain.ProviderMetrics{
				Impressions: 1200,
				Clicks:      40,
				Conversions: 6,
				Cost:        88.20,
				Revenue:     410.00,
			},
		},
		{
			name:     "Linha sem metrics deve retornar métricas zeradas",
			body:     []byte(`{"data": {"list": [{"dimensions": {}}]}}`),
			expected: domain.ProviderMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTikTokMetrics(tt.body))
		})
	}
}

func TestAdapterHeaders(t *testing.T) {
	tiktok := newTikTokAdsAdapter("https://business-api.tiktok.com/open_api/v1.3")
	headers := tiktok.Headers("tok-123")
	assert.Equal(t, "tok-123", headers["Access-Token"])
	assert.NotContains(t, headers, "Authorization")

	linkedin := newLinkedInAdsAdapter("https://api.linkedin.com/rest")
	headers = linkedin.Headers("tok-456")
	assert.Equal(t, "Bearer tok-456", headers["Authorization"])
	assert.Equal(t, "202401", headers["LinkedIn-Version"])
}

func TestRegistry(t *testing.T) {
	registry := NewRegistryWith(
		&Adapter{Provider: domain.ProviderGoogleAds},
	)

	adapter, ok := registry.Get(domain.ProviderGoogleAds)
	assert.True(t, ok)
	assert.Equal(t, domain.ProviderGoogleAds, adapter.Provider)

	_, ok = registry.Get(domain.ProviderMetaAds)
	assert.False(t, ok)
}
