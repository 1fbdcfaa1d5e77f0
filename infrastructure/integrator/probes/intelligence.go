package probes

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// IntelligenceClient varre os sites concorrentes e devolve os dados de
// inteligência competitiva (títulos, sinais de preço, CTAs)
type IntelligenceClient interface {
	Scan(ctx context.Context, targetURL string, competitorURLs []string, apiKeys []*domain.ApiKey) (map[string]any, error)
}

type intelligenceClient struct {
	http    *probeHTTP
	baseURL string
}

func NewIntelligenceClient(cfg *config.Config) IntelligenceClient {
	return &intelligenceClient{
		http:    newProbeHTTP(cfg.Probes.RequestTimeoutSeconds),
		baseURL: cfg.Probes.IntelligenceURL,
	}
}

func (c *intelligenceClient) Scan(ctx context.Context, targetURL string, competitorURLs []string, apiKeys []*domain.ApiKey) (map[string]any, error) {
	if c.baseURL == "" {
		return nil, errors.New("sonda de inteligência não configurada")
	}

	keys := make([]map[string]string, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		keys = append(keys, map[string]string{
			"service": apiKey.Service,
			"key":     apiKey.Key,
		})
	}

	return c.http.postJSON(ctx, c.baseURL, map[string]any{
		"url":             targetURL,
		"competitor_urls": competitorURLs,
		"api_keys":        keys,
	})
}
