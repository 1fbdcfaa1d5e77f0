package probes

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/internal/config"
)

// SerpClient consulta o ranking do projeto nos resultados de busca para os
// termos cadastrados
type SerpClient interface {
	Lookup(ctx context.Context, targetURL string, searchTerms []string) (map[string]any, error)
}

type serpClient struct {
	http    *probeHTTP
	baseURL string
}

func NewSerpClient(cfg *config.Config) SerpClient {
	return &serpClient{
		http:    newProbeHTTP(cfg.Probes.RequestTimeoutSeconds),
		baseURL: cfg.Probes.SerpURL,
	}
}

func (c *serpClient) Lookup(ctx context.Context, targetURL string, searchTerms []string) (map[string]any, error) {
	if c.baseURL == "" {
		return nil, errors.New("sonda de SERP não configurada")
	}

	return c.http.postJSON(ctx, c.baseURL, map[string]any{
		"url":          targetURL,
		"search_terms": searchTerms,
	})
}
