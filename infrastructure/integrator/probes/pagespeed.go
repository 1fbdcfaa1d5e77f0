package probes

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

// PageSpeedClient mede performance, SEO, acessibilidade e boas práticas de
// uma URL via API estilo Lighthouse
type PageSpeedClient interface {
	Analyze(ctx context.Context, targetURL string, strategy domain.MonitoringStrategy) (map[string]any, error)
}

type pageSpeedClient struct {
	http    *probeHTTP
	baseURL string
	apiKey  string
}

func NewPageSpeedClient(cfg *config.Config) PageSpeedClient {
	return &pageSpeedClient{
		http:    newProbeHTTP(cfg.Probes.RequestTimeoutSeconds),
		baseURL: cfg.Probes.PageSpeedURL,
		apiKey:  cfg.Probes.PageSpeedAPIKey,
	}
}

func (c *pageSpeedClient) Analyze(ctx context.Context, targetURL string, strategy domain.MonitoringStrategy) (map[string]any, error) {
	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("strategy", string(strategy))
	params.Add("category", "performance")
	params.Add("category", "seo")
	params.Add("category", "accessibility")
	params.Add("category", "best-practices")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	return c.http.getJSON(ctx, fmt.Sprintf("%s?%s", c.baseURL, params.Encode()))
}
