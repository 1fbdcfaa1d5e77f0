package adsclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

// Client busca campanhas e métricas nas APIs dos provedores de anúncios.
// As respostas já chegam parseadas pelo adaptador do provedor
type Client interface {
	FetchCampaigns(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration) ([]domain.ProviderCampaign, error)
	FetchMetrics(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration, campaignExternalID, periodStart, periodEnd string) (domain.ProviderMetrics, error)
}

type client struct {
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &client{
		httpClient: &http.Client{},
		timeout:    time.Duration(cfg.Providers.RequestTimeoutSeconds) * time.Second,
	}
}

func (c *client) FetchCampaigns(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration) ([]domain.ProviderCampaign, error) {
	url := adapter.CampaignsURL(integration.AccountID)

	body, err := c.get(ctx, url, adapter.Headers(integration.AccessToken))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar campanhas no provedor %s", adapter.Provider)
	}

	return adapter.ParseCampaigns(body), nil
}

func (c *client) FetchMetrics(ctx context.Context, adapter *ads.Adapter, integration *domain.Integration, campaignExternalID, periodStart, periodEnd string) (domain.ProviderMetrics, error) {
	url := adapter.MetricsURL(integration.AccountID, campaignExternalID, periodStart, periodEnd)

	body, err := c.get(ctx, url, adapter.Headers(integration.AccessToken))
	if err != nil {
		return domain.ProviderMetrics{}, errors.Wrapf(err, "erro ao buscar métricas da campanha %s no provedor %s", campaignExternalID, adapter.Provider)
	}

	return adapter.ParseMetrics(body), nil
}

// get executa um GET com timeout próprio por chamada. O contexto do chamador
// continua valendo para cancelamento
func (c *client) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a requisição")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.ForContext(ctx).WithFields(log.Fields{
			"status": resp.StatusCode,
			"url":    url,
		}).Warn("Provedor de anúncios respondeu com erro")
		return nil, errors.Errorf("provedor respondeu com status %d", resp.StatusCode)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		log.ForContext(ctx).WithField("url", url).Debugf("Resposta do provedor: %s", utils.PrettyJson(body))
	}

	return body, nil
}
