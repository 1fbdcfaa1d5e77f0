package syncing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads/adsclient"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
	"github.com/stratify-app/marketing-sync-api/pkg/metrics"
)

// maxConsecutiveFailures é o limite de sincronizações falhadas consecutivas
// antes da integração ser marcada com status error
const maxConsecutiveFailures = 5

const dateLayout = "2006-01-02"

// SyncParams parametriza uma tentativa de sincronização. Provider, quando
// informado, precisa casar com o provedor da integração carregada; PeriodStart
// e PeriodEnd sobrescrevem a janela padrão de lookback quando preenchidos
type SyncParams struct {
	IntegrationID string
	UserID        string
	Provider      domain.IntegrationProvider
	SyncType      domain.SyncType
	PeriodStart   *time.Time
	PeriodEnd     *time.Time
}

// Service executa a sincronização de uma integração de anúncios: valida o
// estado, renova o token se expirado, busca campanhas e métricas no provedor
// e persiste as amostras normalizadas, registrando tudo em um sync log
type Service interface {
	RunSync(ctx context.Context, params SyncParams) (*domain.SyncSummary, error)
}

type service struct {
	integrationRepo repository.IntegrationRepository
	syncLogRepo     repository.SyncLogRepository
	campaignRepo    repository.CampaignRepository
	metricRepo      repository.CampaignMetricRepository
	registry        *ads.Registry
	client          adsclient.Client
	refresher       adsclient.TokenRefresher
	metrics         *metrics.Metrics
	lookbackDays    int
}

func NewService(
	cfg *config.Config,
	integrationRepo repository.IntegrationRepository,
	syncLogRepo repository.SyncLogRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	registry *ads.Registry,
	client adsclient.Client,
	refresher adsclient.TokenRefresher,
	m *metrics.Metrics,
) Service {
	return &service{
		integrationRepo: integrationRepo,
		syncLogRepo:     syncLogRepo,
		campaignRepo:    campaignRepo,
		metricRepo:      metricRepo,
		registry:        registry,
		client:          client,
		refresher:       refresher,
		metrics:         m,
		lookbackDays:    cfg.IntegrationSync.LookbackDays,
	}
}

// RunSync é a máquina de estados de uma tentativa de sincronização.
// Falhas nos passos de validação, renovação de token e listagem de campanhas
// abortam a sincronização inteira; falhas por campanha apenas acumulam em
// records_failed e a sincronização continua
func (s *service) RunSync(ctx context.Context, params SyncParams) (*domain.SyncSummary, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"integration_id": params.IntegrationID,
		"user_id":        params.UserID,
		"sync_type":      params.SyncType,
	})

	integration, err := s.integrationRepo.GetByIDAndUser(params.IntegrationID, params.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar a integração")
	}
	if integration == nil {
		return nil, ErrIntegrationNotFound
	}

	// O provedor pedido precisa ser o da integração carregada
	if params.Provider != "" && params.Provider != integration.Provider {
		return nil, ErrProviderMismatch
	}

	if integration.Status != domain.IntegrationStatusConnected {
		return nil, ErrIntegrationNotConnected
	}

	adapter, ok := s.registry.Get(integration.Provider)
	if !ok {
		return nil, ErrUnknownProvider
	}

	startedAt := time.Now()
	periodEnd := startedAt
	periodStart := startedAt.AddDate(0, 0, -s.lookbackDays)
	if params.PeriodStart != nil && !params.PeriodStart.IsZero() {
		periodStart = *params.PeriodStart
	}
	if params.PeriodEnd != nil && !params.PeriodEnd.IsZero() {
		periodEnd = *params.PeriodEnd
	}

	syncLog := &domain.SyncLog{
		UserID:        params.UserID,
		IntegrationID: integration.ID,
		Provider:      integration.Provider,
		Status:        domain.SyncStatusRunning,
		SyncType:      params.SyncType,
		StartedAt:     startedAt,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
	}
	if err := s.syncLogRepo.Create(syncLog); err != nil {
		return nil, errors.Wrap(err, "erro ao criar o sync log")
	}

	logger = logger.WithField("sync_log_id", syncLog.ID)
	logger.Info("Sincronização iniciada")

	if integration.TokenExpired(startedAt) {
		newToken, refreshed := s.refresher.RefreshAccessToken(ctx, adapter, integration)
		if !refreshed {
			s.metrics.TokenRefreshes.WithLabelValues(string(integration.Provider), "failure").Inc()

			message := "Token expirado e a renovação falhou"
			if err := s.integrationRepo.MarkExpired(integration.ID, message); err != nil {
				logger.WithError(err).Error("Erro ao marcar a integração como expirada")
			}
			s.finalize(logger, syncLog.ID, startedAt, domain.SyncSummary{}, &message, string(integration.Provider))

			return nil, ErrTokenRefreshFailed
		}

		s.metrics.TokenRefreshes.WithLabelValues(string(integration.Provider), "success").Inc()
		integration.AccessToken = newToken
	}

	campaigns, err := s.client.FetchCampaigns(ctx, adapter, integration)
	if err != nil {
		logger.WithError(err).Error("Falha ao listar campanhas no provedor")
		s.recordFatalFailure(logger, integration, err.Error())

		message := err.Error()
		s.finalize(logger, syncLog.ID, startedAt, domain.SyncSummary{RecordsFailed: 1}, &message, string(integration.Provider))

		return nil, errors.Wrap(ErrProviderUnavailable, err.Error())
	}

	summary := s.syncCampaigns(ctx, logger, adapter, integration, campaigns, periodStart, periodEnd)

	s.finalize(logger, syncLog.ID, startedAt, summary, nil, string(integration.Provider))

	// Caminho não abortivo: registra o horário e zera os contadores de erro
	if err := s.integrationRepo.MarkSyncSuccess(integration.ID, time.Now()); err != nil {
		logger.WithError(err).Error("Erro ao atualizar a integração após a sincronização")
	}

	logger.WithFields(log.Fields{
		"records_fetched": summary.RecordsFetched,
		"records_created": summary.RecordsCreated,
		"records_updated": summary.RecordsUpdated,
		"records_failed":  summary.RecordsFailed,
	}).Info("Sincronização finalizada")

	return &summary, nil
}

// syncCampaigns busca as métricas campanha a campanha, sequencialmente, para
// não estourar os limites de requisição do provedor
func (s *service) syncCampaigns(
	ctx context.Context,
	logger log.Logger,
	adapter *ads.Adapter,
	integration *domain.Integration,
	campaigns []domain.ProviderCampaign,
	periodStart, periodEnd time.Time,
) domain.SyncSummary {
	summary := domain.SyncSummary{RecordsFetched: len(campaigns)}

	for _, campaign := range campaigns {
		campaignLogger := logger.WithField("external_campaign_id", campaign.ExternalID)

		providerMetrics, err := s.client.FetchMetrics(
			ctx, adapter, integration,
			campaign.ExternalID,
			periodStart.Format(dateLayout),
			periodEnd.Format(dateLayout),
		)
		if err != nil {
			campaignLogger.WithError(err).Warn("Falha ao buscar métricas da campanha; seguindo para a próxima")
			summary.RecordsFailed++
			continue
		}

		localCampaign, err := s.campaignRepo.FindByUserAndNameLike(integration.UserID, campaign.Name)
		if err != nil {
			campaignLogger.WithError(err).Warn("Erro ao casar campanha local")
			summary.RecordsFailed++
			continue
		}

		// Campanha sem correspondente local: os dados foram buscados mas não
		// geram amostra nova
		if localCampaign == nil {
			summary.RecordsUpdated++
			continue
		}

		sample := domain.NewCampaignMetricSample(localCampaign.ID, integration.UserID, periodStart, periodEnd, providerMetrics)
		if err := s.metricRepo.Insert(sample); err != nil {
			campaignLogger.WithError(err).Error("Erro ao persistir a amostra de métricas")
			summary.RecordsFailed++
			continue
		}

		summary.RecordsCreated++
	}

	return summary
}

// recordFatalFailure contabiliza uma falha fatal na integração. O status só
// degrada para error na quinta falha consecutiva
func (s *service) recordFatalFailure(logger log.Logger, integration *domain.Integration, message string) {
	errorCount := integration.ErrorCount + 1

	status := domain.IntegrationStatusConnected
	if errorCount >= maxConsecutiveFailures {
		status = domain.IntegrationStatusError
	}

	if err := s.integrationRepo.MarkSyncFailure(integration.ID, message, errorCount, status); err != nil {
		logger.WithError(err).Error("Erro ao registrar a falha na integração")
	}
}

func (s *service) finalize(logger log.Logger, syncLogID string, startedAt time.Time, summary domain.SyncSummary, errorMessage *string, provider string) {
	completedAt := time.Now()
	duration := completedAt.Sub(startedAt)

	status := summary.FinalStatus()
	if errorMessage != nil {
		status = domain.SyncStatusFailed
	}

	if err := s.syncLogRepo.Finalize(syncLogID, status, completedAt, duration.Milliseconds(), summary, errorMessage); err != nil {
		logger.WithError(err).Error("Erro ao finalizar o sync log")
	}

	s.metrics.SyncRuns.WithLabelValues(provider, string(status)).Inc()
	s.metrics.SyncDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
