package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
)

// IntegrationSyncConfig representa a configuração do agendador de
// sincronização de integrações
type IntegrationSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// IntegrationSyncService varre periodicamente todas as integrações conectadas
// e dispara uma sincronização agendada para cada uma
type IntegrationSyncService struct {
	scheduler           *gocron.Scheduler
	config              IntegrationSyncConfig
	integrationRepo     repository.IntegrationRepository
	syncService         syncing.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewIntegrationSyncService(
	integrationRepo repository.IntegrationRepository,
	syncService syncing.Service,
	appConfig *config.Config,
) *IntegrationSyncService {
	syncConfig := IntegrationSyncConfig{
		CronSchedule:        appConfig.IntegrationSync.CronSchedule,
		RequestDelaySeconds: appConfig.IntegrationSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.IntegrationSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.IntegrationSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de integrações carregada")

	return &IntegrationSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		integrationRepo: integrationRepo,
		syncService:     syncService,
	}
}

// Start inicia o agendador
func (s *IntegrationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de integrações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de integrações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllIntegrations(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de integrações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de integrações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllIntegrations sincroniza todas as integrações conectadas. Um mutex
// garante uma varredura por vez; o semáforo limita as integrações em paralelo
func (s *IntegrationSyncService) syncAllIntegrations(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de sincronização das integrações conectadas")

	integrations, err := s.integrationRepo.ListByStatus(domain.IntegrationStatusConnected)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar integrações conectadas")
		return
	}

	if len(integrations) == 0 {
		logrus.Info("Nenhuma integração conectada para sincronizar")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, integration := range integrations {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(integration *domain.Integration) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncIntegration(ctx, integration)

			// Espaçar as requisições para não sobrecarregar os provedores
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(integration)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"integrations": len(integrations),
	}).Info("Varredura de sincronização concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

func (s *IntegrationSyncService) syncIntegration(ctx context.Context, integration *domain.Integration) {
	runCtx, correlationID := log.WithCorrelationID(ctx)

	logger := logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"provider":       integration.Provider,
		"correlation_id": correlationID,
	})
	logger.Info("Sincronizando integração agendada")

	summary, err := s.syncService.RunSync(runCtx, syncing.SyncParams{
		IntegrationID: integration.ID,
		UserID:        integration.UserID,
		Provider:      integration.Provider,
		SyncType:      domain.SyncTypeScheduled,
	})
	if err != nil {
		logger.WithError(err).Error("Erro na sincronização agendada da integração")
		return
	}

	logger.WithFields(logrus.Fields{
		"records_fetched": summary.RecordsFetched,
		"records_created": summary.RecordsCreated,
		"records_failed":  summary.RecordsFailed,
	}).Info("Integração sincronizada")
}

// TriggerManualSync inicia manualmente uma varredura completa
func (s *IntegrationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de sincronização de integrações")
	go s.syncAllIntegrations(context.Background())
}

// GetStatus retorna o status atual do agendador. O mutex cobre os campos de
// timestamp escritos pela varredura em andamento
func (s *IntegrationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
