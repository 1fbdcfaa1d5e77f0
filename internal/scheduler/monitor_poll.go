package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
)

// MonitorPollConfig representa a configuração do agendador de monitoramento
type MonitorPollConfig struct {
	PollCron      string
	DispatchLimit int
	RunLimit      int
	Enabled       bool
}

// MonitorPollService dispara o ciclo do orquestrador de monitoramento em
// intervalos regulares: despacha as configs vencidas e em seguida executa os
// jobs enfileirados
type MonitorPollService struct {
	scheduler       *gocron.Scheduler
	config          MonitorPollConfig
	monitorService  monitoring.Service
	pollRunning     bool
	pollMutex       sync.Mutex
	lastPollAt      time.Time
	lastQueued      int
	lastCompleted   int
	lastFailed      int
	lastPollSucceed bool
}

func NewMonitorPollService(monitorService monitoring.Service, appConfig *config.Config) *MonitorPollService {
	pollConfig := MonitorPollConfig{
		PollCron:      appConfig.Monitoring.PollCron,
		DispatchLimit: appConfig.Monitoring.DispatchLimit,
		RunLimit:      appConfig.Monitoring.RunLimit,
		Enabled:       appConfig.Monitoring.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"poll_cron":      pollConfig.PollCron,
		"dispatch_limit": pollConfig.DispatchLimit,
		"run_limit":      pollConfig.RunLimit,
		"enabled":        pollConfig.Enabled,
	}).Info("Configuração do agendador de monitoramento carregada")

	return &MonitorPollService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         pollConfig,
		monitorService: monitorService,
	}
}

// Start inicia o agendador
func (s *MonitorPollService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendador de monitoramento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.PollCron).Info("Iniciando agendador de monitoramento")

	_, err := s.scheduler.Cron(s.config.PollCron).Do(func() {
		s.poll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o ciclo de monitoramento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de monitoramento")
		s.scheduler.Stop()
	}()

	return nil
}

// poll executa um ciclo completo: despacho e execução. Um mutex impede ciclos
// sobrepostos quando uma execução demora mais que o intervalo do cron
func (s *MonitorPollService) poll(ctx context.Context) {
	s.pollMutex.Lock()
	if s.pollRunning {
		s.pollMutex.Unlock()
		logrus.Info("Ciclo de monitoramento já em andamento, ignorando")
		return
	}
	s.pollRunning = true
	s.lastPollAt = time.Now()
	s.lastPollSucceed = false
	s.pollMutex.Unlock()

	defer func() {
		s.pollMutex.Lock()
		s.pollRunning = false
		s.pollMutex.Unlock()
	}()

	pollCtx, correlationID := log.WithCorrelationID(ctx)
	logger := logrus.WithField("correlation_id", correlationID)

	dispatch, err := s.monitorService.DispatchDue(pollCtx, s.config.DispatchLimit)
	if err != nil {
		logger.WithError(err).Error("Erro no despacho de configs de monitoramento")
		return
	}

	s.pollMutex.Lock()
	s.lastQueued = dispatch.Queued
	s.pollMutex.Unlock()

	run, err := s.monitorService.RunJobs(pollCtx, s.config.RunLimit)
	if err != nil {
		logger.WithError(err).Error("Erro na execução de jobs de monitoramento")
		return
	}

	s.pollMutex.Lock()
	s.lastCompleted = run.Completed
	s.lastFailed = run.Failed
	s.lastPollSucceed = true
	s.pollMutex.Unlock()

	if dispatch.Queued > 0 || run.Processed > 0 {
		logger.WithFields(logrus.Fields{
			"queued":    dispatch.Queued,
			"completed": run.Completed,
			"failed":    run.Failed,
		}).Info("Ciclo de monitoramento concluído")
	}
}

// GetStatus retorna o status atual do agendador. O mutex cobre os campos de
// resultado escritos pelo ciclo em andamento
func (s *MonitorPollService) GetStatus() map[string]any {
	s.pollMutex.Lock()
	defer s.pollMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"poll_cron":         s.config.PollCron,
		"dispatch_limit":    s.config.DispatchLimit,
		"run_limit":         s.config.RunLimit,
		"last_poll_at":      s.lastPollAt,
		"last_queued":       s.lastQueued,
		"last_completed":    s.lastCompleted,
		"last_failed":       s.lastFailed,
		"last_poll_success": s.lastPollSucceed,
	}
}
