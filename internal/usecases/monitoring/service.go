package monitoring

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/probes"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/insighting"
	"github.com/stratify-app/marketing-sync-api/pkg/log"
	"github.com/stratify-app/marketing-sync-api/pkg/metrics"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

// maxCompetitors limita quantos concorrentes a sonda de inteligência varre
// por job
const maxCompetitors = 5

var (
	ErrProjectNotFound = errors.New("projeto não encontrado")
	ErrProjectNoURL    = errors.New("projeto sem URL cadastrada")
)

// DispatchResult é o retorno do despacho de configs vencidas
type DispatchResult struct {
	Queued int `json:"queued"`
}

// RunResult agrega os contadores de um lote de execução de jobs
type RunResult struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Processed int `json:"processed"`
}

// Service é o orquestrador de monitoramento: despacha configs vencidas como
// jobs, executa jobs enfileirados e enfileira jobs ad hoc via webhook
type Service interface {
	DispatchDue(ctx context.Context, limit int) (*DispatchResult, error)
	RunJobs(ctx context.Context, limit int) (*RunResult, error)
	WebhookEnqueue(ctx context.Context, projectID, projectURL string, payload map[string]any) (*DispatchResult, error)
}

type service struct {
	configRepo   repository.MonitoringConfigRepository
	jobRepo      repository.MonitoringJobRepository
	projectRepo  repository.ProjectRepository
	snapshotRepo repository.AnalysisSnapshotRepository
	apiKeyRepo   repository.ApiKeyRepository
	pageSpeed    probes.PageSpeedClient
	serp         probes.SerpClient
	intelligence probes.IntelligenceClient
	metrics      *metrics.Metrics

	defaultDispatchLimit int
	defaultRunLimit      int
}

func NewService(
	cfg *config.Config,
	configRepo repository.MonitoringConfigRepository,
	jobRepo repository.MonitoringJobRepository,
	projectRepo repository.ProjectRepository,
	snapshotRepo repository.AnalysisSnapshotRepository,
	apiKeyRepo repository.ApiKeyRepository,
	pageSpeed probes.PageSpeedClient,
	serp probes.SerpClient,
	intelligence probes.IntelligenceClient,
	m *metrics.Metrics,
) Service {
	return &service{
		configRepo:           configRepo,
		jobRepo:              jobRepo,
		projectRepo:          projectRepo,
		snapshotRepo:         snapshotRepo,
		apiKeyRepo:           apiKeyRepo,
		pageSpeed:            pageSpeed,
		serp:                 serp,
		intelligence:         intelligence,
		metrics:              m,
		defaultDispatchLimit: cfg.Monitoring.DispatchLimit,
		defaultRunLimit:      cfg.Monitoring.RunLimit,
	}
}

// DispatchDue enfileira um job para cada config vencida e avança next_run_at
// imediatamente. Avançar no despacho, e não na conclusão, garante que um job
// travado nunca paralise a cadência: chamar duas vezes no mesmo tique não
// duplica jobs
func (s *service) DispatchDue(ctx context.Context, limit int) (*DispatchResult, error) {
	if limit <= 0 {
		limit = s.defaultDispatchLimit
	}

	now := time.Now()
	due, err := s.configRepo.ListDue(now, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar configs vencidas")
	}

	logger := log.ForContext(ctx)
	result := &DispatchResult{}

	for _, cfg := range due {
		configID := cfg.ID
		job := &domain.MonitoringJob{
			ConfigID:      &configID,
			ProjectID:     cfg.ProjectID,
			UserID:        cfg.UserID,
			TriggerSource: domain.TriggerScheduled,
			Status:        domain.JobStatusQueued,
			Payload: map[string]any{
				"strategy": string(cfg.Strategy),
			},
		}

		if err := s.jobRepo.Create(job); err != nil {
			logger.WithError(err).WithField("config_id", cfg.ID).Error("Erro ao enfileirar job de monitoramento")
			continue
		}

		nextRunAt := now.Add(time.Duration(cfg.IntervalSeconds) * time.Second)
		if err := s.configRepo.Reschedule(cfg.ID, nextRunAt, string(domain.JobStatusQueued)); err != nil {
			logger.WithError(err).WithField("config_id", cfg.ID).Error("Erro ao reagendar config de monitoramento")
		}

		result.Queued++
	}

	logger.WithField("queued", result.Queued).Info("Despacho de monitoramento concluído")
	return result, nil
}

// RunJobs processa os jobs enfileirados, os mais antigos primeiro. A falha de
// um job é isolada: os demais jobs do lote continuam
func (s *service) RunJobs(ctx context.Context, limit int) (*RunResult, error) {
	if limit <= 0 {
		limit = s.defaultRunLimit
	}

	queued, err := s.jobRepo.ListQueued(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar jobs enfileirados")
	}

	result := &RunResult{}
	for _, job := range queued {
		result.Processed++

		if err := s.executeJob(ctx, job); err != nil {
			result.Failed++
			s.failJob(ctx, job, err)
			continue
		}

		result.Completed++
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"processed": result.Processed,
		"completed": result.Completed,
		"failed":    result.Failed,
	}).Info("Lote de jobs de monitoramento processado")

	return result, nil
}

// WebhookEnqueue enfileira jobs ad hoc para um projeto identificado por id ou
// por URL. Zero correspondências não é erro: retorna queued=0
func (s *service) WebhookEnqueue(ctx context.Context, projectID, projectURL string, payload map[string]any) (*DispatchResult, error) {
	targets := []*domain.Project{}

	if projectID != "" {
		project, err := s.projectRepo.GetByID(projectID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao carregar o projeto")
		}
		if project != nil {
			targets = append(targets, project)
		}
	} else if projectURL != "" {
		found, err := s.projectRepo.FindByURL(utils.NormalizeDomain(projectURL))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar projetos pela URL")
		}
		targets = found
	}

	logger := log.ForContext(ctx)
	result := &DispatchResult{}

	for _, project := range targets {
		job := &domain.MonitoringJob{
			ProjectID:     project.ID,
			UserID:        project.UserID,
			TriggerSource: domain.TriggerWebhook,
			Status:        domain.JobStatusQueued,
			Payload:       payload,
		}

		if err := s.jobRepo.Create(job); err != nil {
			logger.WithError(err).WithField("project_id", project.ID).Error("Erro ao enfileirar job via webhook")
			continue
		}

		result.Queued++
	}

	logger.WithField("queued", result.Queued).Info("Enfileiramento via webhook concluído")
	return result, nil
}

// executeJob roda um job de ponta a ponta: sondas concorrentes, derivação de
// scores, comparação com o snapshot anterior e persistência do novo snapshot
func (s *service) executeJob(ctx context.Context, job *domain.MonitoringJob) error {
	startedAt := time.Now()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":     job.ID,
		"project_id": job.ProjectID,
	})

	if err := s.jobRepo.MarkRunning(job.ID, startedAt); err != nil {
		return errors.Wrap(err, "erro ao marcar o job como running")
	}

	project, err := s.projectRepo.GetByID(job.ProjectID)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar o projeto")
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.URL == "" {
		return ErrProjectNoURL
	}

	targetURL := utils.NormalizeURL(project.URL)
	competitors := normalizeCompetitors(project.CompetitorURLs)
	strategy := jobStrategy(job)

	apiKeys, err := s.apiKeyRepo.ListActiveByUser(job.UserID)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar as chaves de IA do usuário")
	}

	outcomes := gatherProbes(ctx, map[string]probeFunc{
		"pagespeed": func(ctx context.Context) (map[string]any, error) {
			return s.pageSpeed.Analyze(ctx, targetURL, strategy)
		},
		"serp": func(ctx context.Context) (map[string]any, error) {
			return s.serp.Lookup(ctx, targetURL, project.SearchTerms)
		},
		"intelligence": func(ctx context.Context) (map[string]any, error) {
			return s.intelligence.Scan(ctx, targetURL, competitors, apiKeys)
		},
	})

	for name, outcome := range outcomes {
		if !outcome.OK {
			logger.WithError(outcome.Err).WithField("probe", name).Warn("Sonda falhou; seguindo com dado nulo")
		}
	}

	pageSpeedData := outcomes["pagespeed"].Data
	serpData := outcomes["serp"].Data
	intelligenceData := outcomes["intelligence"].Data

	performanceScore := deriveScore(pageSpeedData, "performance")
	seoScore := deriveScore(pageSpeedData, "seo")
	accessibilityScore := deriveScore(pageSpeedData, "accessibility")
	bestPracticesScore := deriveScore(pageSpeedData, "best-practices")

	previous, err := s.snapshotRepo.GetLatest(job.ProjectID, job.UserID)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar o snapshot anterior")
	}

	insights := insighting.BuildInsights(previous, performanceScore, seoScore, serpData, intelligenceData)

	// Os insights viajam embutidos nos dados de inteligência do snapshot
	if intelligenceData == nil {
		intelligenceData = map[string]any{}
	}
	intelligenceData["insights"] = insights

	snapshot := &domain.AnalysisSnapshot{
		ProjectID:          job.ProjectID,
		UserID:             job.UserID,
		Strategy:           strategy,
		PerformanceScore:   performanceScore,
		SEOScore:           seoScore,
		AccessibilityScore: accessibilityScore,
		BestPracticesScore: bestPracticesScore,
		PageSpeedResult:    pageSpeedData,
		SerpData:           serpData,
		IntelligenceData:   intelligenceData,
		AnalyzedURL:        targetURL,
		AnalyzedAt:         time.Now(),
	}
	if err := s.snapshotRepo.Insert(snapshot); err != nil {
		return errors.Wrap(err, "erro ao persistir o snapshot")
	}

	finishedAt := time.Now()
	summary := map[string]any{
		"hasPageSpeed":     outcomes["pagespeed"].OK,
		"hasSerp":          outcomes["serp"].OK,
		"hasIntelligence":  outcomes["intelligence"].OK,
		"competitor_count": len(competitors),
		"change_count":     insights.ChangeCount,
		"changes":          insights.Changes,
	}
	if err := s.jobRepo.MarkCompleted(job.ID, finishedAt, summary); err != nil {
		return errors.Wrap(err, "erro ao marcar o job como completed")
	}

	s.markConfigOutcome(logger, job, finishedAt, string(domain.JobStatusCompleted), nil)

	s.metrics.MonitoringJobs.WithLabelValues(string(domain.JobStatusCompleted)).Inc()
	s.metrics.MonitoringJobDur.Observe(finishedAt.Sub(startedAt).Seconds())

	logger.WithField("change_count", insights.ChangeCount).Info("Job de monitoramento concluído")
	return nil
}

// failJob registra a falha do job e da config associada sem interromper o lote
func (s *service) failJob(ctx context.Context, job *domain.MonitoringJob, cause error) {
	logger := log.ForContext(ctx).WithField("job_id", job.ID)
	logger.WithError(cause).Error("Job de monitoramento falhou")

	now := time.Now()
	if err := s.jobRepo.MarkFailed(job.ID, now, cause.Error()); err != nil {
		logger.WithError(err).Error("Erro ao marcar o job como failed")
	}

	message := cause.Error()
	s.markConfigOutcome(logger, job, now, string(domain.JobStatusFailed), &message)

	s.metrics.MonitoringJobs.WithLabelValues(string(domain.JobStatusFailed)).Inc()
}

// markConfigOutcome atualiza a config vinculada ao job, quando houver.
// Na conclusão de configs ainda habilitadas o next_run_at é recalculado a
// partir do término real, um reagendamento mais fresco que o do despacho
func (s *service) markConfigOutcome(logger log.Logger, job *domain.MonitoringJob, at time.Time, status string, lastError *string) {
	if job.ConfigID == nil {
		return
	}

	cfg, err := s.configRepo.GetByID(*job.ConfigID)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar a config do job")
		return
	}
	if cfg == nil {
		return
	}

	var nextRunAt *time.Time
	if status == string(domain.JobStatusCompleted) && cfg.Enabled {
		next := at.Add(time.Duration(cfg.IntervalSeconds) * time.Second)
		nextRunAt = &next
	}

	if err := s.configRepo.MarkOutcome(cfg.ID, at, status, lastError, nextRunAt); err != nil {
		logger.WithError(err).Error("Erro ao registrar o desfecho na config")
	}
}

// normalizeCompetitors normaliza o esquema das URLs concorrentes, remove
// duplicatas por domínio e limita a lista
func normalizeCompetitors(raw []string) []string {
	seen := map[string]bool{}
	competitors := make([]string, 0, len(raw))

	for _, competitorURL := range raw {
		normalized := utils.NormalizeURL(competitorURL)
		if normalized == "" {
			continue
		}

		domainKey := utils.NormalizeDomain(normalized)
		if seen[domainKey] {
			continue
		}
		seen[domainKey] = true

		competitors = append(competitors, normalized)
		if len(competitors) == maxCompetitors {
			break
		}
	}

	return competitors
}

// jobStrategy resolve a estratégia de medição do job: payload explícito ou
// mobile por padrão
func jobStrategy(job *domain.MonitoringJob) domain.MonitoringStrategy {
	if job.Payload != nil {
		if raw, ok := job.Payload["strategy"].(string); ok {
			if strategy := domain.MonitoringStrategy(raw); strategy == domain.StrategyMobile || strategy == domain.StrategyDesktop {
				return strategy
			}
		}
	}
	return domain.StrategyMobile
}
