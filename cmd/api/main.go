package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads/adsclient"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/probes"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/api"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/scheduler"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/authenticating"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	"github.com/stratify-app/marketing-sync-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	integrationRepo := repository.NewIntegrationRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	campaignMetricRepo := repository.NewCampaignMetricRepository(pgConn)
	monitoringConfigRepo := repository.NewMonitoringConfigRepository(pgConn)
	monitoringJobRepo := repository.NewMonitoringJobRepository(pgConn)
	snapshotRepo := repository.NewAnalysisSnapshotRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	apiKeyRepo := repository.NewApiKeyRepository(pgConn)

	appMetrics := metrics.New()

	authService := authenticating.NewService(cfg)

	// Registro fechado de adaptadores de provedores, montado na inicialização
	adsRegistry := ads.NewRegistry(cfg)
	adsClient := adsclient.NewClient(cfg)
	tokenRefresher := adsclient.NewTokenRefresher(cfg, integrationRepo)

	syncService := syncing.NewService(
		cfg,
		integrationRepo,
		syncLogRepo,
		campaignRepo,
		campaignMetricRepo,
		adsRegistry,
		adsClient,
		tokenRefresher,
		appMetrics,
	)

	pageSpeedClient := probes.NewPageSpeedClient(cfg)
	serpClient := probes.NewSerpClient(cfg)
	intelligenceClient := probes.NewIntelligenceClient(cfg)

	monitorService := monitoring.NewService(
		cfg,
		monitoringConfigRepo,
		monitoringJobRepo,
		projectRepo,
		snapshotRepo,
		apiKeyRepo,
		pageSpeedClient,
		serpClient,
		intelligenceClient,
		appMetrics,
	)

	integrationSyncService := scheduler.NewIntegrationSyncService(integrationRepo, syncService, cfg)
	monitorPollService := scheduler.NewMonitorPollService(monitorService, cfg)

	if err := integrationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de integrações")
	} else {
		logrus.Info("Agendador de sincronização de integrações iniciado com sucesso")
	}

	if err := monitorPollService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de monitoramento")
	} else {
		logrus.Info("Agendador de monitoramento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authService,
		syncService,
		monitorService,
		integrationRepo,
		syncLogRepo,
		integrationSyncService,
		monitorPollService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
