package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/api/handler"
	"github.com/stratify-app/marketing-sync-api/internal/api/handler/router"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/scheduler"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/authenticating"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	"github.com/stratify-app/marketing-sync-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	authService authenticating.Service,
	syncService syncing.Service,
	monitorService monitoring.Service,
	integrationRepo repository.IntegrationRepository,
	syncLogRepo repository.SyncLogRepository,
	integrationSyncService *scheduler.IntegrationSyncService,
	monitorPollService *scheduler.MonitorPollService,
) (*Server, error) {
	schedulerServices := handler.SchedulerServices{
		IntegrationSyncService: integrationSyncService,
		MonitorPollService:     monitorPollService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Sync(syncService)...),
		router.WithRoutes(handler.OrchestratorRoutes(cfg, authService, monitorService)...),
		router.WithRoutes(handler.Integrations(integrationRepo, syncLogRepo)...),
		router.WithRoutes(handler.Monitoring(schedulerServices)...),
		router.WithRoutes(handler.CronJobs(schedulerServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authService),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
