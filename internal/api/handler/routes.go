package handler

import (
	"net/http"

	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/api/handler/router"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/authenticating"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	"github.com/stratify-app/marketing-sync-api/pkg/metrics"
	"github.com/stratify-app/marketing-sync-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Sync(service syncing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: RunSync(service),
		},
	}
}

func OrchestratorRoutes(cfg *config.Config, authService authenticating.Service, service monitoring.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orchestrator",
			Method:  http.MethodPost,
			Handler: Orchestrator(cfg, authService, service),
		},
	}
}

func Integrations(integrationRepo repository.IntegrationRepository, syncLogRepo repository.SyncLogRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(integrationRepo),
		},
		{
			Path:    "/v1/integrations/:id/logs",
			Method:  http.MethodGet,
			Handler: ListSyncLogs(syncLogRepo),
		},
	}
}

func Monitoring(services SchedulerServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/monitoring/status",
			Method:      http.MethodGet,
			Handler:     GetMonitoringStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services SchedulerServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
