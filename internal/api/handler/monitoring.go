package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/internal/scheduler"
)

// SchedulerServices agrupa os agendadores expostos pelos endpoints de status
// e disparo manual
type SchedulerServices struct {
	IntegrationSyncService *scheduler.IntegrationSyncService
	MonitorPollService     *scheduler.MonitorPollService
}

// GetMonitoringStatus retorna o status dos agendadores em execução
func GetMonitoringStatus(services SchedulerServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMonitoringStatus")

		status := map[string]any{
			"integration_sync": services.IntegrationSyncService.GetStatus(),
			"monitoring":       services.MonitorPollService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
