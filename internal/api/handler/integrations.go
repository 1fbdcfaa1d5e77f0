package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/apiErrors"
	"github.com/stratify-app/marketing-sync-api/pkg/middleware"
)

// defaultSyncLogLimit limita o histórico de sincronizações retornado
const defaultSyncLogLimit = 20

// ListIntegrations retorna as integrações de anúncios do usuário autenticado
func ListIntegrations(integrationRepo repository.IntegrationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListIntegrations")

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		integrations, err := integrationRepo.ListByUser(claims.UserID())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar integrações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar integrações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"integrations": integrations,
		})
	}
}

// ListSyncLogs retorna o histórico de sincronizações de uma integração do
// usuário autenticado
func ListSyncLogs(syncLogRepo repository.SyncLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSyncLogs")

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if integrationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da integração não informado", nil)
			return
		}

		logs, err := syncLogRepo.ListByIntegration(integrationID, claims.UserID(), defaultSyncLogLimit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar sync logs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar o histórico de sincronizações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"logs": logs,
		})
	}
}
