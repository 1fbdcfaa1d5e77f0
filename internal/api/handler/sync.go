package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	"github.com/stratify-app/marketing-sync-api/pkg/apiErrors"
	"github.com/stratify-app/marketing-sync-api/pkg/middleware"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

var validate = validator.New()

// SyncRequest é o corpo do disparo manual de sincronização. As datas do
// período são opcionais no formato YYYY-MM-DD; sem elas vale a janela padrão
type SyncRequest struct {
	Provider      string `json:"provider" validate:"required,oneof=google_ads meta_ads linkedin_ads tiktok_ads"`
	IntegrationID string `json:"integration_id" validate:"required"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
}

// SyncResponse devolve os contadores da sincronização
type SyncResponse struct {
	Success        bool `json:"success"`
	RecordsFetched int  `json:"records_fetched"`
	RecordsCreated int  `json:"records_created"`
	RecordsUpdated int  `json:"records_updated"`
	RecordsFailed  int  `json:"records_failed"`
}

// RunSync dispara uma sincronização manual da integração do usuário
func RunSync(service syncing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSync")

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", err.Error())
			return
		}

		periodStart, err := utils.ParseDate(request.PeriodStart)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início do período inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		periodEnd, err := utils.ParseDate(request.PeriodEnd)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim do período inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if !periodStart.IsZero() && !periodEnd.IsZero() && periodEnd.Before(*periodStart) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido: a data de fim é anterior à de início", nil)
			return
		}

		summary, err := service.RunSync(r.Context(), syncing.SyncParams{
			IntegrationID: request.IntegrationID,
			UserID:        claims.UserID(),
			Provider:      domain.IntegrationProvider(request.Provider),
			SyncType:      domain.SyncTypeManual,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
		})
		if err != nil {
			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResponse{
			Success:        true,
			RecordsFetched: summary.RecordsFetched,
			RecordsCreated: summary.RecordsCreated,
			RecordsUpdated: summary.RecordsUpdated,
			RecordsFailed:  summary.RecordsFailed,
		})
	}
}

// writeSyncError traduz os erros tipados do Sync Runner para o envelope de
// erro da API
func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrIntegrationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationNotFound, "Integração não encontrada", nil)
	case errors.Is(err, syncing.ErrIntegrationNotConnected):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationInactive, "Integração não está conectada", nil)
	case errors.Is(err, syncing.ErrUnknownProvider):
		apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, "Provedor de anúncios desconhecido", nil)
	case errors.Is(err, syncing.ErrProviderMismatch):
		apiErrors.WriteError(w, apiErrors.ErrProviderMismatch, "Provedor informado não corresponde ao da integração", nil)
	case errors.Is(err, syncing.ErrTokenRefreshFailed):
		apiErrors.WriteError(w, apiErrors.ErrTokenRefreshFailed, "Token expirado e a renovação falhou", nil)
	case errors.Is(err, syncing.ErrProviderUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrProviderUnavailable, "API do provedor de anúncios indisponível", nil)
	default:
		logrus.WithError(err).Error("Erro inesperado na sincronização")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na sincronização", nil)
	}
}
