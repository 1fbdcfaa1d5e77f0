package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stratify-app/marketing-sync-api/internal/config"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/authenticating"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	"github.com/stratify-app/marketing-sync-api/pkg/apiErrors"
)

// Ações aceitas pelo orquestrador de monitoramento
const (
	ActionDispatchDue    = "dispatch_due"
	ActionRunJobs        = "run_jobs"
	ActionDispatchAndRun = "dispatch_and_run"
	ActionWebhookEnqueue = "webhook_enqueue"
)

// OrchestratorRequest é o corpo do disparo do orquestrador
type OrchestratorRequest struct {
	Action     string         `json:"action" validate:"required,oneof=dispatch_due run_jobs dispatch_and_run webhook_enqueue"`
	Limit      int            `json:"limit,omitempty"`
	ProjectID  string         `json:"projectId,omitempty"`
	ProjectURL string         `json:"projectUrl,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// trustPath identifica por qual caminho a requisição foi autorizada
type trustPath int

const (
	trustNone trustPath = iota
	trustBearer
	trustCron
	trustWebhook
)

// Orchestrator dispara as operações do orquestrador de monitoramento.
// Três caminhos de confiança mutuamente exclusivos: bearer token, segredo
// compartilhado de cron ou segredo de webhook. O caminho de webhook só
// autoriza a ação webhook_enqueue
func Orchestrator(cfg *config.Config, authService authenticating.Service, service monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Orchestrator")

		trust := resolveTrust(cfg, authService, r)
		if trust == trustNone {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Requisição não autorizada", nil)
			return
		}

		var request OrchestratorRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Ação inválida ou ausente", err.Error())
			return
		}

		if trust == trustWebhook && request.Action != ActionWebhookEnqueue {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWebhookSecret, "O segredo de webhook só autoriza webhook_enqueue", nil)
			return
		}

		response := map[string]any{"success": true}

		switch request.Action {
		case ActionDispatchDue:
			dispatch, err := service.DispatchDue(r.Context(), request.Limit)
			if err != nil {
				writeOrchestratorError(w, err)
				return
			}
			response["queued"] = dispatch.Queued

		case ActionRunJobs:
			run, err := service.RunJobs(r.Context(), request.Limit)
			if err != nil {
				writeOrchestratorError(w, err)
				return
			}
			response["completed"] = run.Completed
			response["failed"] = run.Failed
			response["processed"] = run.Processed

		case ActionDispatchAndRun:
			dispatch, err := service.DispatchDue(r.Context(), request.Limit)
			if err != nil {
				writeOrchestratorError(w, err)
				return
			}
			run, err := service.RunJobs(r.Context(), request.Limit)
			if err != nil {
				writeOrchestratorError(w, err)
				return
			}
			response["queued"] = dispatch.Queued
			response["completed"] = run.Completed
			response["failed"] = run.Failed
			response["processed"] = run.Processed

		case ActionWebhookEnqueue:
			dispatch, err := service.WebhookEnqueue(r.Context(), request.ProjectID, request.ProjectURL, request.Payload)
			if err != nil {
				writeOrchestratorError(w, err)
				return
			}
			response["queued"] = dispatch.Queued
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// resolveTrust resolve o caminho de confiança da requisição. Os segredos têm
// precedência quando os cabeçalhos estão presentes; segredo presente mas
// incorreto nega a requisição em vez de cair no caminho de bearer
func resolveTrust(cfg *config.Config, authService authenticating.Service, r *http.Request) trustPath {
	if cronSecret := r.Header.Get("X-Cron-Secret"); cronSecret != "" {
		if secretMatches(cronSecret, cfg.Monitoring.CronSecret) {
			return trustCron
		}
		return trustNone
	}

	if webhookSecret := r.Header.Get("X-Webhook-Secret"); webhookSecret != "" {
		if secretMatches(webhookSecret, cfg.Monitoring.WebhookSecret) {
			return trustWebhook
		}
		return trustNone
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if _, err := authService.ValidateToken(authHeader); err == nil {
			return trustBearer
		}
	}

	return trustNone
}

func secretMatches(provided, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

func writeOrchestratorError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("Erro no orquestrador de monitoramento")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no orquestrador", nil)
}
