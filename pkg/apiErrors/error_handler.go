package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes
	ErrInvalidCronSecret     = "AUTH_004" // Segredo de cron inválido
	ErrInvalidWebhookSecret  = "AUTH_005" // Segredo de webhook inválido

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de sincronização (3000-3999)
	ErrIntegrationNotFound  = "SYNC_001" // Integração não encontrada
	ErrIntegrationInactive  = "SYNC_002" // Integração não conectada
	ErrUnknownProvider      = "SYNC_003" // Provedor de anúncios desconhecido
	ErrTokenRefreshFailed   = "SYNC_004" // Token expirado e renovação falhou
	ErrProviderUnavailable  = "SYNC_005" // API do provedor indisponível
	ErrProviderMismatch     = "SYNC_006" // Provedor não corresponde à integração
	ErrProjectNotFound      = "MON_001"  // Projeto não encontrado
	ErrMonitoringJobInvalid = "MON_002"  // Job de monitoramento inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidCronSecret:     http.StatusUnauthorized,
	ErrInvalidWebhookSecret:  http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrIntegrationNotFound:   http.StatusNotFound,
	ErrIntegrationInactive:   http.StatusBadRequest,
	ErrUnknownProvider:       http.StatusBadRequest,
	ErrTokenRefreshFailed:    http.StatusUnauthorized,
	ErrProviderUnavailable:   http.StatusBadGateway,
	ErrProviderMismatch:      http.StatusBadRequest,
	ErrProjectNotFound:       http.StatusNotFound,
	ErrMonitoringJobInvalid:  http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
