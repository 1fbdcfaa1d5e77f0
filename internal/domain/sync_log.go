package domain

import "time"

// SyncStatus representa o ciclo de vida de uma tentativa de sincronização
type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusPartial   SyncStatus = "partial"
	SyncStatusFailed    SyncStatus = "failed"
)

// SyncType indica a origem do disparo da sincronização
type SyncType string

const (
	SyncTypeManual    SyncType = "manual"
	SyncTypeScheduled SyncType = "scheduled"
)

// SyncLog registra uma tentativa de sincronização. Criado com status running
// e finalizado exatamente uma vez com completed, partial ou failed
type SyncLog struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	IntegrationID  string              `json:"integration_id"`
	Provider       IntegrationProvider `json:"provider"`
	Status         SyncStatus          `json:"status"`
	SyncType       SyncType            `json:"sync_type"`
	StartedAt      time.Time           `json:"started_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	DurationMS     *int64              `json:"duration_ms,omitempty"`
	RecordsFetched int                 `json:"records_fetched"`
	RecordsCreated int                 `json:"records_created"`
	RecordsUpdated int                 `json:"records_updated"`
	RecordsFailed  int                 `json:"records_failed"`
	PeriodStart    time.Time           `json:"period_start"`
	PeriodEnd      time.Time           `json:"period_end"`
	ErrorMessage   *string             `json:"error_message,omitempty"`
}

// SyncSummary agrega os contadores de uma sincronização
type SyncSummary struct {
	RecordsFetched int `json:"records_fetched"`
	RecordsCreated int `json:"records_created"`
	RecordsUpdated int `json:"records_updated"`
	RecordsFailed  int `json:"records_failed"`
}

// FinalStatus aplica a regra de finalização: failed quando nada foi criado e
// houve ao menos uma falha; partial quando houve falhas mas algo foi criado;
// completed caso contrário
func (s SyncSummary) FinalStatus() SyncStatus {
	if s.RecordsFailed > 0 && s.RecordsCreated == 0 {
		return SyncStatusFailed
	}
	if s.RecordsFailed > 0 {
		return SyncStatusPartial
	}
	return SyncStatusCompleted
}
