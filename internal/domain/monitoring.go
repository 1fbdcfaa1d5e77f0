package domain

import "time"

// MonitoringStrategy define a estratégia de medição de page speed
type MonitoringStrategy string

const (
	StrategyMobile  MonitoringStrategy = "mobile"
	StrategyDesktop MonitoringStrategy = "desktop"
)

// MonitoringConfig é um agendamento recorrente de monitoramento por projeto.
// next_run_at é sempre nulo ou um instante futuro após um despacho bem
// sucedido; configs desabilitadas deixam de ser reagendadas
type MonitoringConfig struct {
	ID              string             `json:"id"`
	ProjectID       string             `json:"project_id"`
	UserID          string             `json:"user_id"`
	Enabled         bool               `json:"enabled"`
	IntervalSeconds int                `json:"interval_seconds"`
	Strategy        MonitoringStrategy `json:"strategy"`
	NextRunAt       *time.Time         `json:"next_run_at,omitempty"`
	LastRunAt       *time.Time         `json:"last_run_at,omitempty"`
	LastStatus      *string            `json:"last_status,omitempty"`
	LastError       *string            `json:"last_error,omitempty"`
}

// MonitoringJobStatus representa o ciclo de vida de um job:
// queued → running → completed|failed, sem reenfileiramento
type MonitoringJobStatus string

const (
	JobStatusQueued    MonitoringJobStatus = "queued"
	JobStatusRunning   MonitoringJobStatus = "running"
	JobStatusCompleted MonitoringJobStatus = "completed"
	JobStatusFailed    MonitoringJobStatus = "failed"
)

// TriggerSource indica quem enfileirou o job
type TriggerSource string

const (
	TriggerScheduled TriggerSource = "scheduled"
	TriggerWebhook   TriggerSource = "webhook"
	TriggerManual    TriggerSource = "manual"
)

// MonitoringJob é uma unidade de trabalho de monitoramento enfileirada.
// ConfigID é nulo para jobs ad hoc disparados por webhook
type MonitoringJob struct {
	ID            string              `json:"id"`
	ConfigID      *string             `json:"config_id,omitempty"`
	ProjectID     string              `json:"project_id"`
	UserID        string              `json:"user_id"`
	TriggerSource TriggerSource       `json:"trigger_source"`
	Status        MonitoringJobStatus `json:"status"`
	Payload       map[string]any      `json:"payload,omitempty"`
	RunStartedAt  *time.Time          `json:"run_started_at,omitempty"`
	RunFinishedAt *time.Time          `json:"run_finished_at,omitempty"`
	ResultSummary map[string]any      `json:"result_summary,omitempty"`
	ErrorMessage  *string             `json:"error_message,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}
