package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

const monitoringJobsTable = "monitoring_jobs"

const monitoringJobColumns = "id, config_id, project_id, user_id, trigger_source, status, payload, run_started_at, run_finished_at, result_summary, error_message, created_at"

type MonitoringJobRepository interface {
	Create(job *domain.MonitoringJob) error
	ListQueued(limit int) ([]*domain.MonitoringJob, error)
	MarkRunning(id string, at time.Time) error
	MarkCompleted(id string, at time.Time, summary map[string]any) error
	MarkFailed(id string, at time.Time, message string) error
}

type monitoringJobRepository struct {
	conn *postgres.Connection
}

func NewMonitoringJobRepository(conn *postgres.Connection) MonitoringJobRepository {
	return &monitoringJobRepository{
		conn: conn,
	}
}

func (r *monitoringJobRepository) Create(job *domain.MonitoringJob) error {
	if job.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do job: %w", err)
		}
		job.ID = id
	}

	var payloadJSON []byte
	if job.Payload != nil {
		var err error
		payloadJSON, err = json.Marshal(job.Payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar payload para JSON: %w", err)
		}
	}

	query, args, err := squirrel.
		Insert(monitoringJobsTable).
		Columns("id", "config_id", "project_id", "user_id", "trigger_source", "status", "payload").
		Values(
			job.ID,
			job.ConfigID,
			job.ProjectID,
			job.UserID,
			job.TriggerSource,
			job.Status,
			payloadJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoringJobRepository) ListQueued(limit int) ([]*domain.MonitoringJob, error) {
	query, args, err := squirrel.
		Select(monitoringJobColumns).
		From(monitoringJobsTable).
		Where(squirrel.Eq{"status": domain.JobStatusQueued}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.MonitoringJob, 0)
	for rows.Next() {
		job, err := scanMonitoringJob(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear jobs de monitoramento: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}

// MarkRunning move o job de queued para running e limpa erro anterior.
// A cláusula de status impede que dois executores peguem o mesmo job
func (r *monitoringJobRepository) MarkRunning(id string, at time.Time) error {
	query, args, err := squirrel.
		Update(monitoringJobsTable).
		Set("status", domain.JobStatusRunning).
		Set("run_started_at", at).
		Set("error_message", nil).
		Where(squirrel.Eq{"id": id, "status": domain.JobStatusQueued}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoringJobRepository) MarkCompleted(id string, at time.Time, summary map[string]any) error {
	var summaryJSON []byte
	if summary != nil {
		var err error
		summaryJSON, err = json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar resumo para JSON: %w", err)
		}
	}

	query, args, err := squirrel.
		Update(monitoringJobsTable).
		Set("status", domain.JobStatusCompleted).
		Set("run_finished_at", at).
		Set("result_summary", summaryJSON).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monitoringJobRepository) MarkFailed(id string, at time.Time, message string) error {
	query, args, err := squirrel.
		Update(monitoringJobsTable).
		Set("status", domain.JobStatusFailed).
		Set("run_finished_at", at).
		Set("error_message", message).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanMonitoringJob(rows *sql.Rows) (*domain.MonitoringJob, error) {
	job := &domain.MonitoringJob{}
	var payloadJSON, summaryJSON []byte

	err := rows.Scan(
		&job.ID,
		&job.ConfigID,
		&job.ProjectID,
		&job.UserID,
		&job.TriggerSource,
		&job.Status,
		&payloadJSON,
		&job.RunStartedAt,
		&job.RunFinishedAt,
		&summaryJSON,
		&job.ErrorMessage,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if payloadJSON != nil {
		if err := json.Unmarshal(payloadJSON, &job.Payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
		}
	}

	if summaryJSON != nil {
		if err := json.Unmarshal(summaryJSON, &job.ResultSummary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result_summary: %w", err)
		}
	}

	return job, nil
}
