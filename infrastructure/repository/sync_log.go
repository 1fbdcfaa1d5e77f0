package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

const syncLogsTable = "sync_logs"

const syncLogColumns = "id, user_id, integration_id, provider, status, sync_type, started_at, completed_at, duration_ms, records_fetched, records_created, records_updated, records_failed, period_start, period_end, error_message"

type SyncLogRepository interface {
	Create(log *domain.SyncLog) error
	Finalize(id string, status domain.SyncStatus, completedAt time.Time, durationMS int64, summary domain.SyncSummary, errorMessage *string) error
	ListByIntegration(integrationID, userID string, limit int) ([]*domain.SyncLog, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

// Create insere o registro da tentativa com status running. O ID é gerado
// aqui e gravado de volta no log recebido
func (r *syncLogRepository) Create(log *domain.SyncLog) error {
	if log.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do sync log: %w", err)
		}
		log.ID = id
	}

	query, args, err := squirrel.
		Insert(syncLogsTable).
		Columns("id", "user_id", "integration_id", "provider", "status", "sync_type", "started_at", "period_start", "period_end").
		Values(
			log.ID,
			log.UserID,
			log.IntegrationID,
			log.Provider,
			log.Status,
			log.SyncType,
			log.StartedAt,
			log.PeriodStart,
			log.PeriodEnd,
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

// Finalize aplica a única atualização terminal permitida sobre o log.
// A cláusula de status running impede uma segunda finalização
func (r *syncLogRepository) Finalize(id string, status domain.SyncStatus, completedAt time.Time, durationMS int64, summary domain.SyncSummary, errorMessage *string) error {
	query, args, err := squirrel.
		Update(syncLogsTable).
		Set("status", status).
		Set("completed_at", completedAt).
		Set("duration_ms", durationMS).
		Set("records_fetched", summary.RecordsFetched).
		Set("records_created", summary.RecordsCreated).
		Set("records_updated", summary.RecordsUpdated).
		Set("records_failed", summary.RecordsFailed).
		Set("error_message", errorMessage).
		Where(squirrel.Eq{"id": id, "status": domain.SyncStatusRunning}).
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

func (r *syncLogRepository) ListByIntegration(integrationID, userID string, limit int) ([]*domain.SyncLog, error) {
	query, args, err := squirrel.
		Select(syncLogColumns).
		From(syncLogsTable).
		Where(squirrel.Eq{"integration_id": integrationID, "user_id": userID}).
		OrderBy("started_at DESC").
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

	logs := make([]*domain.SyncLog, 0)
	for rows.Next() {
		log := &domain.SyncLog{}
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.IntegrationID,
			&log.Provider,
			&log.Status,
			&log.SyncType,
			&log.StartedAt,
			&log.CompletedAt,
			&log.DurationMS,
			&log.RecordsFetched,
			&log.RecordsCreated,
			&log.RecordsUpdated,
			&log.RecordsFailed,
			&log.PeriodStart,
			&log.PeriodEnd,
			&log.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sync logs: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}
