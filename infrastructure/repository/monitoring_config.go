package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const monitoringConfigsTable = "monitoring_configs"

const monitoringConfigColumns = "id, project_id, user_id, enabled, interval_seconds, strategy, next_run_at, last_run_at, last_status, last_error"

type MonitoringConfigRepository interface {
	GetByID(id string) (*domain.MonitoringConfig, error)
	ListDue(now time.Time, limit int) ([]*domain.MonitoringConfig, error)
	Reschedule(id string, nextRunAt time.Time, lastStatus string) error
	MarkOutcome(id string, lastRunAt time.Time, lastStatus string, lastError *string, nextRunAt *time.Time) error
}

type monitoringConfigRepository struct {
	conn *postgres.Connection
}

func NewMonitoringConfigRepository(conn *postgres.Connection) MonitoringConfigRepository {
	return &monitoringConfigRepository{
		conn: conn,
	}
}

func (r *monitoringConfigRepository) GetByID(id string) (*domain.MonitoringConfig, error) {
	query, args, err := squirrel.
		Select(monitoringConfigColumns).
		From(monitoringConfigsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg := &domain.MonitoringConfig{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&cfg.ID,
		&cfg.ProjectID,
		&cfg.UserID,
		&cfg.Enabled,
		&cfg.IntervalSeconds,
		&cfg.Strategy,
		&cfg.NextRunAt,
		&cfg.LastRunAt,
		&cfg.LastStatus,
		&cfg.LastError,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear config de monitoramento: %w", err)
	}

	return cfg, nil
}

// ListDue retorna as configs habilitadas vencidas, as mais antigas primeiro.
// A ordenação por next_run_at garante FIFO e evita inanição
func (r *monitoringConfigRepository) ListDue(now time.Time, limit int) ([]*domain.MonitoringConfig, error) {
	query, args, err := squirrel.
		Select(monitoringConfigColumns).
		From(monitoringConfigsTable).
		Where(squirrel.Eq{"enabled": true}).
		Where(squirrel.LtOrEq{"next_run_at": now}).
		OrderBy("next_run_at ASC").
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

	configs := make([]*domain.MonitoringConfig, 0)
	for rows.Next() {
		cfg := &domain.MonitoringConfig{}
		err := rows.Scan(
			&cfg.ID,
			&cfg.ProjectID,
			&cfg.UserID,
			&cfg.Enabled,
			&cfg.IntervalSeconds,
			&cfg.Strategy,
			&cfg.NextRunAt,
			&cfg.LastRunAt,
			&cfg.LastStatus,
			&cfg.LastError,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear config de monitoramento: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

// Reschedule avança next_run_at no momento do despacho. Avançar aqui, e não
// na conclusão do job, garante progresso mesmo que o job trave ou falhe
func (r *monitoringConfigRepository) Reschedule(id string, nextRunAt time.Time, lastStatus string) error {
	query, args, err := squirrel.
		Update(monitoringConfigsTable).
		Set("next_run_at", nextRunAt).
		Set("last_status", lastStatus).
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

// MarkOutcome registra o desfecho da execução. nextRunAt nulo preserva o
// reagendamento feito no despacho (caso de config desabilitada no meio tempo)
func (r *monitoringConfigRepository) MarkOutcome(id string, lastRunAt time.Time, lastStatus string, lastError *string, nextRunAt *time.Time) error {
	builder := squirrel.
		Update(monitoringConfigsTable).
		Set("last_run_at", lastRunAt).
		Set("last_status", lastStatus).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if nextRunAt != nil {
		builder = builder.Set("next_run_at", *nextRunAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
