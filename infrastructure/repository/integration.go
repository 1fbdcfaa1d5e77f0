package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const integrationsTable = "integrations"

const integrationColumns = "id, user_id, provider, account_id, access_token, refresh_token, token_expires_at, status, error_message, error_count, last_sync_at, created_at, updated_at"

type IntegrationRepository interface {
	GetByIDAndUser(id, userID string) (*domain.Integration, error)
	ListByUser(userID string) ([]*domain.Integration, error)
	ListByStatus(status domain.IntegrationStatus) ([]*domain.Integration, error)
	UpdateTokens(id, accessToken string, refreshToken *string, expiresAt time.Time) error
	MarkSyncSuccess(id string, at time.Time) error
	MarkSyncFailure(id, message string, errorCount int, status domain.IntegrationStatus) error
	MarkExpired(id, message string) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByIDAndUser(id, userID string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(integrationsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	integration, err := scanIntegration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integração: %w", err)
	}

	return integration, nil
}

func (r *integrationRepository) ListByUser(userID string) ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(integrationsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryIntegrations(query, args...)
}

func (r *integrationRepository) ListByStatus(status domain.IntegrationStatus) ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(integrationsTable).
		Where(squirrel.Eq{"status": status}).
		OrderBy("last_sync_at ASC NULLS FIRST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryIntegrations(query, args...)
}

// UpdateTokens persiste o resultado de uma renovação de token OAuth.
// refreshToken só é sobrescrito quando o provedor rotaciona o refresh token
func (r *integrationRepository) UpdateTokens(id, accessToken string, refreshToken *string, expiresAt time.Time) error {
	builder := squirrel.
		Update(integrationsTable).
		Set("access_token", accessToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if refreshToken != nil {
		builder = builder.Set("refresh_token", *refreshToken)
	}

	return r.exec(builder)
}

// MarkSyncSuccess limpa os campos de erro e registra o horário da última
// sincronização. Atualização condicionada ao status connected para não
// ressuscitar integrações marcadas como expired/error por outra escrita
// concorrente
func (r *integrationRepository) MarkSyncSuccess(id string, at time.Time) error {
	builder := squirrel.
		Update(integrationsTable).
		Set("last_sync_at", at).
		Set("error_message", nil).
		Set("error_count", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.IntegrationStatusConnected}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(builder)
}

func (r *integrationRepository) MarkSyncFailure(id, message string, errorCount int, status domain.IntegrationStatus) error {
	builder := squirrel.
		Update(integrationsTable).
		Set("error_message", message).
		Set("error_count", errorCount).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(builder)
}

func (r *integrationRepository) MarkExpired(id, message string) error {
	builder := squirrel.
		Update(integrationsTable).
		Set("status", domain.IntegrationStatusExpired).
		Set("error_message", message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(builder)
}

func (r *integrationRepository) exec(builder squirrel.UpdateBuilder) error {
	query, args, err := builder.ToSql()
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

func (r *integrationRepository) queryIntegrations(query string, args ...interface{}) ([]*domain.Integration, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration, err := scanIntegration(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear integrações: %w", err)
		}
		integrations = append(integrations, integration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return integrations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIntegration(row rowScanner) (*domain.Integration, error) {
	integration := &domain.Integration{}

	err := row.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Provider,
		&integration.AccountID,
		&integration.AccessToken,
		&integration.RefreshToken,
		&integration.TokenExpiresAt,
		&integration.Status,
		&integration.ErrorMessage,
		&integration.ErrorCount,
		&integration.LastSyncAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return integration, nil
}
