package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const apiKeysTable = "api_keys"

type ApiKeyRepository interface {
	ListActiveByUser(userID string) ([]*domain.ApiKey, error)
}

type apiKeyRepository struct {
	conn *postgres.Connection
}

func NewApiKeyRepository(conn *postgres.Connection) ApiKeyRepository {
	return &apiKeyRepository{
		conn: conn,
	}
}

// ListActiveByUser retorna as chaves de IA ativas do usuário. Usadas apenas
// pela sonda de inteligência competitiva
func (r *apiKeyRepository) ListActiveByUser(userID string) ([]*domain.ApiKey, error) {
	query, args, err := squirrel.
		Select("id, user_id, service, key, active").
		From(apiKeysTable).
		Where(squirrel.Eq{"user_id": userID, "active": true}).
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

	keys := make([]*domain.ApiKey, 0)
	for rows.Next() {
		key := &domain.ApiKey{}
		err := rows.Scan(&key.ID, &key.UserID, &key.Service, &key.Key, &key.Active)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear api keys: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}
