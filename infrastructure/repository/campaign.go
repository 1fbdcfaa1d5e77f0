package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	FindByUserAndNameLike(userID, name string) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// FindByUserAndNameLike casa uma campanha do provedor com uma campanha local
// por substring de nome, sem diferenciar maiúsculas. Retorna a primeira
// correspondência; múltiplas correspondências não são desambiguadas
func (r *campaignRepository) FindByUserAndNameLike(userID, name string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("id, user_id, project_id, name, status, created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.ILike{"name": "%" + name + "%"}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.ProjectID,
		&campaign.Name,
		&campaign.Status,
		&campaign.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}
