package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stratify-app/marketing-sync-api/infrastructure/database/postgres"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/utils"
)

const campaignMetricsTable = "campaign_metrics"

type CampaignMetricRepository interface {
	Insert(sample *domain.CampaignMetricSample) error
}

type campaignMetricRepository struct {
	conn *postgres.Connection
}

func NewCampaignMetricRepository(conn *postgres.Connection) CampaignMetricRepository {
	return &campaignMetricRepository{
		conn: conn,
	}
}

// Insert grava uma nova amostra de período. Amostras nunca são atualizadas:
// cada sincronização insere a sua própria linha
func (r *campaignMetricRepository) Insert(sample *domain.CampaignMetricSample) error {
	if sample.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da amostra de métricas: %w", err)
		}
		sample.ID = id
	}

	query, args, err := squirrel.
		Insert(campaignMetricsTable).
		Columns(
			"id", "campaign_id", "user_id", "period_start", "period_end",
			"impressions", "clicks", "conversions", "cost", "revenue",
			"ctr", "cpc", "cpa", "roas", "source",
		).
		Values(
			sample.ID,
			sample.CampaignID,
			sample.UserID,
			sample.PeriodStart,
			sample.PeriodEnd,
			sample.Impressions,
			sample.Clicks,
			sample.Conversions,
			sample.Cost,
			sample.Revenue,
			sample.CTR,
			sample.CPC,
			sample.CPA,
			sample.ROAS,
			sample.Source,
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
